package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jolicitron/format"
	"github.com/signadot/jolicitron/ir"
)

type encState struct {
	format format.Format
	indent int
	colors *Colors
	depth  int
}

// Encode writes node to w followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	buf := bytes.NewBuffer(nil)
	if err := encodeJSON(node, buf, es); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

func (es *encState) color(t ir.Type, a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(t, a, s)
}

func (es *encState) newline(buf *bytes.Buffer) {
	if es.indent == 0 {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *encState) error {
	if node == nil {
		buf.WriteString("null")
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			buf.WriteString(es.color(ir.ObjectType, SepColor, "{}"))
			return nil
		}
		buf.WriteString(es.color(ir.ObjectType, SepColor, "{"))
		es.depth++
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteString(es.color(ir.ObjectType, SepColor, ","))
			}
			es.newline(buf)
			buf.WriteString(es.color(ir.ObjectType, FieldColor, ir.QuoteJSON(f.String)))
			buf.WriteString(es.color(ir.ObjectType, SepColor, ":"))
			if es.indent > 0 {
				buf.WriteByte(' ')
			}
			if err := encodeJSON(node.Values[i], buf, es); err != nil {
				return err
			}
		}
		es.depth--
		es.newline(buf)
		buf.WriteString(es.color(ir.ObjectType, SepColor, "}"))
	case ir.ArrayType:
		if len(node.Values) == 0 {
			buf.WriteString(es.color(ir.ArrayType, SepColor, "[]"))
			return nil
		}
		buf.WriteString(es.color(ir.ArrayType, SepColor, "["))
		es.depth++
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteString(es.color(ir.ArrayType, SepColor, ","))
			}
			es.newline(buf)
			if err := encodeJSON(v, buf, es); err != nil {
				return err
			}
		}
		es.depth--
		es.newline(buf)
		buf.WriteString(es.color(ir.ArrayType, SepColor, "]"))
	case ir.NumberType:
		f, _ := node.Float()
		buf.WriteString(es.color(ir.NumberType, ValueColor, ir.JSONNumber(f)))
	case ir.StringType:
		buf.WriteString(es.color(ir.StringType, ValueColor, ir.QuoteJSON(node.String)))
	default:
		return fmt.Errorf("cannot encode %s", node.Type)
	}
	return nil
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts node to values goccy/go-yaml marshals in order: objects
// become yaml.MapSlice and safe integers become int64.
func toYAML(node *ir.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toYAML(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: f.String, Value: v}
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, e := range node.Values {
			v, err := toYAML(e)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		f, _ := node.Float()
		return f, nil
	case ir.StringType:
		return node.String, nil
	default:
		return nil, fmt.Errorf("cannot encode %s as yaml", node.Type)
	}
}
