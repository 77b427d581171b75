package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MarshalJSON renders y as JSON, keeping object fields in order.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := y.writeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (y *Node) writeJSON(buf *bytes.Buffer) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(QuoteJSON(f.String))
			buf.WriteByte(':')
			if err := y.Values[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ArrayType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := v.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case NumberType:
		f, _ := y.Float()
		buf.WriteString(JSONNumber(f))
	case StringType:
		buf.WriteString(QuoteJSON(y.String))
	default:
		return fmt.Errorf("cannot marshal %s", y.Type)
	}
	return nil
}

// JSONNumber formats f the way JSON.stringify does: non finite values
// become null and negative zero becomes 0.
func JSONNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	if f == 0 {
		return "0"
	}
	d, _ := json.Marshal(f)
	return string(d)
}

// QuoteJSON returns s as a JSON string literal without HTML escaping.
func QuoteJSON(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// FromJSON decodes a JSON document, keeping object fields in document
// order.  Booleans and null have no node type and are rejected.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after json value at offset %d", dec.InputOffset())
	}
	return res, nil
}

func decodeJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", kt)
				}
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.AppendField(key, v)
			}
			_, err := dec.Token()
			return res, err
		case '[':
			res := NewArray(0)
			for dec.More() {
				v, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.AppendValue(v)
			}
			_, err := dec.Token()
			return res, err
		default:
			return nil, fmt.Errorf("unexpected %v", x)
		}
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return FromNumber(x.String(), f), nil
	case string:
		return FromString(x), nil
	default:
		return nil, fmt.Errorf("unsupported json value %v", tok)
	}
}
