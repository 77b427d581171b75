package compile

import (
	"fmt"

	"github.com/signadot/jolicitron/debug"
	"github.com/signadot/jolicitron/diag"
	"github.com/signadot/jolicitron/ir"
	"github.com/signadot/jolicitron/schema"
	"github.com/signadot/jolicitron/token"
)

// Parser consumes tokens from ts, resolving array lengths in sc, and
// returns the parsed value.  The tokens it consumes are not restored on
// error.
type Parser func(ts token.Tokens, sc *Scope) (*ir.Node, error)

// Compile builds a parser for s.  The result holds no mutable state and
// may be called repeatedly, and concurrently on distinct token streams.
func Compile(s *schema.Schema) (Parser, error) {
	return compileAt(s, nil)
}

func MustCompile(s *schema.Schema) Parser {
	p, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return p
}

func compileAt(s *schema.Schema, path diag.Path) (Parser, error) {
	if s == nil {
		return nil, &SchemaError{Path: path, Msg: "nil schema"}
	}
	if debug.Compile() {
		debug.Logf("compile %s at %s\n", s.Kind, path)
	}
	switch s.Kind {
	case schema.NumberKind:
		return parseNumberToken, nil
	case schema.StringKind:
		return parseStringToken, nil
	case schema.ArrayKind:
		return compileArray(s, path)
	case schema.ObjectKind:
		return compileObject(s, path)
	default:
		return nil, &SchemaError{Path: path, Msg: fmt.Sprintf("unknown kind %s", s.Kind)}
	}
}

func parseNumberToken(ts token.Tokens, _ *Scope) (*ir.Node, error) {
	tok, ok := ts.Next()
	if !ok {
		return nil, &ParseError{Kind: ErrExpectedNumber}
	}
	f, ok := token.ParseNumber(tok.Text)
	if !ok {
		return nil, &ParseError{Kind: ErrExpectedNumber, Token: &tok}
	}
	return ir.FromNumber(tok.Text, f), nil
}

func parseStringToken(ts token.Tokens, _ *Scope) (*ir.Node, error) {
	tok, ok := ts.Next()
	if !ok {
		return nil, &ParseError{Kind: ErrExpectedToken}
	}
	return ir.FromString(tok.Text), nil
}

func compileArray(s *schema.Schema, path diag.Path) (Parser, error) {
	ref, err := newLengthRef(s.Length)
	if err != nil {
		return nil, &SchemaError{Path: path.Field("length"), Msg: "bad length expression", Err: err}
	}
	if s.Items == nil {
		return nil, &SchemaError{Path: path, Msg: "array without items"}
	}
	items, err := compileAt(s.Items, path.Field("items"))
	if err != nil {
		return nil, err
	}
	if debug.Compile() {
		debug.Logf("array at %s has length %s\n", path, ref)
	}
	return func(ts token.Tokens, sc *Scope) (*ir.Node, error) {
		n, err := ref.resolve(sc)
		if err != nil {
			return nil, err
		}
		res := ir.NewArray(min(n, maxPrealloc))
		for range n {
			v, err := items(ts, sc)
			if err != nil {
				return nil, err
			}
			res.AppendValue(v)
			if debug.Parse() {
				debug.Logf("parsed %s: %v\n", v.Path(), v)
			}
		}
		return res, nil
	}, nil
}

type property struct {
	name  string
	parse Parser
}

func compileObject(s *schema.Schema, path diag.Path) (Parser, error) {
	props := make([]property, len(s.Properties))
	for i, p := range s.Properties {
		pp, err := compileAt(p.Value, path.Field("properties").Index(i).Field("value"))
		if err != nil {
			return nil, err
		}
		props[i] = property{name: p.Name, parse: pp}
	}
	return func(ts token.Tokens, parent *Scope) (*ir.Node, error) {
		sc := NewScope(parent)
		res := ir.NewObject()
		for _, p := range props {
			v, err := p.parse(ts, sc)
			if err != nil {
				return nil, err
			}
			res.AppendField(p.name, v)
			if debug.Parse() {
				debug.Logf("parsed %s: %v\n", v.Path(), v)
			}
			if f, ok := v.Float(); ok {
				sc.Set(p.name, f)
			}
		}
		return res, nil
	}, nil
}
