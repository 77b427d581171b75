package jolicitron

import (
	"fmt"

	"github.com/signadot/jolicitron/compile"
	"github.com/signadot/jolicitron/debug"
	"github.com/signadot/jolicitron/ir"
	"github.com/signadot/jolicitron/schema"
	"github.com/signadot/jolicitron/token"
)

// Program is a validated, normalized and compiled schema.  It is immutable
// and safe for concurrent use.
type Program struct {
	schema *schema.Schema
	parser compile.Parser
}

// ParseSchema prepares raw, a JSON shaped value (or any value that
// marshals to one), for parsing.  Shape errors are *schema.ShapeError.
func ParseSchema(raw any) (*Program, error) {
	s, err := schema.Prepare(raw)
	if err != nil {
		return nil, err
	}
	return FromSchema(s)
}

func MustParseSchema(raw any) *Program {
	p, err := ParseSchema(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// FromSchema compiles an already canonical schema.
func FromSchema(s *schema.Schema) (*Program, error) {
	parser, err := compile.Compile(s)
	if err != nil {
		return nil, err
	}
	return &Program{schema: s, parser: parser}, nil
}

// LoadSchema reads a JSON or YAML schema file.
func LoadSchema(path string) (*Program, error) {
	raw, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := ParseSchema(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p *Program) Schema() *schema.Schema {
	return p.schema
}

func (p *Program) Parse(input []byte, opts ...ParseOption) (*ir.Node, error) {
	return p.ParseTokens(token.Tokenize(input), opts...)
}

// ParseTokens parses one root value from ts.  Unless Strict is set,
// remaining tokens are left unread.
func (p *Program) ParseTokens(ts token.Tokens, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	var sc *compile.Scope
	if pOpts.scope != nil {
		sc = compile.RootScope(pOpts.scope)
	}
	res, err := p.parser(ts, sc)
	if err != nil {
		return nil, err
	}
	if pOpts.strict {
		if tok, ok := ts.Next(); ok {
			return nil, fmt.Errorf("%w: %s", ErrTrailingTokens, tok)
		}
	}
	if debug.Parse() {
		debug.Logf("parse result %v\n", res)
	}
	return res, nil
}

// Parse validates, normalizes and compiles raw, then parses input with it.
func Parse(raw any, input []byte, opts ...ParseOption) (*ir.Node, error) {
	p, err := ParseSchema(raw)
	if err != nil {
		return nil, err
	}
	return p.Parse(input, opts...)
}
