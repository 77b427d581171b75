package compile

import (
	"errors"
	"fmt"

	"github.com/signadot/jolicitron/diag"
	"github.com/signadot/jolicitron/token"
)

var (
	ErrParse                  = errors.New("parse error")
	ErrExpectedNumber         = fmt.Errorf("%w: expected number", ErrParse)
	ErrExpectedToken          = fmt.Errorf("%w: expected token", ErrParse)
	ErrUnknownLengthReference = fmt.Errorf("%w: unknown length reference", ErrParse)
	ErrInvalidLength          = fmt.Errorf("%w: invalid length", ErrParse)

	ErrInvalidSchema = errors.New("invalid schema")
)

// ParseError is returned by compiled parsers.  Kind is one of the
// ErrExpected* or length sentinels.  Token is the offending token, nil when
// the stream was exhausted; Ref and Value describe length failures.
type ParseError struct {
	Kind  error
	Ref   string
	Token *token.Token
	Value any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrExpectedNumber:
		if e.Token == nil {
			return "expected number but found no more tokens"
		}
		if e.Token.Pos == nil {
			return fmt.Sprintf("expected number but found '%s'", e.Token.Text)
		}
		return fmt.Sprintf("expected number but found '%s' at %s", e.Token.Text, e.Token.Pos)
	case ErrExpectedToken:
		return "expected string but found no more tokens"
	case ErrUnknownLengthReference:
		return fmt.Sprintf("unknown length reference '%s'", e.Ref)
	case ErrInvalidLength:
		return fmt.Sprintf("expected '%s' to be a safe non-negative integer but found '%s'", e.Ref, formatValue(e.Value))
	default:
		return fmt.Sprintf("%v", e.Kind)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// SchemaError reports a canonical schema that cannot be compiled, such as a
// hand built one with nil items.
type SchemaError struct {
	Path diag.Path
	Msg  string
	Err  error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at %s: %s: %v", ErrInvalidSchema, e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s at %s: %s", ErrInvalidSchema, e.Path, e.Msg)
}

func (e *SchemaError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidSchema, e.Err}
	}
	return []error{ErrInvalidSchema}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return formatNumber(x)
	case nil:
		return "undefined"
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
