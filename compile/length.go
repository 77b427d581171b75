package compile

import (
	"strings"

	"github.com/signadot/jolicitron/eval"
	"github.com/signadot/jolicitron/ir"
)

// maxPrealloc bounds the capacity reserved up front for an array, so a
// huge length fails on missing tokens rather than on allocation.
const maxPrealloc = 1024

type lengthRef interface {
	resolve(sc *Scope) (int, error)
	String() string
}

func newLengthRef(length string) (lengthRef, error) {
	src, ok := strings.CutPrefix(length, "=")
	if !ok {
		return nameRef(length), nil
	}
	l, err := eval.Compile(src)
	if err != nil {
		return nil, err
	}
	return &exprRef{l: l}, nil
}

type nameRef string

func (r nameRef) String() string {
	return string(r)
}

func (r nameRef) resolve(sc *Scope) (int, error) {
	v, ok := sc.Lookup(string(r))
	if !ok {
		return 0, &ParseError{Kind: ErrUnknownLengthReference, Ref: string(r)}
	}
	return checkLength(string(r), v)
}

type exprRef struct {
	l *eval.Length
}

func (r *exprRef) String() string {
	return "=" + r.l.Source
}

func (r *exprRef) resolve(sc *Scope) (int, error) {
	env := make(map[string]any, len(r.l.Names))
	for _, name := range r.l.Names {
		v, ok := sc.Lookup(name)
		if !ok {
			return 0, &ParseError{Kind: ErrUnknownLengthReference, Ref: name}
		}
		env[name] = eval.FromFloat(v)
	}
	res, err := r.l.Run(env)
	if err != nil {
		return 0, &ParseError{Kind: ErrInvalidLength, Ref: r.String(), Value: err.Error()}
	}
	f, ok := eval.ToFloat(res)
	if !ok {
		return 0, &ParseError{Kind: ErrInvalidLength, Ref: r.String(), Value: res}
	}
	return checkLength(r.String(), f)
}

func checkLength(ref string, v float64) (int, error) {
	if !ir.IsSafeInteger(v) || v < 0 {
		return 0, &ParseError{Kind: ErrInvalidLength, Ref: ref, Value: v}
	}
	return int(v), nil
}
