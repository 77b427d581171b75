package schema

import (
	"errors"

	"github.com/signadot/jolicitron/diag"
)

var ErrSchemaShape = errors.New("schema shape error")

// ShapeError reports a raw schema fragment that matches none of the accepted
// forms.  Root is the whole raw schema, used to render the diagnostic stack.
type ShapeError struct {
	diag.Mismatch
	Root any
}

func (e *ShapeError) Error() string {
	return diag.FormatError(e.Mismatch, e.Root)
}

func (e *ShapeError) Unwrap() error {
	return ErrSchemaShape
}

func shapeErr(expected []string, actual any, path diag.Path) error {
	return &ShapeError{Mismatch: diag.Mismatch{Expected: expected, Actual: actual, Path: path}}
}

func expectProperty(name string) string {
	return "a '" + name + "' property"
}
