package diag

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Frame is one level of a diagnostic stack: the remaining path and the value
// it is resolved in.
type Frame struct {
	Path  Path
	Value any
}

// BuildStack returns one frame per path level, deepest first.  Frame i holds
// the last i+1 segments of p and the value at the remaining prefix.
func BuildStack(root any, p Path) []Frame {
	var stack []Frame
	for i := len(p) - 1; i >= 0; i-- {
		rest := make(Path, len(p)-i)
		copy(rest, p[i:])
		stack = append(stack, Frame{Path: rest, Value: At(root, p[:i])})
	}
	return stack
}

func StackLines(stack []Frame) []string {
	res := make([]string, len(stack))
	for i, f := range stack {
		res[i] = fmt.Sprintf("at %s in '%s'", f.Path, Stringify(f.Value))
	}
	return res
}

// Stringify renders v as two space indented JSON.
func Stringify(v any) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
