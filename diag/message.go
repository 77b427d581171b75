package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Mismatch describes a value at Path which matched none of Expected.
type Mismatch struct {
	Expected []string
	Actual   any
	Path     Path
}

// Headline is the first line of a formatted message.
func (m Mismatch) Headline() string {
	return fmt.Sprintf("expected %s but found '%s'", strings.Join(m.Expected, " or "), Stringify(m.Actual))
}

// FormatError renders m followed by its stack in root, root-most frame last.
func FormatError(m Mismatch, root any) string {
	return FormatErrorColors(m, root, nil)
}

type Colors struct {
	Expected func(string, ...any) string
	Actual   func(string, ...any) string
	Path     func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Expected: color.GreenString,
		Actual:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		Path:     color.RGB(128, 168, 196).SprintfFunc(),
	}
}

func FormatErrorColors(m Mismatch, root any, c *Colors) string {
	if c == nil {
		lines := append([]string{m.Headline()}, StackLines(BuildStack(root, m.Path))...)
		return strings.Join(lines, "\n")
	}
	exp := make([]string, len(m.Expected))
	for i, e := range m.Expected {
		exp[i] = c.Expected("%s", e)
	}
	lines := []string{fmt.Sprintf("expected %s but found '%s'", strings.Join(exp, " or "), c.Actual("%s", Stringify(m.Actual)))}
	for _, f := range BuildStack(root, m.Path) {
		lines = append(lines, fmt.Sprintf("at %s in '%s'", c.Path("%s", f.Path), Stringify(f.Value)))
	}
	return strings.Join(lines, "\n")
}
