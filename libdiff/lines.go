package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLines returns a line oriented diff turning from into to.
func DiffLines(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func Equal(diffs []diffpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}

type Colors struct {
	Delete func(string, ...any) string
	Insert func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Delete: color.New(color.FgRed).SprintfFunc(),
		Insert: color.New(color.FgGreen).SprintfFunc(),
	}
}

// Format renders diffs with "-" and "+" prefixed changed lines and " "
// prefixed context.  c may be nil.
func Format(diffs []diffpatch.Diff, c *Colors) string {
	var b strings.Builder
	for _, d := range diffs {
		prefix := " "
		paint := fmt.Sprintf
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
			if c != nil {
				paint = c.Delete
			}
		case diffpatch.DiffInsert:
			prefix = "+"
			if c != nil {
				paint = c.Insert
			}
		}
		for _, ln := range splitLines(d.Text) {
			b.WriteString(paint("%s", prefix+ln))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
