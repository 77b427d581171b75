package diag

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/jolicitron/token"
)

// Segment is either an object field or an array index.
type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

func Field(name string) Segment {
	return Segment{Field: name}
}

func Index(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

var identRE = regexp.MustCompile(`^\w+$`)

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	if integerLike(s.Field) {
		return "[" + s.Field + "]"
	}
	if identRE.MatchString(s.Field) {
		return "." + s.Field
	}
	return "[" + strconv.Quote(s.Field) + "]"
}

// integerLike reports whether f reads as an integer under JavaScript
// Number() rules, e.g. "7", "1e30" or "0x10".  Blank fields are not.
func integerLike(f string) bool {
	f = strings.TrimSpace(f)
	if f == "" {
		return false
	}
	v, ok := token.ParseNumber(f)
	if !ok || math.IsInf(v, 0) {
		return false
	}
	return v == math.Trunc(v)
}

type Path []Segment

// Push returns a copy of p extended by s; p itself is never modified.
func (p Path) Push(s Segment) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, s)
}

func (p Path) Field(name string) Path {
	return p.Push(Field(name))
}

func (p Path) Index(i int) Path {
	return p.Push(Index(i))
}

func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// At returns the value found by following p from root, or nil when a
// segment does not resolve.
func At(root any, p Path) any {
	node := root
	for _, s := range p {
		switch x := node.(type) {
		case map[string]any:
			key := s.Field
			if s.IsIndex {
				key = strconv.Itoa(s.Index)
			}
			node = x[key]
		case []any:
			i := s.Index
			if !s.IsIndex {
				n, err := strconv.Atoi(s.Field)
				if err != nil {
					return nil
				}
				i = n
			}
			if i < 0 || i >= len(x) {
				return nil
			}
			node = x[i]
		default:
			return nil
		}
	}
	return node
}
