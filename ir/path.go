package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// PathElem is one step of a Path: an array index when IsIndex is set,
// otherwise an object field.
type PathElem struct {
	Field   string
	Index   int
	IsIndex bool
}

// Path addresses a node from the root, written $.field[0].'quoted field'.
type Path []PathElem

func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, e := range p {
		if e.IsIndex {
			b.WriteString("[" + strconv.Itoa(e.Index) + "]")
			continue
		}
		b.WriteByte('.')
		b.WriteString(quoteField(e.Field))
	}
	return b.String()
}

func quoteField(f string) string {
	if f != "" && !strings.ContainsAny(f, "'.*$[] ") {
		return f
	}
	return "'" + strings.ReplaceAll(f, "'", `\'`) + "'"
}

// Path returns the location of y within its root.
func (y *Node) Path() string {
	var rev Path
	for x := y; x.Parent != nil; x = x.Parent {
		switch x.Parent.Type {
		case ObjectType:
			rev = append(rev, PathElem{Field: x.ParentField})
		case ArrayType:
			rev = append(rev, PathElem{Index: x.ParentIndex, IsIndex: true})
		default:
			panic("parent but not in container")
		}
	}
	p := make(Path, len(rev))
	for i, e := range rev {
		p[len(rev)-1-i] = e
	}
	return p.String()
}

func ParsePath(s string) (Path, error) {
	if !strings.HasPrefix(s, "$") {
		return nil, fmt.Errorf("path %q should start with '$'", s)
	}
	var p Path
	rest := s[1:]
	for rest != "" {
		switch rest[0] {
		case '.':
			field, tail, err := scanField(rest[1:])
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", s, err)
			}
			p = append(p, PathElem{Field: field})
			rest = tail
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return nil, fmt.Errorf("path %q: expected '[' <index> ']'", s)
			}
			n, err := strconv.ParseUint(rest[1:end], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("path %q: bad index: %w", s, err)
			}
			p = append(p, PathElem{Index: int(n), IsIndex: true})
			rest = rest[end+1:]
		default:
			return nil, fmt.Errorf("path %q: expected '.' or '[' at %q", s, rest)
		}
	}
	return p, nil
}

// scanField reads a bare or single quoted field name from the front of s.
func scanField(s string) (field, rest string, err error) {
	if s == "" {
		return "", "", fmt.Errorf("expected field at end of path")
	}
	if s[0] != '\'' {
		i := strings.IndexAny(s, ".[")
		if i == -1 {
			return s, "", nil
		}
		return s[:i], s[i:], nil
	}
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
		case '\'':
			return b.String(), s[i+1:], nil
		default:
			b.WriteByte(c)
		}
	}
	return "", "", fmt.Errorf("unterminated quoted field")
}

// GetPath returns the node at path, or nil if a field along it is absent.
func (y *Node) GetPath(path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	res := y
	for _, e := range p {
		if e.IsIndex {
			if res.Type != ArrayType {
				return nil, fmt.Errorf("expected array at %s, got %s", res.Path(), res.Type)
			}
			if e.Index >= len(res.Values) {
				return nil, fmt.Errorf("index out of bounds %d (len %d) at %s", e.Index, len(res.Values), res.Path())
			}
			res = res.Values[e.Index]
			continue
		}
		if res.Type != ObjectType {
			return nil, fmt.Errorf("expected object at %s, got %s", res.Path(), res.Type)
		}
		if res = res.Get(e.Field); res == nil {
			return nil, nil
		}
	}
	return res, nil
}
