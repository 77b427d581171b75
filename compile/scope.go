package compile

import (
	"maps"

	"github.com/signadot/jolicitron/debug"
)

// Scope is one layer of numeric bindings.  Lookups fall through to the
// parent; Set only writes the receiver's own layer.  A nil *Scope is an
// empty root.
type Scope struct {
	own    map[string]float64
	parent *Scope
}

func NewScope(parent *Scope) *Scope {
	return &Scope{own: map[string]float64{}, parent: parent}
}

// RootScope returns a parentless scope seeded with vals.
func RootScope(vals map[string]float64) *Scope {
	sc := NewScope(nil)
	maps.Copy(sc.own, vals)
	return sc
}

func (s *Scope) Parent() *Scope {
	if s == nil {
		return nil
	}
	return s.parent
}

func (s *Scope) Lookup(name string) (float64, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.own[name]; ok {
			return v, true
		}
	}
	return 0, false
}

func (s *Scope) HasOwn(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.own[name]
	return ok
}

func (s *Scope) Set(name string, v float64) {
	if debug.Scope() {
		switch {
		case s.HasOwn(name):
			debug.Logf("WARNING: overriding variable '%s'\n", name)
		default:
			if _, ok := s.parent.Lookup(name); ok {
				debug.Logf("WARNING: shadowing variable '%s'\n", name)
			}
		}
		debug.Logf("scope %s = %s\n", name, formatNumber(v))
	}
	s.own[name] = v
}

// Visible returns every binding visible from s, nearest layer winning.
func (s *Scope) Visible() map[string]float64 {
	res := map[string]float64{}
	var layers []*Scope
	for sc := s; sc != nil; sc = sc.parent {
		layers = append(layers, sc)
	}
	for i := len(layers) - 1; i >= 0; i-- {
		maps.Copy(res, layers[i].own)
	}
	return res
}
