package compile

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jolicitron/schema"
	"github.com/signadot/jolicitron/token"
)

// gen builds random canonical schemas together with consistent inputs.
// Every array length names a number property declared just before it in
// the same object.
type gen struct {
	r    *rand.Rand
	next int
}

func (g *gen) name(prefix string) string {
	g.next++
	return prefix + strconv.Itoa(g.next)
}

func (g *gen) object(depth int) *schema.Schema {
	n := 1 + g.r.Intn(4)
	var props []schema.Property
	for range n {
		switch k := g.r.Intn(5); {
		case k == 0:
			props = append(props, schema.Prop(g.name("s"), schema.String()))
		case k == 1 && depth > 0:
			props = append(props, schema.Prop(g.name("o"), g.object(depth-1)))
		case k == 2:
			length := g.name("n")
			props = append(props,
				schema.Prop(length, schema.Number()),
				schema.Prop(g.name("a"), schema.Array(length, g.item(depth-1))))
		default:
			props = append(props, schema.Prop(g.name("x"), schema.Number()))
		}
	}
	return schema.Object(props...)
}

func (g *gen) item(depth int) *schema.Schema {
	if depth <= 0 {
		if g.r.Intn(2) == 0 {
			return schema.String()
		}
		return schema.Number()
	}
	switch g.r.Intn(3) {
	case 0:
		return schema.String()
	case 1:
		return schema.Number()
	default:
		return g.object(depth - 1)
	}
}

// input writes tokens for s and returns the value they should parse to.
func (g *gen) input(s *schema.Schema, toks *[]string) any {
	switch s.Kind {
	case schema.NumberKind:
		v := g.r.Intn(4)
		*toks = append(*toks, strconv.Itoa(v))
		return float64(v)
	case schema.StringKind:
		v := g.name("t")
		*toks = append(*toks, v)
		return v
	case schema.ObjectKind:
		res := map[string]any{}
		lengths := map[string]int{}
		for _, p := range s.Properties {
			if p.Value.Kind == schema.ArrayKind {
				n := lengths[p.Value.Length]
				arr := make([]any, n)
				for i := range arr {
					arr[i] = g.input(p.Value.Items, toks)
				}
				res[p.Name] = arr
				continue
			}
			v := g.input(p.Value, toks)
			if f, ok := v.(float64); ok {
				lengths[p.Name] = int(f)
			}
			res[p.Name] = v
		}
		return res
	default:
		panic(fmt.Sprintf("unexpected %s", s.Kind))
	}
}

func TestGeneratedRoundTrip(t *testing.T) {
	g := &gen{r: rand.New(rand.NewSource(7))}
	for i := range 200 {
		s := g.object(3)
		var toks []string
		want := g.input(s, &toks)
		p, err := Compile(s)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		ts := token.TokenizeString(strings.Join(toks, "\n"))
		got, err := p(ts, nil)
		if err != nil {
			t.Fatalf("%d: schema %s: %v", i, s, err)
		}
		if diff := cmp.Diff(want, got.ToAny()); diff != "" {
			t.Fatalf("%d: schema %s (-want +got):\n%s", i, s, diff)
		}
		for j, p := range s.Properties {
			if got.Keys()[j] != p.Name {
				t.Fatalf("%d: key %d is %s, want %s", i, j, got.Keys()[j], p.Name)
			}
		}
		if _, ok := ts.Next(); ok {
			t.Fatalf("%d: tokens remain", i)
		}
	}
}
