package schema

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func prepare(t *testing.T, s string) *Schema {
	t.Helper()
	res, err := Prepare(mustJSON(t, s))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *Schema
	}{
		{
			name: "number atom",
			in:   `"number"`,
			want: Number(),
		},
		{
			name: "string record",
			in:   `{"type": "string"}`,
			want: String(),
		},
		{
			name: "implicit object of names",
			in:   `["nrows", "ncols"]`,
			want: Object(Prop("nrows", Number()), Prop("ncols", Number())),
		},
		{
			name: "empty implicit object",
			in:   `[]`,
			want: Object(),
		},
		{
			name: "two tuple is array of numbers",
			in:   `["n", ["values", "n"]]`,
			want: Object(Prop("n", Number()), Prop("values", Array("n", Number()))),
		},
		{
			name: "three tuple has explicit items",
			in:   `["n", ["rows", "n", "string"]]`,
			want: Object(Prop("n", Number()), Prop("rows", Array("n", String()))),
		},
		{
			name: "nested explicit object items",
			in:   `["n", ["items", "n", {"type": "object", "properties": ["x", "y"]}]]`,
			want: Object(
				Prop("n", Number()),
				Prop("items", Array("n", Object(Prop("x", Number()), Prop("y", Number())))),
			),
		},
		{
			name: "explicit property",
			in:   `[{"name": "p", "value": ["q"]}]`,
			want: Object(Prop("p", Object(Prop("q", Number())))),
		},
		{
			name: "untyped array defaults to numbers",
			in:   `{"length": "n"}`,
			want: Array("n", Number()),
		},
		{
			name: "typed array without items",
			in:   `{"length": "n", "type": "string"}`,
			want: Array("n", String()),
		},
		{
			name: "array type without items",
			in:   `{"length": "n", "type": "array"}`,
			want: Array("n", Number()),
		},
		{
			// length wins over a conflicting type: intentional but ambiguous
			name: "length with conflicting type and items",
			in:   `{"length": "n", "type": "number", "items": "string"}`,
			want: Array("n", String()),
		},
		{
			name: "nested arrays",
			in:   `{"length": "n", "items": {"length": "m", "items": "string"}}`,
			want: Array("n", Array("m", String())),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := prepare(t, tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

var idempotenceInputs = []string{
	`"string"`,
	`["a", ["b", "a"], ["c", "a", ["d", ["e", "d", "string"]]]]`,
	`{"type": "object", "properties": [{"name": "x", "value": {"length": "x", "type": "string"}}]}`,
	`{"length": "n", "items": {"length": "m"}}`,
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, in := range idempotenceInputs {
		s := prepare(t, in)
		again := Normalize(s.Shorthand())
		if diff := cmp.Diff(s, again); diff != "" {
			t.Errorf("%s: renormalizing changed the schema (-first +second):\n%s", in, diff)
		}
	}
}

func TestCanonicalJSONRoundTrip(t *testing.T) {
	for _, in := range idempotenceInputs {
		s := prepare(t, in)
		d, err := json.Marshal(s)
		if err != nil {
			t.Fatal(err)
		}
		again := prepare(t, string(d))
		if diff := cmp.Diff(s, again); diff != "" {
			t.Errorf("%s: canonical json did not round trip (-first +second):\n%s", in, diff)
		}
	}
}

func TestSchemaString(t *testing.T) {
	s := Object(Prop("n", Number()), Prop("v", Array("n", String())))
	want := `{"properties":[{"name":"n","value":{"type":"number"}},{"name":"v","value":{"items":{"type":"string"},"length":"n","type":"array"}}],"type":"object"}`
	if got := s.String(); got != want {
		t.Errorf("got %s", got)
	}
}
