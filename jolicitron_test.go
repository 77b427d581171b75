package jolicitron

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jolicitron/compile"
	"github.com/signadot/jolicitron/diag"
	"github.com/signadot/jolicitron/schema"
	"github.com/signadot/jolicitron/token"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestParseScenarios(t *testing.T) {
	tests := []struct {
		schema any
		input  string
		want   string
	}{
		{[]any{"nrows", "ncols"}, "3 4", `{"nrows": 3, "ncols": 4}`},
		{[]any{"n", []any{"values", "n"}}, "3 10 20 30", `{"n": 3, "values": [10, 20, 30]}`},
		{
			[]any{"n", []any{"items", "n", map[string]any{"type": "object", "properties": []any{"x", "y"}}}},
			"2 1 2 3 4",
			`{"n": 2, "items": [{"x": 1, "y": 2}, {"x": 3, "y": 4}]}`,
		},
		{[]any{"n", []string{"rows", "n", "string"}}, "2 AB CD", `{"n": 2, "rows": ["AB", "CD"]}`},
	}
	for _, tc := range tests {
		res, err := Parse(tc.schema, []byte(tc.input), Strict(true))
		if err != nil {
			t.Fatalf("%v: %v", tc.schema, err)
		}
		if diff := cmp.Diff(decode(t, tc.want), res.ToAny()); diff != "" {
			t.Errorf("%v (-want +got):\n%s", tc.schema, diff)
		}
	}
}

func TestParseSchemaError(t *testing.T) {
	_, err := Parse(map[string]any{}, []byte("1"))
	if !errors.Is(err, schema.ErrSchemaShape) {
		t.Fatalf("expected shape error, got %v", err)
	}
	var se *schema.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected *schema.ShapeError, got %T", err)
	}
	want := diag.Mismatch{
		Expected: []string{"a 'type' property", "a 'length' property"},
		Actual:   map[string]any{},
	}
	if diff := cmp.Diff(want, se.Mismatch); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExhausted(t *testing.T) {
	_, err := Parse("number", []byte(""))
	if !errors.Is(err, compile.ErrExpectedNumber) {
		t.Fatalf("expected ErrExpectedNumber, got %v", err)
	}
	if err.Error() != "expected number but found no more tokens" {
		t.Errorf("got %q", err.Error())
	}
}

func TestStrict(t *testing.T) {
	p := MustParseSchema([]any{"a", "b"})
	res, err := p.Parse([]byte("1 2 3"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 2 {
		t.Errorf("got %d fields", res.Len())
	}
	_, err = p.Parse([]byte("1 2\n 3"), Strict(true))
	if !errors.Is(err, ErrTrailingTokens) {
		t.Fatalf("expected ErrTrailingTokens, got %v", err)
	}
	if want := `trailing tokens: "3" at line 2, col 2`; err.Error() != want {
		t.Errorf("got %q want %q", err.Error(), want)
	}
	if _, err := p.Parse([]byte("1 2 \n\t"), Strict(true)); err != nil {
		t.Errorf("whitespace is not trailing input: %v", err)
	}
}

func TestWithScope(t *testing.T) {
	p := MustParseSchema(map[string]any{"length": "n", "items": "string"})
	res, err := p.Parse([]byte("a b"), WithScope(map[string]float64{"n": 1}), WithScope(map[string]float64{"n": 2}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a", "b"}, res.ToAny()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := p.Parse([]byte("a b")); !errors.Is(err, compile.ErrUnknownLengthReference) {
		t.Errorf("expected unknown reference without a seeded scope, got %v", err)
	}
}

func TestSeededScopeIsShadowed(t *testing.T) {
	res, err := Parse([]any{"n", []any{"xs", "n"}}, []byte("1 7"), WithScope(map[string]float64{"n": 5}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(decode(t, `{"n": 1, "xs": [7]}`), res.ToAny()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTokens(t *testing.T) {
	p := MustParseSchema("string")
	ts := token.FromStrings("a", "b")
	for _, want := range []string{"a", "b"} {
		res, err := p.ParseTokens(ts)
		if err != nil {
			t.Fatal(err)
		}
		if res.String != want {
			t.Errorf("got %q want %q", res.String, want)
		}
	}
	if _, err := p.ParseTokens(ts); !errors.Is(err, compile.ErrExpectedToken) {
		t.Errorf("expected ErrExpectedToken, got %v", err)
	}
}

func TestFromSchema(t *testing.T) {
	s := schema.Object(schema.Prop("n", schema.Number()), schema.Prop("xs", schema.Array("n", schema.String())))
	p, err := FromSchema(s)
	if err != nil {
		t.Fatal(err)
	}
	if p.Schema() != s {
		t.Error("schema not kept")
	}
	if _, err := FromSchema(schema.Array("n", nil)); !errors.Is(err, compile.ErrInvalidSchema) {
		t.Errorf("expected ErrInvalidSchema, got %v", err)
	}
}

func TestMustParseSchemaPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParseSchema(nil)
}

func TestLoadSchemaErrorNamesFile(t *testing.T) {
	_, err := LoadSchema("testdata/missing.json")
	if err == nil {
		t.Fatal("expected error")
	}
}
