package debug

import (
	"bytes"
	"strings"
	"testing"
)

type marshaler struct{}

func (marshaler) MarshalJSON() ([]byte, error) { return []byte(`{"a":1}`), nil }

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("%s %v %v\n", "x", []any{1.0}, marshaler{})
	got := buf.String()
	if !strings.HasPrefix(got, "x [") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, `{"a":1}`) {
		t.Errorf("marshaler not rendered: %q", got)
	}
}
