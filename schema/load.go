package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jolicitron/debug"
	"github.com/signadot/jolicitron/format"
)

// Decode reads a raw schema document in format f.  YAML documents are
// converted to JSON first so both formats yield the same raw value model:
// map[string]any, []any, string, float64, bool and nil.
func Decode(d []byte, f format.Format) (any, error) {
	if f.IsYAML() {
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, fmt.Errorf("error converting yaml schema: %w", err)
		}
		d = j
	}
	var raw any
	if err := json.Unmarshal(d, &raw); err != nil {
		return nil, fmt.Errorf("error decoding schema: %w", err)
	}
	return raw, nil
}

func Load(r io.Reader, f format.Format) (any, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading schema: %w", err)
	}
	return Decode(d, f)
}

// LoadFile loads a raw schema, choosing the format from the file suffix.
func LoadFile(path string) (any, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := Decode(d, format.FromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}

// Plain converts arbitrary Go values (e.g. []string, map[string]string or
// tagged structs) into the raw value model via a JSON round trip.  Values
// already in the model, and values that cannot be marshaled, are returned
// unchanged.
func Plain(v any) (any, error) {
	if isPlain(v) {
		return v, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		// left for Validate to reject with a proper diagnostic
		return v, nil
	}
	var res any
	dec := json.NewDecoder(bytes.NewReader(d))
	if err := dec.Decode(&res); err != nil {
		return nil, err
	}
	return res, nil
}

func isPlain(v any) bool {
	switch x := v.(type) {
	case nil, string, float64, bool:
		return true
	case []any:
		for _, e := range x {
			if !isPlain(e) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, e := range x {
			if !isPlain(e) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Prepare validates and normalizes raw.
func Prepare(raw any) (*Schema, error) {
	raw, err := Plain(raw)
	if err != nil {
		return nil, err
	}
	sh, err := Validate(raw)
	if err != nil {
		return nil, err
	}
	s := Normalize(sh)
	if debug.Schema() {
		debug.Logf("canonical schema: %s\n", s)
	}
	return s, nil
}
