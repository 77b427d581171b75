package jolicitron

import "maps"

type parseOpts struct {
	strict bool
	scope  map[string]float64
}

type ParseOption func(*parseOpts)

// Strict makes input left over after the root value an error.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// WithScope seeds the root scope, making vals available as array lengths.
// Repeated options merge.
func WithScope(vals map[string]float64) ParseOption {
	return func(o *parseOpts) {
		if o.scope == nil {
			o.scope = map[string]float64{}
		}
		maps.Copy(o.scope, vals)
	}
}
