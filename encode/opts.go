package encode

import "github.com/signadot/jolicitron/format"

type EncodeOption func(*encState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *encState) { es.format = f }
}

// EncodeIndent sets the JSON indentation width; 0 gives compact output.
func EncodeIndent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// EncodeColors colors JSON output.  YAML output is never colored.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
