// Package jolicitron parses whitespace separated text into structured
// values described by a schema.
//
// A schema lists the values in the order they appear in the input.  Its
// shorthand forms are:
//
//	"number", "string"                 a scalar
//	["a", "b"]                         an object with number properties a and b
//	["xs", "n"]                        (as a property) an array of n numbers
//	["xs", "n", schema]                (as a property) an array of n schema values
//	{"name": "p", "value": schema}     (as a property) an explicit property
//	{"length": "n", "items": schema}   an array
//	{"type": "object", "properties": [...]}
//
// Array lengths name a number property parsed earlier in the same object or
// in an enclosing one.  A length starting with "=" is an expression over such
// names, for example "=nrows * ncols".
//
//	p, err := jolicitron.ParseSchema([]any{"n", []any{"values", "n"}})
//	...
//	v, err := p.Parse([]byte("3 10 20 30"))
//	// {"n": 3, "values": [10, 20, 30]}
package jolicitron
