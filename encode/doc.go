// Package encode renders parsed values as JSON or YAML.
//
// JSON output matches JSON.stringify(v, null, 2) layout: two space
// indentation, fields in declaration order, non finite numbers as null.
//
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
package encode
