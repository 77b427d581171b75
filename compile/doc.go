// Package compile turns a canonical schema into a recursive descent
// [Parser] over a token stream.
//
// Parsers thread a [Scope] of previously parsed numeric properties.  Each
// object activation reads through to its parent's bindings and writes only
// to its own layer; array lengths are resolved by name (or by a length
// expression prefixed with "=") against the scope the array is parsed in.
package compile
