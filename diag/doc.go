// Package diag builds human readable, path annotated messages for schema
// type checking failures.
//
// A [Path] locates a fragment of a raw schema value.  [BuildStack] walks a
// path from its deepest segment back to the root, recording the value visible
// at each prefix, and [FormatError] renders a [Mismatch] together with that
// stack, one "at <path> in '<json>'" line per level:
//
//	expected string but found '1'
//	at $[1] in '<the tuple>'
//	at $[0][1] in '<the whole schema>'
package diag
