// Package schema defines the schema language: the raw, loosely typed values
// users write (usually decoded from JSON or YAML), the validated shorthand
// forms accepted by [Validate], and the canonical [Schema] produced by
// [Normalize].
//
// Accepted raw forms:
//
//	"number", "string"                         scalar schemas
//	[ <property>... ]                          implicit object
//	{"type": "object", "properties": [...]}    explicit object
//	{"length": "n", "type"?: ..., "items"?: S} array
//	{"type": "number"} / {"type": "string"}    explicit scalar
//
// and properties:
//
//	"name"                      number property
//	["name", "n"]               array of numbers of length n
//	["name", "n", S]            array of S of length n
//	{"name": "name", "value": S}
package schema
