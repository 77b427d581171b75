package ir

// Type is the kind of a parsed value.  The four types mirror the schema
// kinds one to one.
type Type int

const (
	NumberType Type = iota
	StringType
	ObjectType
	ArrayType
)

func (t Type) String() string {
	switch t {
	case NumberType:
		return "Number"
	case StringType:
		return "String"
	case ObjectType:
		return "Object"
	case ArrayType:
		return "Array"
	default:
		return "<unknown type>"
	}
}

func Types() []Type {
	return []Type{NumberType, StringType, ObjectType, ArrayType}
}
