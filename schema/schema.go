package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type Kind int

const (
	NumberKind Kind = iota
	StringKind
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case ObjectKind:
		return "object"
	case ArrayKind:
		return "array"
	default:
		return fmt.Sprintf("<kind %d>", int(k))
	}
}

// Schema is a canonical schema node.  Properties is only used by objects,
// Length and Items only by arrays.
type Schema struct {
	Kind       Kind
	Properties []Property
	Length     string
	Items      *Schema
}

type Property struct {
	Name  string
	Value *Schema
}

func Number() *Schema {
	return &Schema{Kind: NumberKind}
}

func String() *Schema {
	return &Schema{Kind: StringKind}
}

func Array(length string, items *Schema) *Schema {
	return &Schema{Kind: ArrayKind, Length: length, Items: items}
}

func Object(props ...Property) *Schema {
	if props == nil {
		props = []Property{}
	}
	return &Schema{Kind: ObjectKind, Properties: props}
}

func Prop(name string, value *Schema) Property {
	return Property{Name: name, Value: value}
}

// Shorthand returns s in explicit validated form, so that
// Normalize(s.Shorthand()) is equal to s.
func (s *Schema) Shorthand() Shorthand {
	switch s.Kind {
	case ObjectKind:
		props := make([]PropertyShorthand, len(s.Properties))
		for i, p := range s.Properties {
			props[i] = ExplicitProperty{Name: p.Name, Value: p.Value.Shorthand()}
		}
		return ExplicitObject{Properties: props}
	case ArrayKind:
		var items Shorthand
		if s.Items != nil {
			items = s.Items.Shorthand()
		}
		return ArrayShorthand{Length: s.Length, Type: "array", Items: items}
	default:
		return Scalar{Type: s.Kind.String()}
	}
}

// Raw returns the explicit raw (JSON shaped) form of s.
func (s *Schema) Raw() any {
	return s.Shorthand().Raw()
}

func (s *Schema) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Raw())
}

func (s *Schema) String() string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s.Raw()); err != nil {
		return fmt.Sprintf("<schema: %v>", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
