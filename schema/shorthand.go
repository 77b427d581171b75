package schema

// Shorthand is a validated, not yet normalized schema.  The set of
// implementations is closed: Atom, ImplicitObject, ExplicitObject,
// ArrayShorthand and Scalar.
type Shorthand interface {
	// Raw returns the JSON shaped value this shorthand was validated from.
	Raw() any
	shorthand()
}

// PropertyShorthand is a validated object property: NameProperty,
// TupleProperty or ExplicitProperty.
type PropertyShorthand interface {
	Raw() any
	propertyShorthand()
}

// Atom is the bare string "number" or "string".
type Atom string

type ImplicitObject []PropertyShorthand

type ExplicitObject struct {
	Properties []PropertyShorthand
}

// ArrayShorthand is a record carrying "length".  Type is "", "number",
// "string" or "array"; Items may be nil.
type ArrayShorthand struct {
	Length string
	Type   string
	Items  Shorthand
}

// Scalar is {"type": "number"} or {"type": "string"}.
type Scalar struct {
	Type string
}

type NameProperty string

// TupleProperty is ["name", "length"] or ["name", "length", items].
type TupleProperty struct {
	Name   string
	Length string
	Items  Shorthand
}

type ExplicitProperty struct {
	Name  string
	Value Shorthand
}

func (Atom) shorthand()           {}
func (ImplicitObject) shorthand() {}
func (ExplicitObject) shorthand() {}
func (ArrayShorthand) shorthand() {}
func (Scalar) shorthand()         {}

func (NameProperty) propertyShorthand()     {}
func (TupleProperty) propertyShorthand()    {}
func (ExplicitProperty) propertyShorthand() {}

func (a Atom) Raw() any { return string(a) }

func (o ImplicitObject) Raw() any {
	return rawProperties(o)
}

func (o ExplicitObject) Raw() any {
	return map[string]any{
		"type":       "object",
		"properties": rawProperties(o.Properties),
	}
}

func rawProperties(props []PropertyShorthand) []any {
	res := make([]any, len(props))
	for i, p := range props {
		res[i] = p.Raw()
	}
	return res
}

func (a ArrayShorthand) Raw() any {
	res := map[string]any{"length": a.Length}
	if a.Type != "" {
		res["type"] = a.Type
	}
	if a.Items != nil {
		res["items"] = a.Items.Raw()
	}
	return res
}

func (s Scalar) Raw() any {
	return map[string]any{"type": s.Type}
}

func (p NameProperty) Raw() any { return string(p) }

func (p TupleProperty) Raw() any {
	if p.Items == nil {
		return []any{p.Name, p.Length}
	}
	return []any{p.Name, p.Length, p.Items.Raw()}
}

func (p ExplicitProperty) Raw() any {
	return map[string]any{"name": p.Name, "value": p.Value.Raw()}
}
