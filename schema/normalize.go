package schema

// Normalize expands a validated shorthand into a canonical schema.  It is
// total over the output of Validate.
func Normalize(sh Shorthand) *Schema {
	switch x := sh.(type) {
	case Atom:
		return &Schema{Kind: kindOf(string(x))}
	case Scalar:
		return &Schema{Kind: kindOf(x.Type)}
	case ImplicitObject:
		return normalizeObject(x)
	case ExplicitObject:
		return normalizeObject(x.Properties)
	case ArrayShorthand:
		return normalizeArray(x)
	default:
		panic("unknown shorthand")
	}
}

func kindOf(t string) Kind {
	if t == "string" {
		return StringKind
	}
	return NumberKind
}

func normalizeObject(props []PropertyShorthand) *Schema {
	res := make([]Property, len(props))
	for i, p := range props {
		res[i] = NormalizeProperty(p)
	}
	return Object(res...)
}

// normalizeArray treats any record carrying a length as an array, whatever
// its type says.  Without items, a "number" or "string" type names the item
// kind; otherwise items are numbers.
func normalizeArray(a ArrayShorthand) *Schema {
	if a.Items != nil {
		return Array(a.Length, Normalize(a.Items))
	}
	switch a.Type {
	case "string":
		return Array(a.Length, String())
	default:
		return Array(a.Length, Number())
	}
}

func NormalizeProperty(p PropertyShorthand) Property {
	switch x := p.(type) {
	case NameProperty:
		return Prop(string(x), Number())
	case TupleProperty:
		items := Number()
		if x.Items != nil {
			items = Normalize(x.Items)
		}
		return Prop(x.Name, Array(x.Length, items))
	case ExplicitProperty:
		return Prop(x.Name, Normalize(x.Value))
	default:
		panic("unknown property shorthand")
	}
}
