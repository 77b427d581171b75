package schema

import (
	"errors"

	"github.com/signadot/jolicitron/diag"
)

// Validate checks that raw is an accepted schema form and returns its
// validated shorthand.  Failures are *ShapeError carrying the path to the
// first offending fragment; checks run in a fixed order per form and the
// first failure wins.
func Validate(raw any) (Shorthand, error) {
	res, err := validateAt(raw, nil)
	if err != nil {
		var se *ShapeError
		if errors.As(err, &se) {
			se.Root = raw
		}
		return nil, err
	}
	return res, nil
}

func validateAt(raw any, path diag.Path) (Shorthand, error) {
	switch x := raw.(type) {
	case []any:
		return validateImplicitObjectAt(x, path)
	case map[string]any:
		if t, ok := x["type"]; ok && t == "object" {
			return validateExplicitObjectAt(x, path)
		}
		if _, ok := x["length"]; ok {
			return validateArrayAt(x, path)
		}
		if _, ok := x["type"]; ok {
			return validateScalarAt(x, path)
		}
		return nil, shapeErr([]string{expectProperty("type"), expectProperty("length")}, raw, path)
	case string:
		if x == "number" || x == "string" {
			return Atom(x), nil
		}
	}
	return nil, shapeErr([]string{"object", "array", `"number"`, `"string"`}, raw, path)
}

func validateScalarAt(x map[string]any, path diag.Path) (Shorthand, error) {
	switch t := x["type"]; t {
	case "string", "number":
		return Scalar{Type: t.(string)}, nil
	default:
		return nil, shapeErr([]string{`"string"`, `"number"`}, t, path.Field("type"))
	}
}

func validateArrayAt(x map[string]any, path diag.Path) (Shorthand, error) {
	length, ok := x["length"].(string)
	if !ok {
		return nil, shapeErr([]string{"string"}, x["length"], path.Field("length"))
	}
	res := ArrayShorthand{Length: length}
	if t, ok := x["type"]; ok {
		switch t {
		case "number", "string", "array":
			res.Type = t.(string)
		default:
			return nil, shapeErr([]string{`"number"`, `"string"`, `"array"`}, t, path.Field("type"))
		}
	}
	if items, ok := x["items"]; ok {
		sh, err := validateAt(items, path.Field("items"))
		if err != nil {
			return nil, err
		}
		res.Items = sh
	}
	return res, nil
}

func validateImplicitObjectAt(x []any, path diag.Path) (Shorthand, error) {
	props, err := validatePropertiesAt(x, path)
	if err != nil {
		return nil, err
	}
	return ImplicitObject(props), nil
}

func validateExplicitObjectAt(x map[string]any, path diag.Path) (Shorthand, error) {
	raw, ok := x["properties"]
	if !ok {
		return nil, shapeErr([]string{expectProperty("properties")}, x, path)
	}
	props, ok := raw.([]any)
	if !ok {
		return nil, shapeErr([]string{"array"}, raw, path.Field("properties"))
	}
	res, err := validatePropertiesAt(props, path.Field("properties"))
	if err != nil {
		return nil, err
	}
	return ExplicitObject{Properties: res}, nil
}

func validatePropertiesAt(x []any, path diag.Path) ([]PropertyShorthand, error) {
	res := make([]PropertyShorthand, len(x))
	for i, p := range x {
		ps, err := validatePropertyAt(p, path.Index(i))
		if err != nil {
			return nil, err
		}
		res[i] = ps
	}
	return res, nil
}

func validatePropertyAt(raw any, path diag.Path) (PropertyShorthand, error) {
	switch x := raw.(type) {
	case map[string]any:
		return validateExplicitPropertyAt(x, path)
	case []any:
		return validateTuplePropertyAt(x, path)
	case string:
		return NameProperty(x), nil
	default:
		return nil, shapeErr([]string{"object", "array", "string"}, raw, path)
	}
}

func validateExplicitPropertyAt(x map[string]any, path diag.Path) (PropertyShorthand, error) {
	if _, ok := x["name"]; !ok {
		return nil, shapeErr([]string{expectProperty("name")}, x, path)
	}
	value, ok := x["value"]
	if !ok {
		return nil, shapeErr([]string{expectProperty("value")}, x, path)
	}
	name, ok := x["name"].(string)
	if !ok {
		return nil, shapeErr([]string{"string"}, x["name"], path.Field("name"))
	}
	sh, err := validateAt(value, path.Field("value"))
	if err != nil {
		return nil, err
	}
	return ExplicitProperty{Name: name, Value: sh}, nil
}

func validateTuplePropertyAt(x []any, path diag.Path) (PropertyShorthand, error) {
	if len(x) < 2 || len(x) > 3 {
		return nil, shapeErr([]string{"2", "3"}, len(x), path.Field("length"))
	}
	name, ok := x[0].(string)
	if !ok {
		return nil, shapeErr([]string{"string"}, x[0], path.Index(0))
	}
	length, ok := x[1].(string)
	if !ok {
		return nil, shapeErr([]string{"string"}, x[1], path.Index(1))
	}
	res := TupleProperty{Name: name, Length: length}
	if len(x) == 2 {
		return res, nil
	}
	sh, err := validateAt(x[2], path.Index(2))
	if err != nil {
		return nil, err
	}
	res.Items = sh
	return res, nil
}
