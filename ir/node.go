package ir

import (
	"math"
	"strconv"
)

// MaxSafeInteger is the largest integer a float64 holds without loss of
// precision (2^53 - 1).
const MaxSafeInteger = 1<<53 - 1

// Node is a parsed value.  Objects keep their fields in insertion order:
// Fields[i] is the (string) key of Values[i].
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Number  string
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	f := float64(v)
	return &Node{
		Type:    NumberType,
		Number:  strconv.FormatInt(v, 10),
		Float64: &f,
		Int64:   &v,
	}
}

func FromFloat(f float64) *Node {
	return FromNumber(strconv.FormatFloat(f, 'g', -1, 64), f)
}

// FromNumber makes a number node from its source text and value.  Int64 is
// set when f is integral and safely representable.
func FromNumber(text string, f float64) *Node {
	res := &Node{
		Type:    NumberType,
		Number:  text,
		Float64: &f,
	}
	if IsSafeInteger(f) {
		i := int64(f)
		res.Int64 = &i
	}
	return res
}

// IsSafeInteger reports whether f is an integer in [-MaxSafeInteger, MaxSafeInteger].
func IsSafeInteger(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return f == math.Trunc(f) && math.Abs(f) <= MaxSafeInteger
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	for _, v := range vs {
		res.AppendValue(v)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for _, kv := range kvs {
		res.AppendField(kv.Key, kv.Val)
	}
	return res
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func NewArray(capacity int) *Node {
	return &Node{Type: ArrayType, Values: make([]*Node, 0, capacity)}
}

// AppendField adds a field to an object node, replacing an existing field
// of the same name in place.
func (y *Node) AppendField(name string, v *Node) {
	v.Parent = y
	v.ParentField = name
	for i, f := range y.Fields {
		if f.String == name {
			v.ParentIndex = i
			y.Values[i] = v
			return
		}
	}
	v.ParentIndex = len(y.Values)
	key := FromString(name)
	key.Parent = y
	key.ParentIndex = len(y.Fields)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

func (y *Node) AppendValue(v *Node) {
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
}

// Get returns the value of field name, or nil.
func (y *Node) Get(name string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f.String == name {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Float returns the numeric value of a number node.
func (y *Node) Float() (float64, bool) {
	if y == nil || y.Type != NumberType || y.Float64 == nil {
		return 0, false
	}
	return *y.Float64, true
}

// ToAny converts y to plain Go values: map[string]any, []any, float64 and
// string.  Field order is lost.
func (y *Node) ToAny() any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f.String] = y.Values[i].ToAny()
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case NumberType:
		f, _ := y.Float()
		return f
	case StringType:
		return y.String
	default:
		return nil
	}
}
