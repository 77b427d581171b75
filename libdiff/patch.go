package libdiff

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/jolicitron/debug"
	"github.com/signadot/jolicitron/ir"
)

// Patch is a decoded RFC 6902 JSON patch.
type Patch struct {
	ops jsonpatch.Patch
}

func DecodePatch(d []byte) (*Patch, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding json patch: %w", err)
	}
	return &Patch{ops: ops}, nil
}

// Apply patches doc, returning a new node.  Fields keep the order they have
// in doc; fields added by the patch follow them in document order.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	if debug.Parse() {
		debug.Logf("json patch applied to %s\n", doc.Path())
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := p.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying json patch: %w", err)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, err
	}
	return restoreOrder(doc, res), nil
}

// restoreOrder rebuilds the objects in res with the field order of the
// corresponding objects in orig.  Array elements are matched by index.
func restoreOrder(orig, res *ir.Node) *ir.Node {
	if orig == nil || orig.Type != res.Type {
		return res
	}
	switch res.Type {
	case ir.ObjectType:
		out := ir.NewObject()
		for _, k := range orig.Keys() {
			if v := res.Get(k); v != nil {
				out.AppendField(k, restoreOrder(orig.Get(k), v))
			}
		}
		for _, k := range res.Keys() {
			if orig.Get(k) == nil {
				out.AppendField(k, res.Get(k))
			}
		}
		return out
	case ir.ArrayType:
		out := ir.NewArray(len(res.Values))
		for i, v := range res.Values {
			var o *ir.Node
			if i < len(orig.Values) {
				o = orig.Values[i]
			}
			out.AppendValue(restoreOrder(o, v))
		}
		return out
	}
	return res
}
