package ctree

import (
	"github.com/signadot/ctree/gomap"
	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/ir/kpath"
)

// Scalar is the set of Go types GetValue and GetPath can read a leaf into.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// GetValue returns the value at path converted to T. It returns def when a
// key is missing, an index is out of range, a segment does not fit the
// node it is applied to, or the value found is Null. A value that does not
// convert to T gives a *gomap.TypeMismatchError.
func GetValue[T Scalar](doc *ir.Node, def T, path ...kpath.Segment) (T, error) {
	if doc == nil {
		return def, nil
	}
	node := doc.Lookup(path...)
	if node == nil || node.Type == ir.NullType {
		return def, nil
	}
	var res T
	if err := gomap.FromIR(node, &res, gomap.AtPath(kpath.String(path))); err != nil {
		return def, err
	}
	return res, nil
}

// GetPath is GetValue with the path given as text, for example "a.b[2]".
func GetPath[T Scalar](doc *ir.Node, def T, kp string) (T, error) {
	segs, err := kpath.Parse(kp)
	if err != nil {
		return def, err
	}
	return GetValue(doc, def, segs...)
}
