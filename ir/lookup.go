package ir

import "github.com/signadot/ctree/ir/kpath"

// Lookup follows path from y. It returns nil when a key is missing, an index
// is out of range, or a segment does not fit the kind of node it is applied
// to. It never creates nodes.
func (y *Node) Lookup(path ...kpath.Segment) *Node {
	res := y
	for _, seg := range path {
		switch {
		case seg.Field != nil:
			if res.Type != ObjectType {
				return nil
			}
			res = Get(res, *seg.Field)
			if res == nil {
				return nil
			}
		case seg.Index != nil:
			if res.Type != ArrayType {
				return nil
			}
			i := *seg.Index
			if i < 0 || i >= len(res.Values) {
				return nil
			}
			res = res.Values[i]
		default:
			return nil
		}
	}
	return res
}

// GetKPath navigates y using a kinded path such as "a.b[0]".
// It returns nil, nil if the path does not exist.
func (y *Node) GetKPath(kp string) (*Node, error) {
	segs, err := kpath.Parse(kp)
	if err != nil {
		return nil, err
	}
	return y.Lookup(segs...), nil
}
