package ir

import (
	"maps"
	"slices"
)

// Node is a single value in a content tree. Values are placed in fields
// depending on Type; see the package documentation.
//
// Nodes are treated as read-only once built. Every operation in this module
// that produces a tree allocates a new one.
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Float64 float64
	// Width is 32 or 64 for FloatType nodes: the bit size the value was
	// produced from.
	Width int
	// Number holds the source literal of a parsed number, when there was one.
	Number string
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
		Width:   64,
	}
}

func FromFloat32(f float32) *Node {
	return &Node{
		Type:    FloatType,
		Float64: float64(f),
		Width:   32,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

// FromSlice makes a sequence node owning ySlice's nodes.
func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals makes a mapping node from kvs in order. A key occurring more
// than once keeps its first position and takes its last value.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]string, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	var pos map[string]int
	for i := range kvs {
		kv := &kvs[i]
		val := kv.Val
		if val == nil {
			val = Null()
		}
		if pos == nil {
			pos = make(map[string]int, len(kvs))
		}
		if j, ok := pos[kv.Key]; ok {
			res.Values[j] = val
			continue
		}
		pos[kv.Key] = len(res.Fields)
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, val)
	}
	return res
}

// FromMap makes a mapping node with the keys of yMap in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

// KeyVals returns the entries of a mapping node in order.
func (y *Node) KeyVals() []KeyVal {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]KeyVal, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyVal{Key: f, Val: y.Values[i]}
	}
	return res
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{}
	*res = *y
	if y.Fields != nil {
		res.Fields = slices.Clone(y.Fields)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// With returns a copy of the mapping y where key is set to v. An existing key
// keeps its position.
func (y *Node) With(key string, v *Node) *Node {
	kvs := y.KeyVals()
	for i := range kvs {
		kvs[i].Val = kvs[i].Val.Clone()
	}
	kvs = append(kvs, KeyVal{Key: key, Val: v})
	return FromKeyVals(kvs)
}

// Pick returns a mapping holding clones of the entries of y whose keys are
// in keys, in the order of y.
func (y *Node) Pick(keys ...string) *Node {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	var kvs []KeyVal
	for i, f := range y.Fields {
		if want[f] {
			kvs = append(kvs, KeyVal{Key: f, Val: y.Values[i].Clone()})
		}
	}
	return FromKeyVals(kvs)
}

func Get(y *Node, field string) *Node {
	for i, f := range y.Fields {
		if f == field {
			return y.Values[i]
		}
	}
	return nil
}

// Index returns element i of a sequence, or nil when i is out of range.
func (y *Node) Index(i int) *Node {
	if y.Type != ArrayType || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Keys returns a copy of the keys of a mapping in order.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	return slices.Clone(y.Fields)
}

// Len is the number of entries of a mapping or elements of a sequence.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType, ArrayType:
		return len(node.Values) != 0
	case StringType:
		return node.String != ""
	case IntType:
		return node.Int64 != 0
	case FloatType:
		return node.Float64 != 0
	case BoolType:
		return node.Bool
	default:
		return false
	}
}
