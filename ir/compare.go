package ir

import (
	"cmp"
	"strings"

	"github.com/signadot/ctree/token"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Floats compare equal when their canonical text is equal, so a 32-bit and a
// 64-bit float that print the same compare as 0.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := cmp.Compare(rank(a.Type), rank(b.Type)); c != 0 {
		return c
	}

	switch a.Type {
	case IntType:
		return cmp.Compare(a.Int64, b.Int64)
	case FloatType:
		ta, tb := floatText(a), floatText(b)
		if ta == tb {
			return 0
		}
		if c := cmp.Compare(a.Float64, b.Float64); c != 0 {
			return c
		}
		return strings.Compare(ta, tb)
	case StringType:
		return strings.Compare(a.String, b.String)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Integer < Float < Text < Sequence < Mapping
func rank(t Type) int {
	switch t {
	case NullType:
		return 1
	case BoolType:
		return 2
	case IntType:
		return 3
	case FloatType:
		return 4
	case StringType:
		return 5
	case ArrayType:
		return 6
	case ObjectType:
		return 7
	}
	return 100
}

func floatText(n *Node) string {
	return token.FormatFloat(n.Float64, n.Width)
}

func compareArrays(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := range min(lenA, lenB) {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares entries pairwise in stored order: key first, then
// value.
func compareObjects(a, b *Node) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	for i := range min(lenA, lenB) {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
