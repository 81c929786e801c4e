// Package ir provides the in-memory representation of content trees.
//
// # Overview
//
// A content tree is a recursive tagged union, the form every document takes
// whether it was parsed from text, marshalled from a Go value or built by
// hand. The representation contains no position information and no
// formatting; it is purely semantic.
//
// # Node Types
//
// The Type field indicates where a node keeps its value:
//
//   - NullType: no value
//   - BoolType: Bool
//   - IntType: Int64
//   - FloatType: Float64, with Width 32 or 64 telling the bit size the value
//     was produced from
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields[i] is the key of Values[i]
//
// Integers and floats are distinct: an integral float stays a float.
//
// # Objects
//
// Keys are unique and their order is significant. Building a mapping with a
// repeated key keeps the first position and the last value:
//
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "a", Val: ir.FromInt(1)},
//	    {Key: "b", Val: ir.FromInt(2)},
//	    {Key: "a", Val: ir.FromInt(3)},
//	}) // {"a":3,"b":2}
//
// FromMap sorts the keys of a Go map, which has no order of its own.
//
// # Ownership
//
// A tree owns its descendants: constructors adopt the nodes they are given,
// and nothing in this module shares a node between two trees or mutates a
// tree after it has been built. Concurrent readers of one tree need no
// synchronisation.
//
// # Paths
//
// Lookup follows a list of kpath segments; GetKPath takes the text form:
//
//	child, err := node.GetKPath("dict2.d.a1")
//
// # Comparison and Hashing
//
// Compare is a total order consistent with canonical text equality, and Hash
// agrees with it.
package ir
