// Package gomap converts between Go values and content trees.
//
// # Usage
//
//	type Point struct {
//	    X, Y float32
//	    Tag  string `ctree:"field=tag"`
//	}
//	node, err := gomap.ToIR(Point{X: 1.1, Y: 2, Tag: "a"})
//	// {"X":1.1,"Y":2.0,"tag":"a"}
//
//	var p Point
//	err = gomap.FromIR(node, &p)
//
// Struct fields map to mapping entries in declaration order. Only exported
// fields are visited. The ctree struct tag renames a field with field=name
// and skips it with "-". Embedded structs are flattened into their parent.
//
// Go maps must have string keys and map to mappings with sorted keys, since
// a Go map has no order of its own. yaml.MapSlice values keep their order.
//
// Key matching when populating a struct is case-sensitive. Tree entries with
// no matching field are ignored; fields with no matching entry are left as
// they are.
//
// Scalars convert only between matching kinds, plus the exact widenings
// Integer to float (when the integer is representable) and 32-bit Float to
// float64. A Float narrows to float32 through its canonical text, or through
// its source literal when it was parsed.
//
// Types implementing IRMarshaler or IRUnmarshaler produce or consume their
// own nodes. encoding.TextMarshaler and encoding.TextUnmarshaler map to Text.
//
// # Related Packages
//
//   - github.com/signadot/ctree/ir - tree representation
//   - github.com/signadot/ctree/encode - tree to text
//   - github.com/signadot/ctree/parse - text to tree
package gomap
