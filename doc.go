// Package ctree provides a dynamically shaped document model sitting
// between Go values, JSON or YAML text and path based access.
//
// A document is an *ir.Node tree. It is produced by Parse from text, by
// Marshal from a Go value, or by the constructors in package ir, and it is
// never modified by any function in this module.
//
//	doc, err := ctree.Parse([]byte(`{"array1":[1,2,3]}`))
//	n, err := ctree.GetValue(doc, 0, kpath.Field("array1"), kpath.Index(2))
//	// n == 3
//
// Two documents are equal when their canonical JSON renderings are
// identical; see Equals.
//
// # Related Packages
//
//   - github.com/signadot/ctree/ir - the tree
//   - github.com/signadot/ctree/encode - the writer
//   - github.com/signadot/ctree/parse - the parser
//   - github.com/signadot/ctree/gomap - conversion to and from Go values
//   - github.com/signadot/ctree/libdiff - structural diffs
//   - github.com/signadot/ctree/eval - expressions over documents
package ctree
