// Package libdiff computes structural differences between content trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	for _, c := range changes {
//	    fmt.Println(c.Op, c.Path)
//	}
//
// Mapping keys are aligned with a rune diff of the key sequences, as are
// sequence elements by content hash, so an insertion in the middle of a
// long sequence yields one change. Keys or elements present on both sides
// are compared recursively. Scalars compare by canonical text.
//
// Paths of deleted values index the old tree; all other paths index the
// new one.
//
// # Related Packages
//
//   - github.com/signadot/ctree/ir - tree representation
package libdiff
