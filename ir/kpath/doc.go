// Package kpath implements kinded paths: addresses of values inside a content
// tree whose syntax tells the kind of each container.
//
//   - "a.b" addresses key "b" of the mapping under key "a"
//   - "a[0]" addresses the first element of the sequence under "a"
//   - "'a.b'.c" quotes a key holding path syntax
//
// A parsed path is a slice of [Segment]s. The empty string is the root.
package kpath
