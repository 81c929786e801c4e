// Package eval evaluates expr-lang expressions against a content tree.
//
// The top-level keys of a mapping document are bound as variables; any
// other document is bound to the variable doc. Expressions may also call
//
//	getpath("a.b[2]")   the value at a kinded path, or nil
//	haspath("a.b[2]")   whether the path resolves
//	textpath("a.b")     the canonical JSON text of the value at a path
//
// Results are converted back into a new tree.
package eval
