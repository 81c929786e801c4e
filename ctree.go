package ctree

import (
	"bytes"

	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/gomap"
	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/libdiff"
	"github.com/signadot/ctree/parse"
)

// Parse parses JSON text, or YAML with parse.ParseYAML.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// Write renders doc. Without options the result is the canonical text.
func Write(doc *ir.Node, opts ...encode.EncodeOption) ([]byte, error) {
	return encode.EncodeBytes(doc, opts...)
}

// Marshal converts a Go value to a new document.
func Marshal(v any, opts ...gomap.MapOption) (*ir.Node, error) {
	return gomap.ToIR(v, opts...)
}

// Unmarshal stores doc in the value pointed to by v.
func Unmarshal(doc *ir.Node, v any, opts ...gomap.UnmapOption) error {
	return gomap.FromIR(doc, v, opts...)
}

// UnmarshalAs is Unmarshal into a new T.
func UnmarshalAs[T any](doc *ir.Node, opts ...gomap.UnmapOption) (T, error) {
	var res T
	err := gomap.FromIR(doc, &res, opts...)
	return res, err
}

// Canonical returns the canonical text of doc.
func Canonical(doc *ir.Node) ([]byte, error) {
	return encode.EncodeBytes(doc)
}

// Equals reports whether a and b have identical canonical text. Documents
// that cannot be written are equal to nothing.
func Equals(a, b *ir.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	ca, err := Canonical(a)
	if err != nil {
		return false
	}
	cb, err := Canonical(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ca, cb)
}

// Diff returns the changes turning from into to.
func Diff(from, to *ir.Node) []libdiff.Change {
	return libdiff.Diff(from, to)
}
