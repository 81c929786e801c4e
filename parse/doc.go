// Package parse builds content trees from text.
//
// JSON is read token by token with github.com/goccy/go-json. Numbers with a
// fraction or an exponent become 64-bit floats and keep their literal in
// Node.Number; all other numbers become integers and must fit in an int64.
// The strings "NaN", "Infinity" and "-Infinity" become floats unless
// SpecialFloats(false) is given.
//
// A mapping that repeats a key keeps the key at its first position with the
// last value.
//
// Any failure yields an *Error wrapping ErrParse and no tree.
//
// YAML input is parsed with github.com/goccy/go-yaml, keeping key order.
package parse
