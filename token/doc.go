// Package token holds the lexical rules shared by the reader and writer:
// number grammar, canonical number text and quoting of path fields.
//
// [FormatFloat] renders a float with the fewest digits that read back to the
// same value at the float's bit size, so text produced by the encoder and
// read by the parser reproduces every number exactly.
package token
