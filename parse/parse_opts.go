package parse

import "github.com/signadot/ctree/format"

type parseOpts struct {
	format        format.Format
	specialFloats bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// SpecialFloats controls whether the strings "NaN", "Infinity" and
// "-Infinity" are read as floats. It is on by default.
func SpecialFloats(v bool) ParseOption {
	return func(o *parseOpts) { o.specialFloats = v }
}
