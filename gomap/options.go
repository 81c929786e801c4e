package gomap

import (
	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/parse"
)

// MapOption is an option for controlling the mapping process from Go to a tree.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption is an option for controlling the unmapping process from a tree to Go.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

// mapConfig holds configuration for the mapping process.
type mapConfig struct {
	// EncodeOptions to pass through to encode.Encode
	EncodeOptions []encode.EncodeOption
}

// unmapConfig holds configuration for the unmapping process.
type unmapConfig struct {
	// ParseOptions to pass through to parse.Parse
	ParseOptions []parse.ParseOption

	// Path prefixes every path reported in errors.
	Path string

	// DisallowUnknown rejects mapping entries with no struct field.
	DisallowUnknown bool

	// OrderedMaps fills untyped targets with yaml.MapSlice instead of
	// map[string]any.
	OrderedMaps bool
}

func newMapConfig(opts ...MapOption) *mapConfig {
	cfg := &mapConfig{}
	for _, opt := range opts {
		opt.applyMap(cfg)
	}
	return cfg
}

func newUnmapConfig(opts ...UnmapOption) *unmapConfig {
	cfg := &unmapConfig{}
	for _, opt := range opts {
		opt.applyUnmap(cfg)
	}
	return cfg
}

type mapFunc func(*mapConfig)

func (f mapFunc) applyMap(c *mapConfig) { f(c) }

type unmapFunc func(*unmapConfig)

func (f unmapFunc) applyUnmap(c *unmapConfig) { f(c) }

// WithEncodeOptions sets the options ToText passes to encode.Encode.
func WithEncodeOptions(opts ...encode.EncodeOption) MapOption {
	return mapFunc(func(c *mapConfig) {
		c.EncodeOptions = append(c.EncodeOptions, opts...)
	})
}

// WithParseOptions sets the options FromText passes to parse.Parse.
func WithParseOptions(opts ...parse.ParseOption) UnmapOption {
	return unmapFunc(func(c *unmapConfig) {
		c.ParseOptions = append(c.ParseOptions, opts...)
	})
}

// AtPath reports error paths relative to the kinded path p, for a node
// that was looked up inside a larger document.
func AtPath(p string) UnmapOption {
	return unmapFunc(func(c *unmapConfig) { c.Path = p })
}

// DisallowUnknownFields makes FromIR fail on mapping entries that match no
// struct field.
func DisallowUnknownFields() UnmapOption {
	return unmapFunc(func(c *unmapConfig) { c.DisallowUnknown = true })
}

// OrderedMaps makes FromIR store mappings found under untyped (any) targets
// as yaml.MapSlice, keeping their order.
func OrderedMaps() UnmapOption {
	return unmapFunc(func(c *unmapConfig) { c.OrderedMaps = true })
}

// ToEncodeOptions extracts EncodeOptions from a slice of MapOptions.
func ToEncodeOptions(opts ...MapOption) []encode.EncodeOption {
	return newMapConfig(opts...).EncodeOptions
}

// ToParseOptions extracts ParseOptions from a slice of UnmapOptions.
func ToParseOptions(opts ...UnmapOption) []parse.ParseOption {
	return newUnmapConfig(opts...).ParseOptions
}
