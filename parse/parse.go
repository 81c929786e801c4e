package parse

import (
	"fmt"
	"io"

	"github.com/signadot/ctree/debug"
	"github.com/signadot/ctree/format"
	"github.com/signadot/ctree/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{
		format:        format.JSONFormat,
		specialFloats: true,
	}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSON(d, pOpts)
	case format.YAMLFormat:
		res, err = parseYAML(d, pOpts)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse %s: %v\n", pOpts.format, err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse %s: %d bytes -> %v\n", pOpts.format, len(d), res)
	}
	return res, nil
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}
