package ctree

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/ctree/debug"
	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/parse"
)

// Patch applies an RFC 6902 JSON patch, a sequence of operations, to doc.
// The keys of mappings in the result are sorted.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	if patch.Type != ir.ArrayType {
		return nil, fmt.Errorf("json patch must be a %s, got %s", ir.ArrayType, patch.Type)
	}
	d, err := encode.EncodeBytes(doc)
	if err != nil {
		return nil, err
	}
	p, err := encode.EncodeBytes(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("decode json patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("json patch %v on %v\n", patch, doc)
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply json patch: %w", err)
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc. The keys of mappings
// in the result are sorted.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := encode.EncodeBytes(doc)
	if err != nil {
		return nil, err
	}
	p, err := encode.EncodeBytes(patch)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %v on %v\n", patch, doc)
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("apply merge patch: %w", err)
	}
	return parse.Parse(out)
}
