package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/ctree/ir"
)

// DiffString reports a replacement of two different Text nodes, carrying a
// character delta.
func DiffString(from, to *ir.Node, path string) []Change {
	if from.String == to.String {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from.String, to.String, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	c := replace(from, to, path)
	c.Delta = dmp.DiffToDelta(diffs)
	return []Change{c}
}

// ApplyDelta rebuilds the new string of a Text replacement from the old one.
func ApplyDelta(from string, delta string) (string, error) {
	dmp := diffpatch.New()
	diffs, err := dmp.DiffFromDelta(from, delta)
	if err != nil {
		return "", err
	}
	return dmp.DiffText2(diffs), nil
}
