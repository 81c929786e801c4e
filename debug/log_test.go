package debug

import (
	"bytes"
	"testing"

	"github.com/signadot/ctree/ir"
)

func TestLogfRendersNodes(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromFloat32(1.1)}})
	Logf("node %v count %d\n", node, 3)
	if got, want := buf.String(), "node {\"a\":1.1} count 3\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNodeStringNil(t *testing.T) {
	if s := (Node{}).String(); s == "" {
		t.Error("expected fallback text for nil node")
	}
}
