package libdiff

import (
	"fmt"

	"github.com/signadot/ctree/gomap"
	"github.com/signadot/ctree/ir"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return fmt.Sprintf("<op %d>", int(op))
}

func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

func (op *Op) UnmarshalText(d []byte) error {
	switch string(d) {
	case "insert":
		*op = Insert
	case "delete":
		*op = Delete
	case "replace":
		*op = Replace
	default:
		return fmt.Errorf("unknown diff op %q", d)
	}
	return nil
}

// Change is one difference between two trees.
type Change struct {
	Path string   `ctree:"field=path"`
	Op   Op       `ctree:"field=op"`
	From *ir.Node `ctree:"field=from"`
	To   *ir.Node `ctree:"field=to"`
	// Delta is set when a Text replaces a Text: a go-diff delta from the
	// old string to the new one.
	Delta string `ctree:"field=delta"`
}

// DiffFunc compares two nodes found at path.
type DiffFunc func(from, to *ir.Node, path string) []Change

// Diff returns the changes turning from into to, or nil when they are
// equal. The inputs are not modified and the changes share no nodes with
// them.
func Diff(from, to *ir.Node) []Change {
	return diff(from, to, "")
}

func diff(from, to *ir.Node, path string) []Change {
	switch {
	case from.Type != to.Type:
		return []Change{replace(from, to, path)}
	case from.Type == ir.ObjectType:
		return DiffObject(from, to, path, diff)
	case from.Type == ir.ArrayType:
		return DiffArray(from, to, path, diff)
	case from.Type == ir.StringType:
		return DiffString(from, to, path)
	case from.Type.IsLeaf() && ir.Compare(from, to) != 0:
		return []Change{replace(from, to, path)}
	}
	return nil
}

func replace(from, to *ir.Node, path string) Change {
	return Change{Path: path, Op: Replace, From: from.Clone(), To: to.Clone()}
}

// ToIR renders changes as a sequence of mappings.
func ToIR(changes []Change) (*ir.Node, error) {
	if changes == nil {
		changes = []Change{}
	}
	return gomap.ToIR(changes)
}
