package debug

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/ir"
)

type Node struct{ *ir.Node }

func (y Node) String() string {
	x := y.Node
	d, err := encode.EncodeBytes(x)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return string(d)
}

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, jsoniter.Number:
			d, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = Node{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
