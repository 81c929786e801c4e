package encode

import (
	"strings"

	"github.com/signadot/ctree/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	d, err := EncodeBytes(node, opts...)
	if err != nil {
		panic(err)
	}
	return strings.TrimSpace(string(d))
}
