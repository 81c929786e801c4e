package ctree

import (
	"fmt"

	"github.com/theory/jsonpath"

	"github.com/signadot/ctree/eval"
	"github.com/signadot/ctree/gomap"
	"github.com/signadot/ctree/ir"
)

// Query selects the values matching an RFC 9535 JSONPath expression and
// returns them as a new sequence. Values selected by a wildcard over a
// mapping come in no particular order.
func Query(doc *ir.Node, query string) (*ir.Node, error) {
	path, err := jsonpath.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", query, err)
	}
	var data any
	if err := gomap.FromIR(doc, &data); err != nil {
		return nil, err
	}
	results := path.Select(data)
	vals := make([]any, len(results))
	copy(vals, results)
	return gomap.ToIR(vals)
}

// Eval evaluates an expr-lang expression over doc; see package eval.
func Eval(doc *ir.Node, expression string) (*ir.Node, error) {
	return eval.Eval(doc, expression, nil)
}
