package eval

import (
	"fmt"
	"maps"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/ctree/debug"
	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/gomap"
	"github.com/signadot/ctree/ir"
)

// DocVar is the variable holding a document that is not a mapping.
const DocVar = "doc"

type Env map[string]any

// EnvOf binds the values of doc as untyped Go values.
func EnvOf(doc *ir.Node) (Env, error) {
	var v any
	if err := gomap.FromIR(doc, &v); err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		return Env(m), nil
	}
	return Env{DocVar: v}, nil
}

// Program is a compiled expression.
type Program struct {
	src string
	prg *vm.Program
}

func (p *Program) String() string {
	return p.src
}

// Compile checks the syntax of expression. Variables and functions are
// resolved at run time against the document passed to Run.
func Compile(expression string) (*Program, error) {
	prg, err := expr.Compile(expression, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return &Program{src: expression, prg: prg}, nil
}

// Run evaluates p with doc bound as described in the package
// documentation. Entries of extra override document variables.
func (p *Program) Run(doc *ir.Node, extra Env) (*ir.Node, error) {
	env, err := EnvOf(doc)
	if err != nil {
		return nil, err
	}
	maps.Copy(env, funcs(doc))
	maps.Copy(env, extra)
	res, err := expr.Run(p.prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", p.src, err)
	}
	node, err := gomap.ToIR(res)
	if err != nil {
		return nil, fmt.Errorf("eval %q: result: %w", p.src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %v\n", p.src, node)
	}
	return node, nil
}

// Eval compiles and runs expression on doc.
func Eval(doc *ir.Node, expression string, extra Env) (*ir.Node, error) {
	p, err := Compile(expression)
	if err != nil {
		return nil, err
	}
	return p.Run(doc, extra)
}

func funcs(doc *ir.Node) map[string]any {
	return map[string]any{
		"getpath": func(kp string) (any, error) {
			node, err := doc.GetKPath(kp)
			if err != nil || node == nil {
				return nil, err
			}
			var v any
			if err := gomap.FromIR(node, &v, gomap.AtPath(kp)); err != nil {
				return nil, err
			}
			return v, nil
		},
		"haspath": func(kp string) bool {
			node, err := doc.GetKPath(kp)
			return err == nil && node != nil
		},
		"textpath": func(kp string) (string, error) {
			node, err := doc.GetKPath(kp)
			if err != nil || node == nil {
				return "", err
			}
			return encode.MustString(node), nil
		},
	}
}
