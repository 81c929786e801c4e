package main

import (
	"fmt"

	"github.com/signadot/ctree/eval"
	"github.com/signadot/ctree/ir"

	"github.com/scott-cotton/cli"
)

func ctEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	prg, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc *ir.Node) (*ir.Node, error) {
		return prg.Run(doc, cfg.Env)
	})
}
