package main

import (
	"fmt"

	"github.com/signadot/ctree"
	"github.com/signadot/ctree/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, a jsonpath", cli.ErrUsage)
	}
	q := args[0]
	if q == "" {
		return fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if q[0] != '$' {
		q = "$" + q
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc *ir.Node) (*ir.Node, error) {
		return ctree.Query(doc, q)
	})
}
