package main

import (
	"github.com/signadot/ctree/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(doc *ir.Node) (*ir.Node, error) {
		return doc, nil
	})
}
