package main

import (
	"fmt"

	"github.com/signadot/ctree"

	"github.com/scott-cotton/cli"
)

func eq(cfg *EqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eq.Parse(cc, args)
	if err != nil {
		cfg.Eq.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: eq requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.fileParseOpts(args[0])...)
	if err != nil {
		return err
	}
	b, err := getObjFile(cc, args[1], cfg.fileParseOpts(args[1])...)
	if err != nil {
		return err
	}
	if ctree.Equals(a, b) {
		if !cfg.Quiet {
			fmt.Fprintln(cc.Out, "equal")
		}
		return nil
	}
	if !cfg.Quiet {
		fmt.Fprintln(cc.Out, "not equal")
	}
	return cli.ExitCodeErr(1)
}
