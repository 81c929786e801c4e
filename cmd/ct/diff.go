package main

import (
	"fmt"

	"github.com/signadot/ctree"
	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.fileParseOpts(args[0])...)
	if err != nil {
		return err
	}
	y2, err := getObjFile(cc, args[1], cfg.fileParseOpts(args[1])...)
	if err != nil {
		return err
	}
	changes := ctree.Diff(y1, y2)
	if changes == nil {
		return nil
	}
	node, err := libdiff.ToIR(changes)
	if err != nil {
		return err
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
