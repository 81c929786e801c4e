package main

import (
	"fmt"

	"github.com/signadot/ctree"
	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	apply := ctree.Patch
	if cfg.Merge {
		apply = ctree.MergePatch
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(doc *ir.Node) (*ir.Node, error) {
		return apply(doc, p)
	})
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	if cfg.String {
		res, err := parse.Parse([]byte(arg), cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return res, nil
	}
	return getObjFile(cc, arg, cfg.fileParseOpts(arg)...)
}
