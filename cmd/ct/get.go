package main

import (
	"fmt"

	"github.com/signadot/ctree/ir"
	"github.com/signadot/ctree/ir/kpath"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	segs, err := kpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	missing := 0
	err = eachDoc(cfg.MainConfig, cc, args[1:], func(doc *ir.Node) (*ir.Node, error) {
		res := doc.Lookup(segs...)
		if res == nil {
			missing++
		}
		return res, nil
	})
	if err != nil {
		return err
	}
	if missing != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
