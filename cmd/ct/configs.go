package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/ctree/encode"
	"github.com/signadot/ctree/eval"
	"github.com/signadot/ctree/format"
	"github.com/signadot/ctree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indentation step, 0 for compact json'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat(override *format.Format) format.Format {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if override != nil {
		fmat = *override
	}
	return fmat
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseFormat(cfg.ioFormat(cfg.InFormat)),
	}
}

// fileParseOpts is parseOpts, with the format taken from the file
// extension when no format option is given.
func (cfg *MainConfig) fileParseOpts(file string) []parse.ParseOption {
	if cfg.J || cfg.Y || cfg.InFormat != nil || file == "-" {
		return cfg.parseOpts()
	}
	return []parse.ParseOption{parse.ParseFormat(format.FromPath(file))}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.ioFormat(cfg.OutFormat)),
		encode.EncodeIndent(cfg.Indent),
		encode.EncodeNewline(true),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EqConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit status'"`

	Eq *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='apply an rfc 7386 merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env eval.Env

	Eval *cli.Command
}
