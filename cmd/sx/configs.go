package main

import (
	"io"
	"os"

	"github.com/symexpr/go-symexpr/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, _ := cli.StructOpts(cfg)
	cfg.Main = cli.NewCommand("sx").
		WithSynopsis("sx - symbolic algebra on expression trees").
		WithOpts(opts...).
		WithSubs(
			ViewCommand(cfg),
			EvalCommand(cfg),
			DerivCommand(cfg),
			SimplifyCommand(cfg),
		)
	return cfg.Main
}

// encOpts enables colors when asked for with -color, or when -color
// is unset and w is a terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
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
