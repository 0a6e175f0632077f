package main

import (
	"io"

	"github.com/symexpr/go-symexpr/encode"

	"github.com/scott-cotton/cli"
)

type ViewConfig struct {
	*cli.Command
	*MainConfig
}

func ViewCommand(mCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mCfg}
	return cli.NewCommandAt(&cfg.Command, "view").
		WithSynopsis("view <expr|-> - parse an expression and print its canonical form").
		WithRun(cfg.run)
}

func (cfg *ViewConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	node, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, "\n")
	return err
}
