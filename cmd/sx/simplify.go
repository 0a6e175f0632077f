package main

import (
	"fmt"
	"io"

	"github.com/symexpr/go-symexpr/encode"
	"github.com/symexpr/go-symexpr/simplify"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type SimplifyConfig struct {
	*cli.Command
	*MainConfig

	Diff bool `cli:"name=d desc='diff the result against the input rendering'"`
}

func SimplifyCommand(mCfg *MainConfig) *cli.Command {
	cfg := &SimplifyConfig{MainConfig: mCfg}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "simplify").
		WithSynopsis("simplify [-d] <expr|-> - simplify an expression").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *SimplifyConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	node, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	res := simplify.Simplify(node)
	if !cfg.Diff {
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		_, err = io.WriteString(cc.Out, "\n")
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(encode.MustString(node), encode.MustString(res), false)
	fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
	return nil
}
