package main

import (
	"io"

	"github.com/symexpr/go-symexpr/deriv"
	"github.com/symexpr/go-symexpr/encode"
	"github.com/symexpr/go-symexpr/simplify"

	"github.com/scott-cotton/cli"
)

type DerivConfig struct {
	*cli.Command
	*MainConfig

	Wrt      string `cli:"name=wrt desc='variable to differentiate with respect to'"`
	Simplify bool   `cli:"name=s desc='simplify the result'"`
}

func DerivCommand(mCfg *MainConfig) *cli.Command {
	cfg := &DerivConfig{MainConfig: mCfg, Wrt: "x"}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "deriv").
		WithSynopsis("deriv [-wrt name] [-s] <expr|-> - differentiate an expression").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *DerivConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	node, err := exprArg(cc, args)
	if err != nil {
		return err
	}
	res := deriv.Derivative(node, cfg.Wrt)
	if cfg.Simplify {
		res = simplify.Simplify(res)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	_, err = io.WriteString(cc.Out, "\n")
	return err
}
