package main

import (
	"fmt"

	"github.com/symexpr/go-symexpr/encode"
	"github.com/symexpr/go-symexpr/eval"

	"github.com/scott-cotton/cli"
)

type EvalConfig struct {
	*cli.Command
	*MainConfig

	Env string `cli:"name=env desc='yaml file mapping variable names to values'"`
}

func EvalCommand(mCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mCfg}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "eval").
		WithSynopsis("eval [-env file] <expr|-> [name=expr ...] - evaluate an expression").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *EvalConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression argument", cli.ErrUsage)
	}
	node, err := exprArg(cc, args[:1])
	if err != nil {
		return err
	}
	env := map[string]float64{}
	if cfg.Env != "" {
		if err := loadEnvFile(cfg.Env, env); err != nil {
			return err
		}
	}
	if err := bindArgs(env, args[1:]); err != nil {
		return err
	}
	v, err := eval.Eval(node, env)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, encode.FormatNumber(v))
	return nil
}
