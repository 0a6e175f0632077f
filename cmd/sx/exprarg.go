package main

import (
	"fmt"
	"io"

	"github.com/symexpr/go-symexpr/ir"
	"github.com/symexpr/go-symexpr/parse"

	"github.com/scott-cotton/cli"
)

// exprArg reads the expression operand: the given argument, or
// standard input when it is "-" or absent.
func exprArg(cc *cli.Context, args []string) (*ir.Node, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: expected one expression argument, got %v", cli.ErrUsage, args)
	}
	if len(args) == 1 && args[0] != "-" {
		return parse.Parse([]byte(args[0]))
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading expression: %w", err)
	}
	return parse.Parse(d)
}
