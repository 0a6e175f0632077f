package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"

	"github.com/scott-cotton/cli"
)

// bindArgs parses name=program arguments into env. The right hand
// side is an expr program, so bindings like x=2*3 or y=2**0.5 work.
func bindArgs(env map[string]float64, args []string) error {
	for _, arg := range args {
		name, prog, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: binding %q is not name=expr", cli.ErrUsage, arg)
		}
		v, err := bindValue(prog)
		if err != nil {
			return fmt.Errorf("binding %q: %w", name, err)
		}
		env[name] = v
	}
	return nil
}

func bindValue(prog string) (float64, error) {
	prg, err := expr.Compile(prog)
	if err != nil {
		return 0, err
	}
	res, err := expr.Run(prg, map[string]any{})
	if err != nil {
		return 0, err
	}
	switch v := res.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("binding evaluates to %T, not a number", res)
	}
}

// loadEnvFile reads a YAML mapping of variable names to numbers.
func loadEnvFile(path string, env map[string]float64) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	m := map[string]float64{}
	if err := yaml.Unmarshal(d, &m); err != nil {
		return fmt.Errorf("error reading bindings %q: %w", path, err)
	}
	for k, v := range m {
		env[k] = v
	}
	return nil
}
