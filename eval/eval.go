package eval

import (
	"fmt"

	"github.com/symexpr/go-symexpr/ir"
)

// Eval folds node to a single value, looking up variables in env. An
// unbound variable anywhere in the tree aborts the evaluation; there
// are no partial results. Division by zero and invalid powers follow
// IEEE float semantics rather than failing.
func Eval(node *ir.Node, env map[string]float64) (float64, error) {
	switch node.Type {
	case ir.NumberType:
		return node.Float64, nil
	case ir.VariableType:
		v, ok := env[node.Name]
		if !ok {
			return 0, &UnboundErr{Name: node.Name}
		}
		return v, nil
	case ir.OpType:
		l, err := Eval(node.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := Eval(node.Right, env)
		if err != nil {
			return 0, err
		}
		return node.Op.Apply(l, r), nil
	}
	return 0, fmt.Errorf("%w: node type %s", errInternal, node.Type)
}
