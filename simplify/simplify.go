// Package simplify rewrites expression trees into smaller equivalent
// forms by constant folding and identity elimination.
package simplify

import (
	"github.com/symexpr/go-symexpr/debug"
	"github.com/symexpr/go-symexpr/ir"
)

// Simplify returns a simplified copy of node. Children are
// simplified first, then the first matching rule applies at the node;
// the result never has more nodes than the input and evaluates to the
// same value under any environment binding all its variables. One
// pass does not reach a normal form for every mixed constant and
// variable tree; callers wanting a fixed point re-invoke.
func Simplify(node *ir.Node) *ir.Node {
	res := simplify(node)
	if debug.Rewrite() {
		debug.Logf("simplify: %d -> %d nodes\n", ir.Size(node), ir.Size(res))
	}
	return res
}

func simplify(node *ir.Node) *ir.Node {
	if node.Type != ir.OpType {
		return node
	}
	l := simplify(node.Left)
	r := simplify(node.Right)
	switch node.Op {
	case ir.Add:
		switch {
		case isZero(l) && isZero(r):
			return ir.FromFloat(0)
		case isZero(l):
			return r
		case isZero(r):
			return l
		}
	case ir.Sub:
		switch {
		case isZero(l) && isZero(r):
			return ir.FromFloat(0)
		case isZero(r):
			return l
		}
	case ir.Mul:
		switch {
		case isZero(l) || isZero(r):
			return ir.FromFloat(0)
		case isOne(l):
			return r
		case isOne(r):
			return l
		}
	case ir.Div:
		switch {
		// a zero numerator wins, even over a zero denominator
		case isZero(l):
			return ir.FromFloat(0)
		case isOne(r):
			return l
		}
	case ir.Pow:
		switch {
		case isZero(r):
			return ir.FromFloat(1)
		case isOne(r):
			return l
		case isZero(l) && (r.Type == ir.VariableType ||
			(r.Type == ir.NumberType && r.Float64 > 0)):
			return ir.FromFloat(0)
		}
	}
	if l.Type == ir.NumberType && r.Type == ir.NumberType {
		return ir.FromFloat(node.Op.Apply(l.Float64, r.Float64))
	}
	return ir.BinOp(node.Op, l, r)
}

func isZero(n *ir.Node) bool {
	return n.Type == ir.NumberType && n.Float64 == 0
}

func isOne(n *ir.Node) bool {
	return n.Type == ir.NumberType && n.Float64 == 1
}
