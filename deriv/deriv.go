// Package deriv symbolically differentiates expression trees.
package deriv

import "github.com/symexpr/go-symexpr/ir"

// Derivative returns the derivative of node with respect to wrt as a
// new tree. It is total over well-formed trees and does not simplify
// its result; pass it through simplify.Simplify for a compact form.
//
// Power nodes use the constant-exponent rule
//
//	d(l ** r) = r * l ** (r - 1) * d(l)
//
// even when the exponent mentions wrt; the general case is not
// implemented.
func Derivative(node *ir.Node, wrt string) *ir.Node {
	switch node.Type {
	case ir.NumberType:
		return ir.FromFloat(0)
	case ir.VariableType:
		if node.Name == wrt {
			return ir.FromFloat(1)
		}
		return ir.FromFloat(0)
	}
	l, r := node.Left, node.Right
	switch node.Op {
	case ir.Add:
		return ir.AddOf(Derivative(l, wrt), Derivative(r, wrt))
	case ir.Sub:
		return ir.SubOf(Derivative(l, wrt), Derivative(r, wrt))
	case ir.Mul:
		return ir.AddOf(
			ir.MulOf(l, Derivative(r, wrt)),
			ir.MulOf(r, Derivative(l, wrt)),
		)
	case ir.Div:
		return ir.DivOf(
			ir.SubOf(
				ir.MulOf(r, Derivative(l, wrt)),
				ir.MulOf(l, Derivative(r, wrt)),
			),
			ir.MulOf(r, r),
		)
	case ir.Pow:
		return ir.MulOf(
			ir.MulOf(r, ir.PowOf(l, ir.SubOf(r, ir.FromFloat(1)))),
			Derivative(l, wrt),
		)
	}
	return node
}
