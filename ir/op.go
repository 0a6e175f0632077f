package ir

import "math"

// Op identifies a binary operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Pow
)

func (o Op) String() string {
	return o.Symbol()
}

func (o Op) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "**"
	}
	return "<unknown op>"
}

// Precedence ranks operators for rendering decisions. Higher binds
// tighter; leaves rank LeafPrecedence.
func (o Op) Precedence() int {
	switch o {
	case Add, Sub:
		return 5
	case Mul, Div, Pow:
		return 10
	}
	return -1
}

// GroupLeft reports whether an equal precedence left child must be
// parenthesized. Only ** sets it: ** is right associative, so
// (x ** y) ** z keeps its parentheses when rendered.
func (o Op) GroupLeft() bool {
	return o == Pow
}

// GroupRight reports whether an equal precedence right child must be
// parenthesized. Set for - and /, which do not associate on the
// right: a - (b - c) is not a - b - c.
func (o Op) GroupRight() bool {
	return o == Sub || o == Div
}

// Apply computes the operator over two values. Division by zero and
// invalid powers follow IEEE float semantics rather than failing.
func (o Op) Apply(l, r float64) float64 {
	switch o {
	case Add:
		return l + r
	case Sub:
		return l - r
	case Mul:
		return l * r
	case Div:
		return l / r
	case Pow:
		return math.Pow(l, r)
	}
	return math.NaN()
}

func Ops() []Op {
	return []Op{Add, Sub, Mul, Div, Pow}
}

func OpFromSymbol(s string) (Op, bool) {
	op, ok := map[string]Op{
		"+":  Add,
		"-":  Sub,
		"*":  Mul,
		"/":  Div,
		"**": Pow,
	}[s]
	return op, ok
}
