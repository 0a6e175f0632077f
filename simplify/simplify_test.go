package simplify

import (
	"math"
	"testing"

	"github.com/symexpr/go-symexpr/eval"
	"github.com/symexpr/go-symexpr/ir"
	"github.com/symexpr/go-symexpr/parse"

	"github.com/google/go-cmp/cmp"
)

func TestSimplify(t *testing.T) {
	var (
		num = ir.FromFloat
		x   = ir.FromName("x")
		y   = ir.FromName("y")
	)
	sts := []struct {
		in   *ir.Node
		want *ir.Node
	}{
		// additive and multiplicative identities
		{ir.AddOf(num(0), x), x},
		{ir.AddOf(x, num(0)), x},
		{ir.AddOf(num(0), num(0)), num(0)},
		{ir.SubOf(x, num(0)), x},
		{ir.MulOf(num(1), x), x},
		{ir.MulOf(x, num(1)), x},
		{ir.MulOf(num(0), x), num(0)},
		{ir.MulOf(x, num(0)), num(0)},
		{ir.DivOf(x, num(1)), x},

		// a zero numerator dominates, even over a zero denominator
		{ir.DivOf(num(0), x), num(0)},
		{ir.DivOf(num(0), num(0)), num(0)},

		// zero on the left of - is kept, not folded to a negation
		{ir.SubOf(num(0), x), ir.SubOf(num(0), x)},

		// powers
		{ir.PowOf(x, num(0)), num(1)},
		{ir.PowOf(num(0), num(0)), num(1)},
		{ir.PowOf(x, num(1)), x},
		{ir.PowOf(num(0), x), num(0)},
		{ir.PowOf(num(0), num(3)), num(0)},

		// constant folding
		{ir.AddOf(num(3), num(4)), num(7)},
		{ir.MulOf(num(2), ir.AddOf(num(3), num(4))), num(14)},
		{ir.PowOf(num(2), num(10)), num(1024)},

		// rules apply after children are rewritten
		{ir.MulOf(ir.AddOf(x, ir.SubOf(num(1), num(1))), num(2)), ir.MulOf(x, num(2))},
		{ir.AddOf(ir.MulOf(x, num(0)), ir.MulOf(num(0), y)), num(0)},
		{ir.PowOf(x, ir.SubOf(num(1), num(0))), x},

		// nothing to do
		{ir.AddOf(x, y), ir.AddOf(x, y)},
		{ir.DivOf(x, num(0)), ir.DivOf(x, num(0))},
		{x, x},
		{num(7), num(7)},
	}
	for _, st := range sts {
		got := Simplify(st.in)
		if d := cmp.Diff(st.want, got); d != "" {
			t.Errorf("mismatch (-want +got):\n%s", d)
		}
		if ir.Size(got) > ir.Size(st.in) {
			t.Errorf("simplify grew %d to %d nodes", ir.Size(st.in), ir.Size(got))
		}
		// outputs above are already in simplified form
		if again := Simplify(got); !ir.Equal(again, got) {
			t.Errorf("not a fixed point: %v then %v", got, again)
		}
	}
}

func TestSimplifyFoldsThroughIdentities(t *testing.T) {
	fts := []struct {
		in   string
		want *ir.Node
	}{
		{"(0 * (x + 1))", ir.FromFloat(0)},
		{"(2 * (5 + 3) ** 1)", ir.FromFloat(16)},
	}
	for _, ft := range fts {
		node, err := parse.Parse([]byte(ft.in))
		if err != nil {
			t.Fatalf("%q: %v", ft.in, err)
		}
		got := Simplify(node)
		if d := cmp.Diff(ft.want, got); d != "" {
			t.Errorf("%q: mismatch (-want +got):\n%s", ft.in, d)
		}
	}
}

func TestSimplifyNegativePowerOfZero(t *testing.T) {
	// 0 ** -2 has no rewrite rule; constant folding yields +Inf
	got := Simplify(ir.PowOf(ir.FromFloat(0), ir.FromFloat(-2)))
	if got.Type != ir.NumberType || !math.IsInf(got.Float64, 1) {
		t.Errorf("got %+v, want +Inf", got)
	}
}

func TestSimplifyPreservesValues(t *testing.T) {
	env := map[string]float64{"x": 3, "y": 0.5}
	ins := []string{
		"x * 1 + 0",
		"(x + y) * (2 - 1)",
		"x ** 1 * y ** 0",
		"0 - x",
		"x / 1 / 1",
		"2 * (5 + 3) ** 1",
	}
	for _, in := range ins {
		node, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		before, err := eval.Eval(node, env)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		after, err := eval.Eval(Simplify(node), env)
		if err != nil {
			t.Fatalf("%q: simplified: %v", in, err)
		}
		if before != after {
			t.Errorf("%q: value changed from %v to %v", in, before, after)
		}
	}
}
