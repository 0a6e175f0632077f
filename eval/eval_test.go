package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/symexpr/go-symexpr/ir"
	"github.com/symexpr/go-symexpr/parse"

	"github.com/expr-lang/expr"
)

func TestEval(t *testing.T) {
	env := map[string]float64{"x": 3, "y": 0.5, "rate": 2, "time": 10}
	ets := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"-3.5", -3.5},
		{"x", 3},
		{"(2 * (3 + 4))", 14},
		{"x + y", 3.5},
		{"rate * time", 20},
		{"x ** 2", 9},
		{"2 ** x", 8},
		{"(2 * (5 + 3) ** 1)", 16},
		{"x - y - y", 2},
		{"x / 2", 1.5},
		{"0 - x", -3},
	}
	for _, et := range ets {
		node, err := parse.Parse([]byte(et.in))
		if err != nil {
			t.Fatalf("%q: %v", et.in, err)
		}
		got, err := Eval(node, env)
		if err != nil {
			t.Errorf("%q: %v", et.in, err)
			continue
		}
		if got != et.want {
			t.Errorf("%q: got %v, want %v", et.in, got, et.want)
		}
	}
}

func TestEvalFloatSemantics(t *testing.T) {
	node, err := parse.Parse([]byte("1 / x"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := Eval(node, map[string]float64{"x": 0})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(v, 1) {
		t.Errorf("1/0 = %v, want +Inf", v)
	}
}

func TestEvalUnbound(t *testing.T) {
	node, err := parse.Parse([]byte("x + y * z"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Eval(node, map[string]float64{"x": 1, "y": 2})
	if !errors.Is(err, ErrUnbound) {
		t.Fatalf("err = %v, want ErrUnbound", err)
	}
	uErr := &UnboundErr{}
	if !errors.As(err, &uErr) {
		t.Fatal("err is not an UnboundErr")
	}
	if uErr.Name != "z" {
		t.Errorf("unbound name %q, want %q", uErr.Name, "z")
	}

	node, err = parse.Parse([]byte("(x / y)"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Eval(node, map[string]float64{"x": 6})
	if !errors.As(err, &uErr) || uErr.Name != "y" {
		t.Errorf("err = %v, want unbound y", err)
	}
}

func TestEvalBadNode(t *testing.T) {
	bad := &ir.Node{Type: ir.Type(99)}
	if _, err := Eval(bad, nil); err == nil {
		t.Error("expected an error for an invalid node type")
	}
}

// Cross-check arithmetic against the expr language, which shares the
// ** operator and the usual precedences for these inputs.
func TestEvalAgainstExpr(t *testing.T) {
	env := map[string]float64{"x": 3, "y": 0.5}
	ins := []string{
		"2 * (3 + 4)",
		"x + y * 2",
		"x ** 2 + 1",
		"(x + y) / 2",
		"2 ** x ** 2",
	}
	for _, in := range ins {
		node, err := parse.Parse([]byte(in))
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		got, err := Eval(node, env)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		exprEnv := map[string]any{}
		for k, v := range env {
			exprEnv[k] = v
		}
		prg, err := expr.Compile(in, expr.Env(exprEnv))
		if err != nil {
			t.Fatalf("%q: compile: %v", in, err)
		}
		out, err := expr.Run(prg, exprEnv)
		if err != nil {
			t.Fatalf("%q: run: %v", in, err)
		}
		var want float64
		switch v := out.(type) {
		case float64:
			want = v
		case int:
			want = float64(v)
		default:
			t.Fatalf("%q: expr returned %T", in, out)
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%q: got %v, expr says %v", in, got, want)
		}
	}
}
