package parse

import (
	"fmt"
	"strconv"

	"github.com/symexpr/go-symexpr/debug"
	"github.com/symexpr/go-symexpr/ir"
	"github.com/symexpr/go-symexpr/token"
)

// Parse tokenizes d and parses it into an expression tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	toks = token.FusePower(toks)
	return parseTokens(toks, pOpts)
}

// ParseTokens parses an already tokenized expression. The caller is
// expected to have fused ** tokens, as token.FusePower does.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return parseTokens(toks, pOpts)
}

func parseTokens(toks []token.Token, opts *parseOpts) (*ir.Node, error) {
	off := 0
	res, err := parseExpr(toks, &off, 0)
	if err != nil {
		return nil, err
	}
	if off < len(toks) && !opts.allowTrailing {
		t := &toks[off]
		return nil, newParseErr(fmt.Errorf("%w: %q", ErrTrailing, t.String()), t.Pos)
	}
	if debug.Parse() {
		debug.Logf("parse: %d tokens, %d nodes\n", off, ir.Size(res))
	}
	return res, nil
}

// bindPower gives the parser's binding power of an operator and
// whether it is right associative. These are parsing powers, not the
// display precedences on ir.Op: when reading input, ** binds tighter
// than * and /, so (5 + 3) ** 1 attaches the power to the group.
func bindPower(op ir.Op) (int, bool) {
	switch op {
	case ir.Add, ir.Sub:
		return 5, false
	case ir.Mul, ir.Div:
		return 10, false
	case ir.Pow:
		return 20, true
	}
	return -1, false
}

func parseExpr(toks []token.Token, pi *int, minPower int) (*ir.Node, error) {
	left, err := parsePrimary(toks, pi)
	if err != nil {
		return nil, err
	}
	for {
		if *pi >= len(toks) {
			return left, nil
		}
		t := &toks[*pi]
		if t.Type != token.TSym {
			return left, nil
		}
		op, ok := ir.OpFromSymbol(t.String())
		if !ok {
			return nil, unexpectedErr(t)
		}
		power, rightAssoc := bindPower(op)
		if power < minPower {
			return left, nil
		}
		*pi++
		next := power + 1
		if rightAssoc {
			next = power
		}
		right, err := parseExpr(toks, pi, next)
		if err != nil {
			return nil, err
		}
		left = ir.BinOp(op, left, right)
	}
}

func parsePrimary(toks []token.Token, pi *int) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, newParseErr(ErrUnexpectedEnd, nil)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TNumber:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			// the tokenizer validates numeric runs; this guards
			// hand-built token slices
			return nil, unexpectedErr(t)
		}
		*pi++
		return ir.FromFloat(f), nil
	case token.TName:
		*pi++
		return ir.FromName(t.String()), nil
	case token.TLParen:
		*pi++
		e, err := parseExpr(toks, pi, 0)
		if err != nil {
			return nil, err
		}
		if *pi >= len(toks) || toks[*pi].Type != token.TRParen {
			return nil, newParseErr(ErrUnclosedParen, t.Pos)
		}
		*pi++
		return e, nil
	default:
		return nil, unexpectedErr(t)
	}
}
