package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/symexpr/go-symexpr/ir"
)

var ErrEncoding = errors.New("cannot encode")

type EncState struct {
	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the infix rendering of node to w. A child is
// parenthesized when its precedence is strictly lower than its
// parent's, or equal while the parent groups that side (the left
// operand of **, the right operand of - and /).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NumberType:
		return writeString(w, es.color(ir.NumberType, ValueColor, FormatNumber(node.Float64)))
	case ir.VariableType:
		return writeString(w, es.color(ir.VariableType, NameColor, node.Name))
	case ir.OpType:
		if err := encodeChild(node.Left, node, w, es, node.Op.GroupLeft()); err != nil {
			return err
		}
		sym := " " + es.color(ir.OpType, OpColor, node.Op.Symbol()) + " "
		if err := writeString(w, sym); err != nil {
			return err
		}
		return encodeChild(node.Right, node, w, es, node.Op.GroupRight())
	}
	return fmt.Errorf("%w: node type %s", ErrEncoding, node.Type)
}

func encodeChild(child, parent *ir.Node, w io.Writer, es *EncState, group bool) error {
	need := child.Precedence() < parent.Op.Precedence() ||
		(group && child.Precedence() == parent.Op.Precedence())
	if !need {
		return encode(child, w, es)
	}
	if err := writeString(w, es.color(ir.OpType, ParenColor, "(")); err != nil {
		return err
	}
	if err := encode(child, w, es); err != nil {
		return err
	}
	return writeString(w, es.color(ir.OpType, ParenColor, ")"))
}

// FormatNumber renders a float the way the input grammar reads them:
// plain decimal digits, no exponent notation.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
