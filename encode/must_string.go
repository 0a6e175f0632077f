package encode

import (
	"bytes"

	"github.com/symexpr/go-symexpr/ir"
)

// String renders node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString renders node, panicking on malformed trees. Trees built
// by parse, deriv, or simplify always render.
func MustString(node *ir.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return s
}
