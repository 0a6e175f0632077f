package token

import (
	"github.com/symexpr/go-symexpr/debug"
)

// Tokenize scans expression text into tokens, appending to dst.
// Whitespace separates tokens and is otherwise insignificant. Numeric
// runs fold digits, '.', and a '-' immediately preceding a digit or
// '.'; letter runs form variable names; parentheses and any other
// character are single tokens.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case numByte(src, i):
			start := i
			i++
			for i < n && numByte(src, i) {
				i++
			}
			run := src[start:i]
			if err := checkNumber(run); err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(start))
			}
			dst = append(dst, Token{Type: TNumber, Pos: posDoc.Pos(start), Bytes: run})
		case asciiLetter(c):
			start := i
			for i < n && asciiLetter(src[i]) {
				i++
			}
			dst = append(dst, Token{Type: TName, Pos: posDoc.Pos(start), Bytes: src[start:i]})
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		default:
			dst = append(dst, Token{Type: TSym, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
		}
	}
	if debug.Tokens() {
		for i := range dst {
			debug.Logf("%s\n", dst[i].Info())
		}
	}
	return dst, nil
}
