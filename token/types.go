package token

import "fmt"

type TokenType int

const (
	TNumber TokenType = iota
	TName
	TLParen
	TRParen
	TSym
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNumber: "TNumber",
		TName:   "TName",
		TLParen: "TLParen",
		TRParen: "TRParen",
		TSym:    "TSym",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Bytes, t.Pos.String())
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
