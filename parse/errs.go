package parse

import (
	"errors"
	"fmt"

	"github.com/symexpr/go-symexpr/token"
)

var (
	ErrUnexpectedEnd   = errors.New("unexpected end of expression")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnclosedParen   = errors.New("unclosed parenthesis")
	ErrTrailing        = errors.New("trailing tokens")
)

type ParseErr struct {
	Err error
	Pos *token.Pos
}

func newParseErr(err error, pos *token.Pos) *ParseErr {
	return &ParseErr{Err: err, Pos: pos}
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	if e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func unexpectedErr(t *token.Token) error {
	return newParseErr(fmt.Errorf("%w: %q", ErrUnexpectedToken, string(t.Bytes)), t.Pos)
}
