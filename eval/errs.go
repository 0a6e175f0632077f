package eval

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal error")

	ErrUnbound = errors.New("unbound variable")
)

// UnboundErr reports evaluation of a variable absent from the
// binding environment.
type UnboundErr struct {
	Name string
}

func (e *UnboundErr) Unwrap() error {
	return ErrUnbound
}

func (e *UnboundErr) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnbound.Error(), e.Name)
}
