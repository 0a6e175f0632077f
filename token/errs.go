package token

import "errors"

var (
	ErrNumber = errors.New("malformed number")
)
