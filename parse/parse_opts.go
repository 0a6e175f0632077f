package parse

type parseOpts struct {
	allowTrailing bool
}

type ParseOption func(*parseOpts)

// AllowTrailing accepts input with tokens remaining after a complete
// top level expression; the leading expression is returned and the
// rest ignored. The default is to reject such input.
func AllowTrailing() ParseOption {
	return func(o *parseOpts) { o.allowTrailing = true }
}
