package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens  bool
	Parse   bool
	Rewrite bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("SYMEXPR_DEBUG_TOKENS")
	d.Parse = boolEnv("SYMEXPR_DEBUG_PARSE")
	d.Rewrite = boolEnv("SYMEXPR_DEBUG_REWRITE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Rewrite() bool {
	return d.Rewrite
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
