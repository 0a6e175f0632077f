// Package ir defines the expression tree: numeric and variable leaves
// and binary operator nodes. Trees are immutable; every transformation
// over them builds new nodes.
package ir
