// Package encode renders expression trees as infix text, emitting
// parentheses only where precedence or grouping demands them.
package encode
