// Package token turns expression text into a flat token sequence.
package token
