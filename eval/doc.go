// Package eval folds expression trees to numeric values under a
// variable binding environment.
package eval
