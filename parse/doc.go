// Package parse builds expression trees from text.
package parse
