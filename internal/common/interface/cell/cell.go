// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all script values.
package cell

// I (cell) is any value a script variable can hold.
type I interface {
	Equal(c I) bool
	Name() string
}
