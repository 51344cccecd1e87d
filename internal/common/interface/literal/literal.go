// Released under an MIT license. See LICENSE.

// Package literal defines the interface for values that can be printed as literals.
package literal

import (
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		// Objects and functions print by type name.
		return "[" + c.Name() + "]"
	}

	return l.Literal()
}
