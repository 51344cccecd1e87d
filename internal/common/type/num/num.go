// Released under an MIT license. See LICENSE.

// Package num provides the number type.
package num

import (
	"math"
	"strconv"

	"github.com/michaelmacinnis/avm1scope/internal/common"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/literal"
)

const name = "number"

// T (num) wraps Go's float64 type. Script numbers are IEEE doubles.
type T float64

type num = T

// New creates a new num cell from the float64 f.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Parse creates a new num cell from a string.
func Parse(s string) (cell.I, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}

	return New(f), true
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the text of the num n.
func (n *num) String() string {
	f := n.Float()

	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
