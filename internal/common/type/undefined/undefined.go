// Released under an MIT license. See LICENSE.

// Package undefined provides the undefined and null sentinels.
package undefined

import (
	"github.com/michaelmacinnis/avm1scope/internal/common"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/literal"
)

// T (undefined) is the type of the two sentinel values.
type T struct {
	name string
}

type undefined = T

//nolint:gochecknoglobals
var (
	// Undefined is the value of a name that nothing defines.
	Undefined cell.I = &undefined{"undefined"}

	// Null is the explicit absence of a value.
	Null cell.I = &undefined{"null"}
)

// Equal returns true if c is the same sentinel as u.
func (u *undefined) Equal(c cell.I) bool {
	return u == c
}

// Literal returns the literal representation of the sentinel u.
func (u *undefined) Literal() string {
	return u.name
}

// Name returns the type name for the sentinel u.
func (u *undefined) Name() string {
	return u.name
}

// String returns the text of the sentinel u.
func (u *undefined) String() string {
	return u.name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t undefined

	// The undefined type is a cell.
	_ = cell.I(&t)

	// The undefined type has a literal representation.
	_ = literal.I(&t)

	// The undefined type is a stringer.
	_ = common.Stringer(&t)
}
