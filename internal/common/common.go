// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the string value for a cell. Cells without one print by name.
func String(c cell.I) string {
	b, ok := c.(Stringer)
	if !ok {
		return "[" + c.Name() + "]"
	}

	return b.String()
}
