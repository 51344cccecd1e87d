// Released under an MIT license. See LICENSE.

// Package slot provides the storage for a single object property.
package slot

import (
	"sync"

	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/attr"
)

// T (slot) holds a cell value and the attributes of the property.
// A slot with a setter is virtual: assignments are handed to the setter.
type T struct {
	sync.RWMutex
	c      cell.I
	flags  attr.Set
	setter cell.I
}

type slot = T

// New creates a new slot with the cell c and attributes a.
func New(c cell.I, a attr.Set) *slot {
	return &slot{c: c, flags: a}
}

// Virtual creates a new slot whose assignments are handled by setter.
func Virtual(setter cell.I, a attr.Set) *slot {
	return &slot{flags: a, setter: setter}
}

// Attributes returns the attributes of slot s.
func (s *slot) Attributes() attr.Set {
	s.RLock()
	defer s.RUnlock()

	return s.flags
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	s.RLock()
	defer s.RUnlock()

	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.Lock()
	defer s.Unlock()

	s.c = c
}

// Setter returns the setter for slot s, or nil if s is not virtual.
func (s *slot) Setter() cell.I {
	s.RLock()
	defer s.RUnlock()

	return s.setter
}
