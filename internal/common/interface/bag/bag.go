// Released under an MIT license. See LICENSE.

// Package bag defines the interface for the property bags that hold scope bindings.
package bag

import (
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/attr"
	"github.com/michaelmacinnis/avm1scope/internal/gc"
)

// Context is the interpreter state handed through to virtual property
// setters. Its concrete type belongs to the interpreter.
type Context interface {
	Call(m *gc.Mutation, fn cell.I, this I, args ...cell.I) (cell.I, error)
}

// I (bag) is the object model's value container.
//
// HasProperty and ForceGet read stored values directly. Set performs a full
// assignment and may run script code. ForceSet writes directly with the
// given attributes.
type I interface {
	cell.I
	gc.Collect

	Delete(m *gc.Mutation, k string) bool
	ForceGet(k string) cell.I
	ForceSet(m *gc.Mutation, k string, v cell.I, a attr.Set)
	HasProperty(k string) bool
	Set(m *gc.Mutation, k string, v cell.I, ctx Context, this I) error
}

type bag = I

// Is returns true if c is a bag.
func Is(c cell.I) bool {
	_, ok := c.(bag)

	return ok
}

// To returns a bag if c is a bag; Otherwise it panics.
func To(c cell.I) bag {
	if t, ok := c.(bag); ok {
		return t
	}

	panic(c.Name() + " cannot be used in an object context")
}
