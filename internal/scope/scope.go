// Released under an MIT license. See LICENSE.

// Package scope provides scope chain construction and resolution.
//
// A chain is a singly linked list of nodes searched innermost first. Each
// node is classed Global, Target, Local or With and refers to a property
// bag. Bags are shared: several nodes, in several chains, may refer to the
// same bag, and a write through any of them is seen through all of them.
// The structure of a node never changes after it is built.
package scope

import (
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/bag"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/obj"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/undefined"
	"github.com/michaelmacinnis/avm1scope/internal/gc"
)

// Class indicates what kind of scope a node is.
type Class int

// Classes.
const (
	// Global is the outermost scope.
	Global Class = iota

	// Target is the timeline scope. Timeline code runs with the current
	// clip in lieu of a local scope and tellTarget can replace it.
	Target

	// Local is a function activation. It is inherited by closures.
	Local

	// With is an object added with a with block. It is not inherited by
	// closures.
	With
)

// String returns the lower case name of the class c.
func (c Class) String() string {
	switch c {
	case Global:
		return "global"
	case Target:
		return "target"
	case Local:
		return "local"
	case With:
		return "with"
	}

	return "unknown"
}

// T (scope) is one node of a scope chain.
type T struct {
	parent *T
	class  Class
	values bag.I
}

type scope = T

// FromGlobal creates a global scope (one without a parent).
func FromGlobal(m *gc.Mutation, globals bag.I) *scope {
	return New(m, nil, Global, globals)
}

// New creates a node of class c with parent p and values v.
func New(m *gc.Mutation, p *scope, c Class, v bag.I) *scope {
	m.Allocate()

	return &scope{parent: p, class: c, values: v}
}

// NewLocal creates a local scope with a fresh, empty bag.
func NewLocal(m *gc.Mutation, p *scope) *scope {
	return New(m, p, Local, obj.New())
}

// NewClosure creates the chain stored by a function defined in p.
//
// The result is a copy of p without its With nodes. The copy reuses each
// node's class and bag so later writes to the enclosing scopes stay visible.
func NewClosure(m *gc.Mutation, p *scope) *scope {
	kept := []*scope{}

	for s := p; s != nil; s = s.parent {
		if s.class != With {
			kept = append(kept, s)
		}
	}

	return rebuild(m, kept, nil)
}

// NewTarget creates a copy of p for tellTarget code where every Target
// node refers to clip instead. Holders of p are unaffected.
func NewTarget(m *gc.Mutation, p *scope, clip bag.I) *scope {
	if p == nil {
		return rebuild(m, nil, nil)
	}

	return rebuild(m, p.list(), func(s *scope) bag.I {
		if s.class == Target {
			return clip
		}

		return s.values
	})
}

// NewWith creates the scope used during a with block.
//
// The with object is inserted between locals and its parent. The new head
// is a Local node that shares the bag of locals, so definitions made in
// the block land where they would have without it.
func NewWith(m *gc.Mutation, locals *scope, with bag.I) *scope {
	w := New(m, locals.parent, With, with)

	return New(m, w, Local, locals.values)
}

// Class returns the class of the node s.
func (s *scope) Class() Class {
	return s.class
}

// Classes returns the class of every node in s, innermost first.
func (s *scope) Classes() []Class {
	l := s.list()

	cs := make([]Class, len(l))
	for i, n := range l {
		cs[i] = n.class
	}

	return cs
}

// Define force sets k to v in the innermost bag, without walking the chain.
//
// By convention, locals are stored (not virtual) properties on the lowest
// object in the chain.
func (s *scope) Define(m *gc.Mutation, k string, v cell.I) {
	s.values.ForceSet(m, k, v, 0)
}

// Delete removes k from the first bag in the chain that has it.
// The walk stops there even if that bag refuses.
func (s *scope) Delete(m *gc.Mutation, k string) bool {
	for ; s != nil; s = s.parent {
		if s.values.HasProperty(k) {
			return s.values.Delete(m, k)
		}
	}

	return false
}

// Depth returns the number of nodes in the chain s.
func (s *scope) Depth() int {
	n := 0
	for ; s != nil; s = s.parent {
		n++
	}

	return n
}

// IsDefined returns true if any bag in the chain has k.
func (s *scope) IsDefined(k string) bool {
	for ; s != nil; s = s.parent {
		if s.values.HasProperty(k) {
			return true
		}
	}

	return false
}

// Locals returns the bag of the node s.
func (s *scope) Locals() bag.I {
	return s.values
}

// Overwrite sets k to v in the first bag in the chain that has it.
//
// If no bag has k nothing is written and v is returned so the caller can
// define it. Otherwise the result is nil. Errors raised by a setter are
// returned as is.
func (s *scope) Overwrite(
	m *gc.Mutation, k string, v cell.I, ctx bag.Context, this bag.I,
) (cell.I, error) {
	for ; s != nil; s = s.parent {
		if s.values.HasProperty(k) {
			return nil, s.values.Set(m, k, v, ctx, this)
		}
	}

	return v, nil
}

// Parent returns the enclosing node, or nil for the outermost node.
func (s *scope) Parent() *scope {
	return s.parent
}

// Resolve returns the value of k in the first bag in the chain that has it.
func (s *scope) Resolve(k string) cell.I {
	for ; s != nil; s = s.parent {
		if s.values.HasProperty(k) {
			return s.values.ForceGet(k)
		}
	}

	return undefined.Undefined
}

// Trace visits the parent and the bag of the node s.
func (s *scope) Trace(cc *gc.Collection) {
	if s == nil {
		return
	}

	if s.parent != nil {
		cc.Trace(s.parent)
	}

	cc.Trace(s.values)
}

func (s *scope) list() []*scope {
	l := []*scope{}
	for ; s != nil; s = s.parent {
		l = append(l, s)
	}

	return l
}

// rebuild allocates a fresh chain from l (innermost first), outermost
// node first. If values is nil each node keeps its own bag. An empty l
// yields a fresh global scope with an empty bag.
func rebuild(m *gc.Mutation, l []*scope, values func(*scope) bag.I) *scope {
	var p *scope

	for i := len(l) - 1; i >= 0; i-- {
		v := l[i].values
		if values != nil {
			v = values(l[i])
		}

		p = New(m, p, l[i].class, v)
	}

	if p == nil {
		p = New(m, nil, Global, obj.New())
	}

	return p
}
