// Released under an MIT license. See LICENSE.

// Package frame provides the activation record type.
package frame

import (
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/bag"
	"github.com/michaelmacinnis/avm1scope/internal/scope"
)

// T (frame) is a stack frame or activation record.
type T struct {
	previous *frame
	scope    *scope.T
	this     bag.I
	depth    int
}

type frame = T

// Dup creates a duplicate of the frame f with a new scope s.
// Blocks like with and tellTarget run in a duplicate, not a new frame.
func Dup(s *scope.T, f *frame) *frame {
	dup := *f
	dup.scope = s

	return &dup
}

// New creates a new frame with the scope s, this binding t and previous frame p.
func New(s *scope.T, t bag.I, p *frame) *frame {
	f := &frame{scope: s, this: t, depth: 1}

	if p != nil {
		f.previous = p
		f.depth = p.depth + 1
	}

	return f
}

// Depth returns the number of frames on the stack, including f.
func (f *frame) Depth() int {
	return f.depth
}

// Previous returns the previous frame.
func (f *frame) Previous() *frame {
	return f.previous
}

// Scope returns the current frame's scope chain.
func (f *frame) Scope() *scope.T {
	return f.scope
}

// This returns the current frame's this binding.
func (f *frame) This() bag.I {
	return f.this
}
