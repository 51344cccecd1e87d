// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/literal"
	"github.com/michaelmacinnis/avm1scope/internal/gc"
	"github.com/michaelmacinnis/avm1scope/internal/reader"
	"github.com/michaelmacinnis/avm1scope/internal/scope"
)

// Function is a user-defined routine and the chain it closed over.
type Function struct {
	Body   []*reader.Command
	Label  string
	Params []string
	Scope  *scope.T
}

// Equal returns true if c is the same function as f.
func (f *Function) Equal(c cell.I) bool {
	return f == c
}

// Literal returns the printed form of a function.
func (f *Function) Literal() string {
	return "[type Function]"
}

// Name returns the type name for the function f.
func (f *Function) Name() string {
	return "function"
}

// String returns the text of the function f.
func (f *Function) String() string {
	return f.Literal()
}

// Trace visits the chain captured by f.
func (f *Function) Trace(cc *gc.Collection) {
	if f.Scope != nil {
		cc.Trace(f.Scope)
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t Function

	// The function type is a cell.
	_ = cell.I(&t)

	// The function type has a literal representation.
	_ = literal.I(&t)

	// The function type is traced.
	_ = gc.Collect(&t)
}
