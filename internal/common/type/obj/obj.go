// Released under an MIT license. See LICENSE.

// Package obj provides the bare object, the property bag behind every scope.
package obj

import (
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/bag"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/literal"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/attr"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/hash"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/slot"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/undefined"
	"github.com/michaelmacinnis/avm1scope/internal/gc"
)

const name = "object"

// T (obj) is a set of named properties with an optional prototype.
type T struct {
	props *hash.T
	proto bag.I
}

type obj = T

// New creates a new bare object with no properties and no prototype.
func New() *obj {
	return &obj{props: hash.New()}
}

// AddProperty adds a virtual property k whose assignments call setter.
func (o *obj) AddProperty(m *gc.Mutation, k string, setter cell.I, a attr.Set) {
	m.Check()

	o.props.Set(k, slot.Virtual(setter, a))
}

// Attributes returns the attributes of the own property k.
func (o *obj) Attributes(k string) (attr.Set, bool) {
	s := o.props.Get(k)
	if s == nil {
		return 0, false
	}

	return s.Attributes(), true
}

// Delete removes the own property k unless it is marked DontDelete.
func (o *obj) Delete(m *gc.Mutation, k string) bool {
	m.Check()

	s := o.props.Get(k)
	if s == nil || s.Attributes().Has(attr.DontDelete) {
		return false
	}

	return o.props.Del(k)
}

// Equal returns true if c is the same object as o.
func (o *obj) Equal(c cell.I) bool {
	return Is(c) && o == To(c)
}

// ForceGet returns the stored value of k, consulting the prototype chain.
// Virtual properties have no stored value and read as undefined.
func (o *obj) ForceGet(k string) cell.I {
	if s := o.props.Get(k); s != nil {
		if v := s.Get(); v != nil {
			return v
		}

		return undefined.Undefined
	}

	if o.proto != nil {
		return o.proto.ForceGet(k)
	}

	return undefined.Undefined
}

// ForceSet stores v as the own property k with the attributes a.
func (o *obj) ForceSet(m *gc.Mutation, k string, v cell.I, a attr.Set) {
	m.Check()

	o.props.Set(k, slot.New(v, a))
}

// HasProperty returns true if o or its prototype chain has the property k.
func (o *obj) HasProperty(k string) bool {
	if o.props.Get(k) != nil {
		return true
	}

	return o.proto != nil && o.proto.HasProperty(k)
}

// Keys returns the names of the enumerable own properties of o.
func (o *obj) Keys() []string {
	keys := []string{}

	for _, k := range o.props.Keys() {
		if s := o.props.Get(k); s != nil && !s.Attributes().Has(attr.DontEnum) {
			keys = append(keys, k)
		}
	}

	return keys
}

// Literal returns the printed form of an object.
func (o *obj) Literal() string {
	return "[object Object]"
}

// Name returns the type name for the object o.
func (o *obj) Name() string {
	return name
}

// Proto returns the prototype of o, or nil.
func (o *obj) Proto() bag.I {
	return o.proto
}

// Set assigns v to the property k.
//
// A virtual property hands v to its setter, which may run script code and
// re-enter scope resolution. A read-only property ignores the assignment.
// Anything else is stored as an own property.
func (o *obj) Set(m *gc.Mutation, k string, v cell.I, ctx bag.Context, this bag.I) error {
	m.Check()

	s := o.props.Get(k)
	if s == nil {
		o.props.Set(k, slot.New(v, 0))

		return nil
	}

	if setter := s.Setter(); setter != nil {
		_, err := ctx.Call(m, setter, this, v)

		return err
	}

	if !s.Attributes().Has(attr.ReadOnly) {
		s.Set(v)
	}

	return nil
}

// SetProto replaces the prototype of o.
func (o *obj) SetProto(m *gc.Mutation, p bag.I) {
	m.Check()

	o.proto = p
}

// String returns the text of the object o.
func (o *obj) String() string {
	return o.Literal()
}

// Trace visits the prototype and every stored value and setter.
func (o *obj) Trace(cc *gc.Collection) {
	if o.proto != nil {
		cc.Trace(o.proto)
	}

	for _, k := range o.props.Keys() {
		s := o.props.Get(k)
		if s == nil {
			continue
		}

		if c, ok := s.Get().(gc.Collect); ok {
			cc.Trace(c)
		}

		if c, ok := s.Setter().(gc.Collect); ok {
			cc.Trace(c)
		}
	}
}

// Is returns true if c is an obj.
func Is(c cell.I) bool {
	_, ok := c.(*obj)

	return ok
}

// To returns an obj if c is an obj; Otherwise it panics.
func To(c cell.I) *obj {
	if t, ok := c.(*obj); ok {
		return t
	}

	panic(c.Name() + " is not an " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t obj

	// The obj type is a cell.
	_ = cell.I(&t)

	// The obj type is a property bag.
	_ = bag.I(&t)

	// The obj type has a literal representation.
	_ = literal.I(&t)
}
