// Released under an MIT license. See LICENSE.

package scope

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/avm1scope/internal/common/interface/bag"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/attr"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/num"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/obj"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/str"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/undefined"
	"github.com/michaelmacinnis/avm1scope/internal/gc"
)

func mutate(t *testing.T, fn func(m *gc.Mutation)) {
	t.Helper()

	err := gc.New().Mutate(func(m *gc.Mutation) error {
		fn(m)

		return nil
	})
	require.NoError(t, err)
}

// caller runs setters as plain Go functions.
type caller func(m *gc.Mutation, fn cell.I, this bag.I, args ...cell.I) (cell.I, error)

func (c caller) Call(m *gc.Mutation, fn cell.I, this bag.I, args ...cell.I) (cell.I, error) {
	return c(m, fn, this, args...)
}

// holder is a value that keeps a chain alive, like a captured function.
type holder struct {
	s *T
}

func (h *holder) Equal(c cell.I) bool { return h == c }
func (h *holder) Name() string        { return "holder" }

func (h *holder) Trace(cc *gc.Collection) {
	cc.Trace(h.s)
}

func TestInnermostShadows(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		b := FromGlobal(m, obj.New())
		b.Define(m, "x", num.New(1))

		a := NewLocal(m, b)
		a.Define(m, "x", num.New(2))

		assert.True(t, num.New(2).Equal(a.Resolve("x")))
		assert.True(t, num.New(1).Equal(b.Resolve("x")))
	})
}

func TestFallthrough(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		b := FromGlobal(m, obj.New())
		b.Define(m, "x", str.New("outer"))

		a := NewLocal(m, b)

		assert.True(t, str.New("outer").Equal(a.Resolve("x")))
		assert.True(t, a.IsDefined("x"))

		assert.Same(t, undefined.Undefined, a.Resolve("y"))
		assert.False(t, a.IsDefined("y"))
	})
}

func TestClosureDropsWith(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		g := FromGlobal(m, obj.New())
		l := NewLocal(m, g)
		l.Define(m, "a", num.New(1))

		w := obj.New()
		w.ForceSet(m, "only", num.New(2), 0)

		c := NewClosure(m, New(m, l, With, w))

		assert.Equal(t, []Class{Local, Global}, c.Classes())
		assert.Same(t, l.Locals(), c.Locals())
		assert.Same(t, g.Locals(), c.Parent().Locals())
		assert.NotSame(t, l, c)
		assert.NotSame(t, g, c.Parent())

		assert.False(t, c.IsDefined("only"))
		assert.True(t, c.IsDefined("a"))
	})
}

func TestClosureKeepsOrder(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		g := FromGlobal(m, obj.New())
		tg := New(m, g, Target, obj.New())
		w1 := New(m, tg, With, obj.New())
		l := NewLocal(m, w1)
		w2 := New(m, l, With, obj.New())

		c := NewClosure(m, w2)

		assert.Equal(t, []Class{Local, Target, Global}, c.Classes())
		assert.Same(t, l.Locals(), c.Locals())
		assert.Same(t, tg.Locals(), c.Parent().Locals())
	})
}

func TestClosureSeesLaterWrites(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		g := FromGlobal(m, obj.New())
		l := NewLocal(m, g)

		c := NewClosure(m, l)
		assert.False(t, c.IsDefined("late"))

		l.Define(m, "late", num.New(3))
		assert.True(t, num.New(3).Equal(c.Resolve("late")))
	})
}

func TestClosureOfOnlyWith(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		w := obj.New()
		w.ForceSet(m, "x", num.New(1), 0)

		c := NewClosure(m, New(m, nil, With, w))

		assert.Equal(t, []Class{Global}, c.Classes())
		assert.NotSame(t, w, c.Locals())
		assert.False(t, c.IsDefined("x"))
	})
}

func TestTargetSplice(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		t1 := obj.New()
		t1.ForceSet(m, "clip", str.New("one"), 0)

		t2 := obj.New()

		g := FromGlobal(m, obj.New())
		l := NewLocal(m, New(m, g, Target, t1))

		n := NewTarget(m, l, t2)

		assert.Equal(t, []Class{Local, Target, Global}, n.Classes())
		assert.Same(t, l.Locals(), n.Locals())
		assert.Same(t, t2, n.Parent().Locals())
		assert.Same(t, g.Locals(), n.Parent().Parent().Locals())

		assert.False(t, n.IsDefined("clip"))
		assert.True(t, l.IsDefined("clip"))
		assert.Same(t, t1, l.Parent().Locals())
	})
}

func TestTargetSpliceReplacesEveryTarget(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		clip := obj.New()

		g := FromGlobal(m, obj.New())
		s := New(m, NewLocal(m, New(m, g, Target, obj.New())), Target, obj.New())

		n := NewTarget(m, s, clip)

		assert.Equal(t, []Class{Target, Local, Target, Global}, n.Classes())
		assert.Same(t, clip, n.Locals())
		assert.Same(t, clip, n.Parent().Parent().Locals())
	})
}

func TestTargetSpliceOfNothing(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		n := NewTarget(m, nil, obj.New())

		assert.Equal(t, []Class{Global}, n.Classes())
		assert.Nil(t, n.Parent())
	})
}

func TestWithReusesLocals(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		g := FromGlobal(m, obj.New())
		outer := NewLocal(m, g)
		locals := NewLocal(m, outer)

		w := obj.New()
		head := NewWith(m, locals, w)

		assert.Equal(t, []Class{Local, With, Local, Global}, head.Classes())
		assert.Same(t, locals.Locals(), head.Locals())
		assert.Same(t, w, head.Parent().Locals())
		assert.Same(t, outer, head.Parent().Parent())

		head.Define(m, "y", num.New(5))
		assert.True(t, num.New(5).Equal(locals.Resolve("y")))
	})
}

func TestWithLookupOrder(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		g := FromGlobal(m, obj.New())
		g.Define(m, "k", str.New("global"))

		locals := NewLocal(m, g)

		w := obj.New()
		w.ForceSet(m, "k", str.New("with"), 0)

		head := NewWith(m, locals, w)
		assert.True(t, str.New("with").Equal(head.Resolve("k")))

		locals.Define(m, "k", str.New("local"))
		assert.True(t, str.New("local").Equal(head.Resolve("k")))
	})
}

func TestOverwriteThenDefine(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		l := NewLocal(m, FromGlobal(m, obj.New()))
		v := num.New(9)

		rest, err := l.Overwrite(m, "z", v, nil, nil)
		require.NoError(t, err)
		assert.Same(t, v, rest)
		assert.False(t, l.IsDefined("z"))

		l.Define(m, "z", rest)
		assert.Same(t, v, l.Resolve("z"))
	})
}

func TestOverwriteFindsOwner(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		g := FromGlobal(m, obj.New())
		g.Define(m, "x", num.New(1))

		l := NewLocal(m, g)

		rest, err := l.Overwrite(m, "x", num.New(2), nil, nil)
		require.NoError(t, err)
		assert.Nil(t, rest)

		assert.False(t, l.Locals().HasProperty("x"))
		assert.True(t, num.New(2).Equal(g.Resolve("x")))
	})
}

func TestOverwritePassesSetterErrors(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		boom := errors.New("boom")

		o := obj.New()
		o.AddProperty(m, "v", str.New("setter"), 0)

		l := NewLocal(m, FromGlobal(m, o))

		ctx := caller(func(*gc.Mutation, cell.I, bag.I, ...cell.I) (cell.I, error) {
			return nil, boom
		})

		rest, err := l.Overwrite(m, "v", num.New(1), ctx, nil)
		assert.Same(t, boom, err)
		assert.Nil(t, rest)
	})
}

func TestOverwriteReentersFromSetter(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		o := obj.New()
		o.AddProperty(m, "v", str.New("setter"), 0)
		o.ForceSet(m, "seen", undefined.Undefined, 0)

		l := NewLocal(m, FromGlobal(m, o))

		ctx := caller(func(m *gc.Mutation, _ cell.I, _ bag.I, args ...cell.I) (cell.I, error) {
			if !l.IsDefined("seen") {
				return nil, errors.New("lost seen")
			}

			_, err := l.Overwrite(m, "seen", args[0], nil, nil)
			l.Define(m, "inner", args[0])

			return undefined.Undefined, err
		})

		_, err := l.Overwrite(m, "v", num.New(7), ctx, nil)
		require.NoError(t, err)

		assert.True(t, num.New(7).Equal(l.Resolve("seen")))
		assert.True(t, num.New(7).Equal(l.Resolve("inner")))
		assert.Same(t, undefined.Undefined, l.Resolve("v"))
	})
}

func TestDeleteStopsAtFirstOwner(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		b := FromGlobal(m, obj.New())
		b.Define(m, "x", num.New(1))

		a := NewLocal(m, b)
		a.Locals().ForceSet(m, "x", num.New(2), attr.DontDelete)

		assert.False(t, a.Delete(m, "x"))
		assert.True(t, b.Locals().HasProperty("x"))
		assert.True(t, num.New(2).Equal(a.Resolve("x")))
	})
}

func TestDelete(t *testing.T) {
	mutate(t, func(m *gc.Mutation) {
		b := FromGlobal(m, obj.New())
		b.Define(m, "x", num.New(1))

		a := NewLocal(m, b)
		a.Define(m, "x", num.New(2))

		assert.True(t, a.Delete(m, "x"))
		assert.True(t, num.New(1).Equal(a.Resolve("x")))

		assert.True(t, a.Delete(m, "x"))
		assert.False(t, a.IsDefined("x"))

		assert.False(t, a.Delete(m, "x"))
	})
}

func TestTraceFollowsCycles(t *testing.T) {
	a := gc.New()

	var l *T

	err := a.Mutate(func(m *gc.Mutation) error {
		globals := obj.New()
		l = NewLocal(m, FromGlobal(m, globals))

		// globals -> holder -> l -> globals
		globals.ForceSet(m, "f", &holder{NewClosure(m, l)}, 0)

		return nil
	})
	require.NoError(t, err)

	// Two nodes in l, two in the closure chain, two bags and the holder.
	s := a.Collect(l)
	assert.Equal(t, 7, s.Reachable)
	assert.Equal(t, 4, s.Allocated)
}

func TestWritePermitExpires(t *testing.T) {
	var (
		kept *gc.Mutation
		g    *T
	)

	mutate(t, func(m *gc.Mutation) {
		kept = m
		g = FromGlobal(m, obj.New())
	})

	assert.Panics(t, func() { NewLocal(kept, g) })
	assert.Panics(t, func() { g.Define(kept, "x", num.New(1)) })
	assert.Panics(t, func() { NewLocal(nil, g) })
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "global", Global.String())
	assert.Equal(t, "target", Target.String())
	assert.Equal(t, "local", Local.String())
	assert.Equal(t, "with", With.String())
	assert.Equal(t, "unknown", Class(42).String())
}
