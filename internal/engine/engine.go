// Released under an MIT license. See LICENSE.

// Package engine evaluates commands against a scope chain.
//
// The engine boots the chain a timeline sees, Global then Target, and runs
// each top-level command as one write step. Functions close over their
// defining chain, with and tell blocks run on derived chains, and
// assignments go through the same overwrite-then-define path an
// interpreter's SetVariable takes.
package engine

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/avm1scope/internal/common/interface/bag"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/attr"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/frame"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/obj"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/undefined"
	"github.com/michaelmacinnis/avm1scope/internal/common/validate"
	"github.com/michaelmacinnis/avm1scope/internal/gc"
	"github.com/michaelmacinnis/avm1scope/internal/reader"
	"github.com/michaelmacinnis/avm1scope/internal/scope"
)

// DefaultMaxCallDepth is the call depth used when none is configured.
const DefaultMaxCallDepth = 256

// Thrown is a value raised by the throw command.
type Thrown struct {
	Line  int
	Value cell.I
}

// Error returns the message for the thrown value t.
func (t *Thrown) Error() string {
	return fmt.Sprintf("line %d: uncaught exception: %s", t.Line, text(t.Value))
}

// T (engine) holds the arena, the top-level frame and the output stream.
type T struct {
	active  *frame.T
	arena   *gc.Arena
	frame   *frame.T
	globals *obj.T
	limit   int
	out     io.Writer
	root    *obj.T
}

type engine = T

// New creates a new engine that writes output to out. A limit of zero or
// less means DefaultMaxCallDepth.
func New(out io.Writer, limit int) *engine {
	if limit <= 0 {
		limit = DefaultMaxCallDepth
	}

	e := &engine{
		arena:   gc.New(),
		globals: obj.New(),
		limit:   limit,
		out:     out,
		root:    obj.New(),
	}

	//nolint:errcheck
	e.arena.Mutate(func(m *gc.Mutation) error {
		hidden := attr.DontEnum.With(attr.DontDelete)

		e.globals.ForceSet(m, "_global", e.globals, hidden)
		e.globals.ForceSet(m, "_root", e.root, hidden)

		g := scope.FromGlobal(m, e.globals)
		e.frame = frame.New(scope.New(m, g, scope.Target, e.root), e.root, nil)

		return nil
	})

	return e
}

// Call runs the function fn in a new local scope on the chain fn closed
// over. The first parameters are bound, in order, to args.
//
// Call is also how virtual property setters are run, so it may be entered
// while another command is still being evaluated.
func (e *engine) Call(m *gc.Mutation, fn cell.I, this bag.I, args ...cell.I) (cell.I, error) {
	f := e.active
	if f == nil {
		f = e.frame
	}

	return e.call(m, f, fn, this, args)
}

// Collect runs the trace pass from the top-level chain.
func (e *engine) Collect() gc.Stats {
	return e.arena.Collect(e.frame.Scope())
}

// Evaluate runs each command in cmds. Evaluation stops at the first error.
func (e *engine) Evaluate(cmds []*reader.Command) error {
	for _, c := range cmds {
		if err := e.step(c); err != nil {
			return err
		}
	}

	return nil
}

// Globals returns the bag behind the outermost scope.
func (e *engine) Globals() *obj.T {
	return e.globals
}

// Root returns the root clip, the initial Target scope.
func (e *engine) Root() *obj.T {
	return e.root
}

// Scope returns the top-level chain.
func (e *engine) Scope() *scope.T {
	return e.frame.Scope()
}

func (e *engine) block(m *gc.Mutation, f *frame.T, body []*reader.Command) error {
	for _, c := range body {
		if err := e.exec(m, f, c); err != nil {
			return err
		}
	}

	return nil
}

func (e *engine) call(
	m *gc.Mutation, f *frame.T, fn cell.I, this bag.I, args []cell.I,
) (cell.I, error) {
	r, ok := fn.(*Function)
	if !ok {
		return nil, errors.Errorf("%s is not a function", text(fn))
	}

	if f.Depth() >= e.limit {
		return nil, errors.Errorf("%s: call depth exceeds %d", r.Label, e.limit)
	}

	local := scope.NewLocal(m, r.Scope)

	for i, p := range r.Params {
		v := undefined.Undefined
		if i < len(args) {
			v = args[i]
		}

		local.Define(m, p, v)
	}

	err := e.block(m, frame.New(local, this, f), r.Body)
	if err != nil {
		return nil, err
	}

	return undefined.Undefined, nil
}

func (e *engine) exec(m *gc.Mutation, f *frame.T, c *reader.Command) error {
	log.WithFields(log.Fields{
		"op":    c.Op,
		"line":  c.Source.Line,
		"depth": f.Depth(),
	}).Debug(c.String())

	a, ok := actions()[c.Op]
	if !ok {
		return errors.Errorf("line %d: unknown command %q", c.Source.Line, c.Op)
	}

	if err := validate.Args(len(c.Args), a.min, a.max); err != nil {
		return errors.Wrapf(err, "line %d: usage: %s", c.Source.Line, a.usage)
	}

	prev := e.active
	e.active = f

	defer func() {
		e.active = prev
	}()

	return a.run(e, m, f, c)
}

func (e *engine) step(c *reader.Command) error {
	if c.Op == "gc" {
		// The trace pass runs between steps, never during one.
		s := e.Collect()
		_, err := fmt.Fprintf(e.out, "%d reachable\n", s.Reachable)

		return errors.Wrap(err, "gc")
	}

	return e.arena.Mutate(func(m *gc.Mutation) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("line %d: %v", c.Source.Line, r)
			}
		}()

		return e.exec(m, e.frame, c)
	})
}
