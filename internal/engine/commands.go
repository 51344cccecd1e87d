// Released under an MIT license. See LICENSE.

package engine

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/avm1scope/internal/common"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/bag"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/cell"
	"github.com/michaelmacinnis/avm1scope/internal/common/interface/literal"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/attr"
	"github.com/michaelmacinnis/avm1scope/internal/common/struct/frame"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/boolean"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/num"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/obj"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/str"
	"github.com/michaelmacinnis/avm1scope/internal/common/type/undefined"
	"github.com/michaelmacinnis/avm1scope/internal/gc"
	"github.com/michaelmacinnis/avm1scope/internal/reader"
	"github.com/michaelmacinnis/avm1scope/internal/scope"
)

type action struct {
	min   int
	max   int // -1 for no limit.
	usage string
	run   func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error
}

//nolint:funlen
func actions() map[string]action {
	return map[string]action{
		"call": {1, -1, "call NAME [VALUE...]", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			args := make([]cell.I, 0, len(c.Args)-1)
			for _, a := range c.Args[1:] {
				args = append(args, value(f, a))
			}

			_, err := e.call(m, f, f.Scope().Resolve(c.Args[0]), f.This(), args)

			return err
		}},
		"defined": {1, 1, "defined NAME", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			return e.println(f.Scope().IsDefined(c.Args[0]))
		}},
		"delete": {1, 1, "delete NAME", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			return e.println(f.Scope().Delete(m, c.Args[0]))
		}},
		"function": {1, -1, "function NAME [PARAM...] ... end", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			f.Scope().Define(m, c.Args[0], &Function{
				Body:   c.Body,
				Label:  c.Args[0],
				Params: c.Args[1:],
				Scope:  scope.NewClosure(m, f.Scope()),
			})

			return nil
		}},
		"gc": {0, 0, "gc", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			return errors.Errorf("line %d: gc cannot run inside a block", c.Source.Line)
		}},
		"keys": {1, 1, "keys OBJECT", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			o, err := object(f, c, c.Args[0])
			if err != nil {
				return err
			}

			if !obj.Is(o) {
				return e.println("")
			}

			return e.println(strings.Join(obj.To(o).Keys(), " "))
		}},
		"object": {1, 1, "object NAME", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			return assign(e, m, f, c.Args[0], obj.New())
		}},
		"print": {0, -1, "print [VALUE...]", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			return e.println(join(f, c.Args, literal.String))
		}},
		"prop": {3, -1, "prop OBJECT NAME VALUE [FLAG...]", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			o, err := object(f, c, c.Args[0])
			if err != nil {
				return err
			}

			var flags attr.Set

			for _, s := range c.Args[3:] {
				a, ok := attr.Parse(s)
				if !ok {
					return errors.Errorf("line %d: unknown attribute %q", c.Source.Line, s)
				}

				flags = flags.With(a)
			}

			o.ForceSet(m, c.Args[1], value(f, c.Args[2]), flags)

			return nil
		}},
		"proto": {2, 2, "proto OBJECT PARENT", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			o, err := object(f, c, c.Args[0])
			if err != nil {
				return err
			}

			if !obj.Is(o) {
				return errors.Errorf("line %d: %s has no prototype", c.Source.Line, c.Args[0])
			}

			var p bag.I

			if c.Args[1] != "null" {
				p, err = object(f, c, c.Args[1])
				if err != nil {
					return err
				}
			}

			obj.To(o).SetProto(m, p)

			return nil
		}},
		"scope": {0, 0, "scope", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			classes := f.Scope().Classes()

			names := make([]string, len(classes))
			for i, k := range classes {
				names[i] = k.String()
			}

			return e.println(strings.Join(names, " "))
		}},
		"set": {2, 2, "set NAME VALUE", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			return assign(e, m, f, c.Args[0], value(f, c.Args[1]))
		}},
		"setter": {3, 3, "setter OBJECT NAME FUNCTION", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			o, err := object(f, c, c.Args[0])
			if err != nil {
				return err
			}

			if !obj.Is(o) {
				return errors.Errorf("line %d: %s cannot have virtual properties", c.Source.Line, c.Args[0])
			}

			fn := f.Scope().Resolve(c.Args[2])
			if _, ok := fn.(*Function); !ok {
				return errors.Errorf("line %d: %s is not a function", c.Source.Line, c.Args[2])
			}

			obj.To(o).AddProperty(m, c.Args[1], fn, 0)

			return nil
		}},
		"tell": {1, 1, "tell OBJECT ... end", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			o, err := object(f, c, c.Args[0])
			if err != nil {
				return err
			}

			return e.block(m, frame.Dup(scope.NewTarget(m, f.Scope(), o), f), c.Body)
		}},
		"throw": {1, 1, "throw VALUE", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			return &Thrown{Line: c.Source.Line, Value: value(f, c.Args[0])}
		}},
		"trace": {0, -1, "trace [VALUE...]", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			return e.println(join(f, c.Args, text))
		}},
		"var": {1, 2, "var NAME [VALUE]", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			v := undefined.Undefined
			if len(c.Args) > 1 {
				v = value(f, c.Args[1])
			}

			f.Scope().Define(m, c.Args[0], v)

			return nil
		}},
		"with": {1, 1, "with OBJECT ... end", func(e *engine, m *gc.Mutation, f *frame.T, c *reader.Command) error {
			o, err := object(f, c, c.Args[0])
			if err != nil {
				return err
			}

			return e.block(m, frame.Dup(scope.NewWith(m, f.Scope(), o), f), c.Body)
		}},
	}
}

func (e *engine) println(v interface{}) error {
	_, err := fmt.Fprintln(e.out, v)

	return errors.Wrap(err, "output")
}

// assign overwrites k where it is already defined and defines it in the
// innermost scope otherwise.
func assign(e *engine, m *gc.Mutation, f *frame.T, k string, v cell.I) error {
	rest, err := f.Scope().Overwrite(m, k, v, e, f.This())
	if err != nil {
		return err
	}

	if rest != nil {
		f.Scope().Define(m, k, rest)
	}

	return nil
}

func join(f *frame.T, args []string, form func(cell.I) string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = form(value(f, a))
	}

	return strings.Join(parts, " ")
}

func object(f *frame.T, c *reader.Command, k string) (bag.I, error) {
	v := f.Scope().Resolve(k)
	if !bag.Is(v) {
		return nil, errors.Errorf("line %d: %s is not an object", c.Source.Line, k)
	}

	return bag.To(v), nil
}

func text(c cell.I) string {
	return common.String(c)
}

// value converts a word to a value. A word starting with @ names a
// variable.
func value(f *frame.T, s string) cell.I {
	if strings.HasPrefix(s, "@") && len(s) > 1 {
		return f.Scope().Resolve(s[1:])
	}

	switch s {
	case "undefined":
		return undefined.Undefined
	case "null":
		return undefined.Null
	case "true":
		return boolean.True
	case "false":
		return boolean.False
	}

	if n, ok := num.Parse(s); ok {
		return n
	}

	return str.New(s)
}
