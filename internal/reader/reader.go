// Released under an MIT license. See LICENSE.

// Package reader turns lines of text into commands for the engine.
//
// Each line is one command. Words are split the way a POSIX shell would
// split them. A line whose first non-blank character is # is a comment.
// The block commands (function, tell and with) collect the lines that
// follow them until a matching end.
package reader

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"github.com/michaelmacinnis/avm1scope/internal/common/struct/loc"
)

//nolint:gochecknoglobals
var blocks = map[string]bool{
	"function": true,
	"tell":     true,
	"with":     true,
}

// Command is a single parsed command.
type Command struct {
	Op     string
	Args   []string
	Body   []*Command
	Source loc.T
}

// IsBlock returns true if op opens a block that is closed by end.
func IsBlock(op string) bool {
	return blocks[op]
}

// String returns the command c as it would be written, without its body.
func (c *Command) String() string {
	return shellquote.Join(append([]string{c.Op}, c.Args...)...)
}

// T (reader) accumulates commands from lines of text.
type T struct {
	line  int
	name  string
	stack []*Command
}

type reader = T

// New creates a new reader for name.
func New(name string) *reader {
	return &reader{name: name}
}

// Parse reads every command in text. Blocks must be closed.
func Parse(name, text string) ([]*Command, error) {
	r := New(name)

	cmds, err := r.Scan(text)
	if err != nil {
		return nil, err
	}

	if r.Pending() {
		return nil, errors.Errorf(
			"%s: line %d: unterminated %s block",
			name, r.stack[0].Source.Line, r.stack[0].Op,
		)
	}

	return cmds, nil
}

// Pending returns true if a block is open.
func (r *reader) Pending() bool {
	return len(r.stack) > 0
}

// Reset discards any open blocks.
func (r *reader) Reset() {
	r.stack = nil
}

// Scan reads the lines in text and returns the commands that are complete.
// Commands inside an open block are held until the block is closed.
func (r *reader) Scan(text string) ([]*Command, error) {
	done := []*Command{}

	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		r.line++

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		words, err := shellquote.Split(trimmed)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: line %d", r.name, r.line)
		}

		if len(words) == 0 {
			continue
		}

		c := &Command{
			Op:   words[0],
			Args: words[1:],
			Source: loc.T{
				Char: strings.Index(line, trimmed) + 1,
				Line: r.line,
				Name: r.name,
				Text: trimmed,
			},
		}

		switch {
		case c.Op == "end":
			if len(r.stack) == 0 {
				return nil, errors.Errorf("%s: line %d: end without block", r.name, r.line)
			}

			c = r.stack[len(r.stack)-1]
			r.stack = r.stack[:len(r.stack)-1]

			done = r.add(done, c)

		case IsBlock(c.Op):
			r.stack = append(r.stack, c)

		default:
			done = r.add(done, c)
		}
	}

	return done, nil
}

func (r *reader) add(done []*Command, c *Command) []*Command {
	if len(r.stack) == 0 {
		return append(done, c)
	}

	top := r.stack[len(r.stack)-1]
	top.Body = append(top.Body, c)

	return done
}
