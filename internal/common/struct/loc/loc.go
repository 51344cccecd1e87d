// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where a command came from.
package loc

import (
	"strconv"
)

// T (loc) is a source location.
type T struct {
	Char int    // Column of the command's first word.
	Line int    // Line number.
	Name string // Label for the source of this command.
	Text string // The command as written.
}

type loc = T

func (l *loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
