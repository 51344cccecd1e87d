// Released under an MIT license. See LICENSE.

// Package attr provides the attribute flags carried by object properties.
package attr

import (
	"strings"
)

// Set is a set of property attributes. The zero value is the empty set.
type Set uint8

// Attributes.
const (
	DontEnum Set = 1 << iota
	DontDelete
	ReadOnly
)

//nolint:gochecknoglobals
var names = map[string]Set{
	"dontenum":   DontEnum,
	"dontdelete": DontDelete,
	"readonly":   ReadOnly,
}

// Parse returns the attribute named s.
func Parse(s string) (Set, bool) {
	a, ok := names[strings.ToLower(s)]

	return a, ok
}

// Has returns true if every attribute in o is also in a.
func (a Set) Has(o Set) bool {
	return a&o == o
}

// With returns the union of a and o.
func (a Set) With(o Set) Set {
	return a | o
}

// String returns the attribute names in a, separated by spaces.
func (a Set) String() string {
	parts := []string{}

	for _, k := range []string{"dontenum", "dontdelete", "readonly"} {
		if a.Has(names[k]) {
			parts = append(parts, k)
		}
	}

	return strings.Join(parts, " ")
}
