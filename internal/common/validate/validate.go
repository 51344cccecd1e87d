// Released under an MIT license. See LICENSE.

// Package validate checks the number of arguments passed to a command.
package validate

import (
	"fmt"

	"github.com/pkg/errors"
)

// Args returns an error unless n is at least min and, when max is not
// negative, at most max.
func Args(n, min, max int) error {
	switch {
	case n < min && min == max:
		return errors.Errorf("expected %s, passed %d", Count(min, "argument", "s"), n)
	case n < min:
		return errors.Errorf("expected at least %s, passed %d", Count(min, "argument", "s"), n)
	case max >= 0 && n > max && min == max:
		return errors.Errorf("expected %s, passed %d", Count(max, "argument", "s"), n)
	case max >= 0 && n > max:
		return errors.Errorf("expected at most %s, passed %d", Count(max, "argument", "s"), n)
	}

	return nil
}

func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
