// Released under an MIT license. See LICENSE.

// Package history stores the console's line history.
package history

import (
	"io"
	"os"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
)

// Location of the history file relative to the XDG data directory.
const Location = "avm1scope/history"

// Path returns configured if it is set and the XDG location otherwise.
func Path(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}

	p, err := xdg.DataFile(Location)

	return p, errors.Wrap(err, "history")
}

// Load passes the history file at path to read. A missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrap(err, "history")
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return errors.Wrap(err, "history")
	}

	return errors.Wrap(f.Close(), "history")
}

// Save replaces the history file at path with what write produces.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "history")
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return errors.Wrap(err, "history")
	}

	return errors.Wrap(f.Close(), "history")
}
