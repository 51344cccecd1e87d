/*
Avm1scope is a console for the scope chain of an ActionScript 1 style
virtual machine. Each line is a command that reads, writes or reshapes the
chain the way running bytecode would:

    var x 1
    object clip
    prop clip x 2
    tell clip
        trace @x
    end
    with clip
        set x 3
    end
    function f a
        trace @a @x
    end
    call f 4
    scope

Avm1scope is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/avm1scope/internal/engine"
	"github.com/michaelmacinnis/avm1scope/internal/reader"
	"github.com/michaelmacinnis/avm1scope/internal/system/config"
	"github.com/michaelmacinnis/avm1scope/internal/system/options"
	"github.com/michaelmacinnis/avm1scope/internal/ui"
)

func main() {
	options.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	c, err := config.Load(options.Config())
	if err != nil {
		return err
	}

	log.SetLevel(c.Level())

	if options.Debug() {
		log.SetLevel(log.DebugLevel)
	}

	e := engine.New(os.Stdout, c.MaxCallDepth)

	if options.Interactive() {
		ui.Run(e, c)

		return nil
	}

	name, text, err := source()
	if err != nil {
		return err
	}

	cmds, err := reader.Parse(name, text)
	if err != nil {
		return err
	}

	return e.Evaluate(cmds)
}

func source() (name, text string, err error) {
	if cmd := options.Command(); cmd != "" {
		return "command", cmd, nil
	}

	if path := options.Script(); path != "" {
		b, err := os.ReadFile(path)

		return path, string(b), errors.Wrap(err, "script")
	}

	b, err := io.ReadAll(os.Stdin)

	return "stdin", string(b), errors.Wrap(err, "stdin")
}
