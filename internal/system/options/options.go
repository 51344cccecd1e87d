// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Version is printed by --version.
const Version = "avm1scope 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	config      string
	debug       bool
	interactive bool
	script      string
	usage       = `avm1scope

Usage:
  avm1scope [-d] [-C FILE] SCRIPT
  avm1scope [-d] [-C FILE] -c COMMAND
  avm1scope [-d] [-C FILE] [-i]
  avm1scope -h
  avm1scope -v

Arguments:
  SCRIPT     Path to a file of scope commands.

Options:
  -c, --command=COMMAND  Run the specified commands.
  -C, --config=FILE      Read settings from FILE.
  -d, --debug            Log every command as it runs.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print avm1scope version.

If avm1scope's stdin is a TTY, and no script or command was given,
commands are read interactively. Otherwise, commands are read from stdin.
`
)

func Command() string {
	return command
}

func Config() string {
	return config
}

func Debug() bool {
	return debug
}

func Interactive() bool {
	return interactive
}

// Parse parses os.Args. Help and version requests exit.
func Parse() {
	err := parse(docopt.DefaultParser, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

func Script() string {
	return script
}

func parse(p *docopt.Parser, argv []string, terminal bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return errors.Wrap(err, "options")
	}

	command, _ = opts.String("--command")
	config, _ = opts.String("--config")
	debug, _ = opts.Bool("--debug")
	script, _ = opts.String("SCRIPT")

	interactive = script == "" && command == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}
