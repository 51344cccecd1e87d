// Released under an MIT license. See LICENSE.

// Package ui provides the interactive console.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"
	log "github.com/sirupsen/logrus"

	"github.com/michaelmacinnis/avm1scope/internal/reader"
	"github.com/michaelmacinnis/avm1scope/internal/system/config"
	"github.com/michaelmacinnis/avm1scope/internal/system/history"
)

// Evaluator is the interface for things that want to process parsed commands.
type Evaluator interface {
	Evaluate(cmds []*reader.Command) error
}

// Run reads commands from the terminal and sends them to the Evaluator
// until end of input. Errors are reported and reading continues.
func Run(e Evaluator, c *config.T) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	hpath, err := history.Path(c.History)
	if err != nil {
		log.WithError(err).Warn("history disabled")

		hpath = ""
	} else if err = history.Load(hpath, cli.ReadHistory); err != nil {
		log.WithError(err).Warn("cannot load history")
	}

	r := reader.New("console")

	for {
		prompt := c.Prompt
		if r.Pending() {
			prompt = c.Continuation
		}

		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted:
			r.Reset()

			continue
		case io.EOF:
			os.Stdout.Write([]byte("\n"))

			if hpath != "" {
				if err := history.Save(hpath, cli.WriteHistory); err != nil {
					log.WithError(err).Warn("cannot save history")
				}
			}

			return
		default:
			fmt.Fprintln(os.Stderr, err.Error())

			return
		}

		cmds, err := r.Scan(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			r.Reset()

			continue
		}

		if err := e.Evaluate(cmds); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
		}
	}
}
