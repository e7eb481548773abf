package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mansson/poshell/internal/session"
	"github.com/mansson/poshell/internal/shellerr"
	"github.com/mansson/poshell/internal/ui"
	"golang.org/x/term"
)

// Shell is the REPL driver: read a line, record it in history,
// execute it, repeat until end of input.
type Shell struct {
	Session *session.Session
	Input   LineSource
	colored bool
}

// New builds a Shell reading from input and recording history/errors
// against sess.
func New(sess *session.Session, input LineSource) *Shell {
	return &Shell{
		Session: sess,
		Input:   input,
		colored: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Run executes the REPL loop until end of input, returning the process
// exit status. "exit" terminates the process directly and never
// returns through here.
func (sh *Shell) Run() int {
	defer sh.Input.Close()

	ctx := context.Background()

	for {
		line, err := sh.Input.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0
			}
			if errors.Is(err, shellerr.Interrupted) {
				continue
			}
			return 0
		}

		if line == "" {
			continue
		}

		sh.Session.History.Append(line)

		if err := ExecuteLine(ctx, sh.Session, line); err != nil {
			sh.reportError(err)
		}
	}
}

func (sh *Shell) reportError(err error) {
	msg := err.Error()
	if sh.colored {
		msg = ui.ErrorStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}
