package commands

import (
	"context"
	"fmt"

	"github.com/mansson/poshell/internal/session"
	"github.com/mansson/poshell/internal/ui"
	"github.com/spf13/pflag"
)

func init() {
	Register(&Builtin{
		Name:        "history",
		Description: "Show or load command history",
		Usage:       "history [-r file]\n\nWith no argument, lists every line in the history, including lines loaded at startup.\n-r file replaces the history with the non-empty lines of file.",
		Run:         historyCmd,
	})
}

func historyCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	readFile := fs.StringP("read", "r", "", "load history from file")
	fs.SetOutput(env.Stderr)

	if err := fs.Parse(ReorderArgsForFlags(fs, argv[1:])); err != nil {
		return err
	}

	if *readFile != "" {
		return s.History.LoadFromFile(*readFile)
	}

	entries := s.History.All()
	if len(entries) == 0 {
		fmt.Fprintln(env.Stdout, "No history.")
		return nil
	}

	for i, line := range entries {
		idx := ui.MutedStyle.Render(fmt.Sprintf("%5d", i+1))
		fmt.Fprintf(env.Stdout, "%s  %s\n", idx, line)
	}
	return nil
}
