package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/mansson/poshell/internal/session"
)

func init() {
	Register(&Builtin{
		Name:        "echo",
		Description: "Write arguments to standard output",
		Usage:       "echo [string]...\n\nWrites its arguments joined by a single space, followed by a newline.",
		Run:         echo,
	})
	Register(&Builtin{
		Name:        "printf",
		Description: "Format and print arguments",
		Usage:       "printf <format> [arguments]...\n\nSupports \\n, \\t, \\r and \\\\ escapes in the format string.",
		Run:         printfCmd,
	})
}

func echo(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error {
	fmt.Fprintln(env.Stdout, strings.Join(argv[1:], " "))
	return nil
}

func printfCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error {
	args := argv[1:]
	if len(args) < 1 {
		return fmt.Errorf("usage: printf <format> [arguments...]")
	}

	format := unescape(args[0])
	params := make([]interface{}, len(args)-1)
	for i, v := range args[1:] {
		params[i] = v
	}

	_, err := fmt.Fprintf(env.Stdout, format, params...)
	return err
}

func unescape(s string) string {
	return strings.NewReplacer("\\\\", "\\", "\\n", "\n", "\\t", "\t", "\\r", "\r").Replace(s)
}
