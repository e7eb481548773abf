package commands

import (
	"context"
	"fmt"

	"github.com/mansson/poshell/internal/session"
)

func init() {
	Register(&Builtin{
		Name:        "type",
		Description: "Describe how a name would be resolved",
		Usage:       "type <name>\n\nReports whether name is a shell builtin or the PATH executable it would run.",
		Run:         typeCmd,
	})
}

// typeCmd reports builtin status before ever consulting PATH: a name
// that is both a builtin and a PATH executable resolves to the builtin.
func typeCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error {
	args := argv[1:]
	if len(args) == 0 {
		return fmt.Errorf("usage: type <name>")
	}
	name := args[0]

	if _, ok := Lookup(name); ok {
		fmt.Fprintf(env.Stdout, "%s is a shell builtin\n", name)
		return nil
	}

	if path, ok := FindInPath(name); ok {
		fmt.Fprintf(env.Stdout, "%s is %s\n", name, path)
		return nil
	}

	fmt.Fprintf(env.Stdout, "%s: not found\n", name)
	return nil
}
