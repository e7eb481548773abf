package commands

import (
	"context"
	"strconv"

	"github.com/mansson/poshell/internal/session"
)

func init() {
	Register(&Builtin{
		Name:        "exit",
		Description: "Exit the shell",
		Usage:       "exit [code]\n\nTerminates the shell with the given status, or 0 if omitted.",
		Run:         exitRun,
		ExitProbe:   exitProbe,
	})
}

// exitRun is never actually reached: ExitProbe always requests
// termination before the executor would call Run.
func exitRun(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error {
	return nil
}

func exitProbe(argv []string) (int, bool) {
	args := argv[1:]
	if len(args) == 0 {
		return 0, true
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, true
	}
	return code, true
}
