package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mansson/poshell/internal/session"
	"github.com/mansson/poshell/internal/shellerr"
)

func init() {
	Register(&Builtin{
		Name:        "cd",
		Description: "Change the working directory",
		Usage:       "cd [path]\n\nWith no argument, changes to $HOME. A leading ~ expands to $HOME.",
		Run:         cd,
	})
	Register(&Builtin{
		Name:        "pwd",
		Description: "Print the working directory",
		Usage:       "pwd",
		Run:         pwd,
	})
}

func cd(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error {
	args := argv[1:]

	var target string
	if len(args) == 0 {
		home := os.Getenv("HOME")
		if home == "" {
			return shellerr.InvalidDirectory("HOME environment variable not set")
		}
		target = home
	} else {
		target = args[0]
		if strings.HasPrefix(target, "~") {
			home := os.Getenv("HOME")
			if home == "" {
				return shellerr.InvalidDirectory("HOME environment variable not set")
			}
			target = strings.Replace(target, "~", home, 1)
		}
	}

	if err := os.Chdir(target); err != nil {
		return shellerr.InvalidDirectory(fmt.Sprintf("cd: %s: No such file or directory", target))
	}
	return nil
}

func pwd(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return shellerr.IO(err)
	}
	fmt.Fprintln(env.Stdout, dir)
	return nil
}
