// Package commands holds the builtin registry, the builtins
// themselves, and the command resolver that decides whether a word
// names a builtin, a PATH executable, or nothing at all.
package commands

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mansson/poshell/internal/session"
	"github.com/mansson/poshell/internal/ui"
	"github.com/spf13/pflag"
)

// ExecutionEnv is the capability surface handed to a builtin for the
// duration of one call. A builtin never touches os.Stdout/os.Stderr
// directly, so swapping this struct's fields for redirection *is* the
// save/install/restore cycle, scoped by Go variable lifetime.
type ExecutionEnv struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// RunFunc is a builtin's body.
type RunFunc func(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error

// ExitProbeFunc inspects argv before Run is called and reports whether
// this invocation should terminate the shell process, and with what
// code. Only "exit" sets a non-trivial probe.
type ExitProbeFunc func(argv []string) (code int, requested bool)

// Builtin is one entry in the registry.
type Builtin struct {
	Name        string
	Description string
	Usage       string
	Run         RunFunc
	ExitProbe   ExitProbeFunc
}

func noExit(argv []string) (int, bool) { return 0, false }

var registry = make(map[string]*Builtin)

func Register(b *Builtin) {
	if b.ExitProbe == nil {
		b.ExitProbe = noExit
	}
	registry[b.Name] = b
}

func Lookup(name string) (*Builtin, bool) {
	b, ok := registry[name]
	return b, ok
}

// Names returns every registered builtin name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReorderArgsForFlags reorders arguments so flags come before
// positional args, letting a builtin's pflag.FlagSet parse interspersed
// flags the way "ls -a -l" does.
func ReorderArgsForFlags(fs *pflag.FlagSet, args []string) []string {
	var flags []string
	var positional []string

	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			flags = append(flags, arg)
			name := strings.TrimLeft(arg, "-")
			if idx := strings.Index(name, "="); idx >= 0 {
				i++
				continue
			}
			if f := fs.Lookup(name); f != nil {
				if f.Value.Type() == "bool" {
					i++
					continue
				}
				if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
					i++
					flags = append(flags, args[i])
				}
			}
		} else {
			positional = append(positional, arg)
		}
		i++
	}

	return append(flags, positional...)
}

// PrintUsage writes a builtin's description and usage to w.
func PrintUsage(b *Builtin, w io.Writer) {
	fmt.Fprintf(w, "%s - %s\n", ui.CommandStyle.Render(b.Name), b.Description)
	if b.Usage != "" {
		fmt.Fprintf(w, "\nUsage: %s\n", b.Usage)
	}
}

func init() {
	Register(&Builtin{
		Name:        "help",
		Description: "Show available builtins or detailed help for one",
		Usage:       "help [command]",
		Run:         runHelp,
	})
}

func runHelp(ctx context.Context, s *session.Session, env *ExecutionEnv, argv []string) error {
	if len(argv) > 1 {
		b, ok := Lookup(argv[1])
		if !ok {
			return fmt.Errorf("help: unknown command '%s'", argv[1])
		}
		PrintUsage(b, env.Stdout)
		return nil
	}

	fmt.Fprintln(env.Stdout, ui.HeaderStyle.Render("Available commands:"))
	fmt.Fprintln(env.Stdout)
	t := ui.NewTable(env.Stdout)
	for _, name := range Names() {
		b := registry[name]
		t.AddRow(ui.CommandStyle.Render(b.Name), ui.MutedStyle.Render(b.Description))
	}
	t.Render()
	fmt.Fprintln(env.Stdout)
	return nil
}
