// Command poshell is an interactive POSIX-style shell: it lexes each
// line, splits it into pipeline stages, parses redirections, and
// dispatches to builtins or PATH executables.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mansson/poshell/internal/config"
	"github.com/mansson/poshell/internal/history"
	"github.com/mansson/poshell/internal/session"
	"github.com/mansson/poshell/internal/shell"
	"github.com/mansson/poshell/internal/ui"

	_ "github.com/mansson/poshell/internal/commands"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "poshell: error loading config: %v\n", err)
		os.Exit(1)
	}

	switch cfg.Theme {
	case "dark":
		ui.SetDarkTheme()
	case "light":
		ui.SetLightTheme()
	}

	histPath, err := cfg.HistoryPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "poshell: %v\n", err)
		os.Exit(1)
	}
	_ = os.MkdirAll(filepath.Dir(histPath), 0o700)

	hist := history.NewStore()
	if _, statErr := os.Stat(histPath); statErr == nil {
		_ = hist.LoadFromFile(histPath)
	}
	sess := session.New(hist)

	input, err := shell.NewReadlineSource(ui.Prompt, histPath, shell.NewCompleter())
	if err != nil {
		fmt.Fprintf(os.Stderr, "poshell: failed to start: %v\n", err)
		os.Exit(1)
	}

	sh := shell.New(sess, input)
	os.Exit(sh.Run())
}
