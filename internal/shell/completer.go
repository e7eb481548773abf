package shell

import (
	"os"
	"strings"

	"github.com/mansson/poshell/internal/commands"
)

// Completer implements readline.AutoCompleter, completing the first
// word of a line against registered builtins and PATH executables —
// real directory scanning with an exec-bit check, the same shape as
// a rustyline Completer that scans $PATH.
type Completer struct{}

func NewCompleter() *Completer { return &Completer{} }

func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	if strings.ContainsAny(prefix, " \t") {
		return nil, 0
	}

	seen := make(map[string]bool)
	var matches []string
	for _, name := range commands.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
			seen[name] = true
		}
	}
	for _, name := range pathExecutableNames(prefix) {
		if !seen[name] {
			matches = append(matches, name)
			seen[name] = true
		}
	}

	newLine := make([][]rune, len(matches))
	for i, m := range matches {
		newLine[i] = []rune(m[len(prefix):])
	}
	return newLine, len(prefix)
}

func pathExecutableNames(prefix string) []string {
	var names []string
	for _, dir := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
				continue
			}
			info, err := e.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}
			names = append(names, e.Name())
		}
	}
	return names
}
