package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mansson/poshell/internal/shellerr"
)

// Kind tags what a resolved command name turned out to be.
type Kind int

const (
	KindBuiltin Kind = iota
	KindExternal
)

// Resolution is the resolver's verdict for one command name: either a
// registered builtin, or the absolute path of a PATH-found executable.
type Resolution struct {
	Kind    Kind
	Builtin *Builtin
	Path    string
}

// Resolve decides whether name is a builtin, a direct/PATH-qualified
// executable, or unresolvable. A name containing a '/' is tried as a
// direct path and never consulted against PATH or the builtin table.
func Resolve(name string) (Resolution, error) {
	if strings.ContainsRune(name, '/') {
		if isExecutableRegularFile(name) {
			return Resolution{Kind: KindExternal, Path: name}, nil
		}
		return Resolution{}, shellerr.CommandNotFound(name)
	}

	if b, ok := Lookup(name); ok {
		return Resolution{Kind: KindBuiltin, Builtin: b}, nil
	}

	if path, ok := FindInPath(name); ok {
		return Resolution{Kind: KindExternal, Path: path}, nil
	}

	return Resolution{}, shellerr.CommandNotFound(name)
}

// FindInPath scans $PATH for an executable regular file named name,
// returning its full path. Used both by Resolve and by the "type"
// builtin; both consult it only after the builtin table has no match.
func FindInPath(name string) (string, bool) {
	pathVar := os.Getenv("PATH")
	if pathVar == "" {
		return "", false
	}
	for _, dir := range strings.Split(pathVar, string(os.PathListSeparator)) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isExecutableRegularFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isExecutableRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode()&0o111 != 0
}
