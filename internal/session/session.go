// Package session carries the state that persists across command
// invocations within one shell process — currently just the shared
// history store that the REPL appends to and builtins read from.
package session

import "github.com/mansson/poshell/internal/history"

type Session struct {
	History *history.Store
}

func New(hist *history.Store) *Session {
	return &Session{History: hist}
}
