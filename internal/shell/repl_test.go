package shell_test

import (
	"io"
	"os"
	"testing"

	"github.com/mansson/poshell/internal/history"
	"github.com/mansson/poshell/internal/session"
	"github.com/mansson/poshell/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLines is a LineSource that hands back a fixed script, then io.EOF.
type fakeLines struct {
	lines []string
	i     int
}

func (f *fakeLines) ReadLine() (string, error) {
	if f.i >= len(f.lines) {
		return "", io.EOF
	}
	line := f.lines[f.i]
	f.i++
	return line, nil
}

func (f *fakeLines) Close() error { return nil }

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = orig

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

func TestShellRun_ErrorHasNoPrefix(t *testing.T) {
	sess := session.New(history.NewStore())
	sh := shell.New(sess, &fakeLines{lines: []string{"cd /nonexistent/xyz"}})

	out := captureStderr(t, func() {
		sh.Run()
	})

	assert.Equal(t, "cd: /nonexistent/xyz: No such file or directory\n", out)
}

func TestShellRun_UnknownCommandHasNoPrefix(t *testing.T) {
	sess := session.New(history.NewStore())
	sh := shell.New(sess, &fakeLines{lines: []string{"definitely-not-a-real-command-xyz"}})

	out := captureStderr(t, func() {
		sh.Run()
	})

	assert.Equal(t, "definitely-not-a-real-command-xyz: command not found\n", out)
}
