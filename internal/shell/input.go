package shell

import (
	"io"

	"github.com/chzyer/readline"
	"github.com/mansson/poshell/internal/shellerr"
)

// LineSource is the line input source collaborator: it hands the REPL
// one line of text at a time, returning io.EOF at end of input and
// shellerr.Interrupted when the user presses Ctrl-C mid-line.
type LineSource interface {
	ReadLine() (string, error)
	Close() error
}

type readlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource builds a LineSource backed by chzyer/readline, with
// persistent history at historyPath and tab completion from completer.
// This is the shell's only concrete line-editing backend; the executor
// and REPL driver never import readline directly.
func NewReadlineSource(prompt, historyPath string, completer readline.AutoCompleter) (LineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyPath,
		HistorySearchFold: true,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "",
	})
	if err != nil {
		return nil, err
	}
	return &readlineSource{rl: rl}, nil
}

func (s *readlineSource) ReadLine() (string, error) {
	line, err := s.rl.Readline()
	switch err {
	case readline.ErrInterrupt:
		return "", shellerr.Interrupted
	case io.EOF:
		return "", io.EOF
	case nil:
		return line, nil
	default:
		return "", err
	}
}

func (s *readlineSource) Close() error {
	return s.rl.Close()
}
