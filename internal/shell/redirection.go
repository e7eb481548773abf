package shell

import (
	"strings"

	"github.com/mansson/poshell/internal/shellerr"
)

// RedirectionMode selects how a redirection target file is opened.
type RedirectionMode int

const (
	Overwrite RedirectionMode = iota
	Append
)

// Redirection names a file and the mode a stage's stdout or stderr
// should be written to it with.
type Redirection struct {
	Target string
	Mode   RedirectionMode
}

// Stage is one command in a pipeline: its argv plus any redirections
// that override where its stdout/stderr end up.
type Stage struct {
	Argv        []string
	StdoutRedir *Redirection
	StderrRedir *Redirection
}

// Pipeline is a sequence of stages connected left to right by pipes,
// each stage's redirection (if any) overriding the corresponding pipe.
type Pipeline struct {
	Stages []Stage
}

var redirectionOperators = map[string]struct {
	fd   int // 1 or 2
	mode RedirectionMode
}{
	">":   {1, Overwrite},
	"1>":  {1, Overwrite},
	">>":  {1, Append},
	"1>>": {1, Append},
	"2>":  {2, Overwrite},
	"2>>": {2, Append},
}

// SplitPipeline splits a raw line into stage substrings on unquoted |,
// tracking quote state the same way the lexer does so a | typed inside
// quotes is never mistaken for a pipeline connector.
func SplitPipeline(line string) ([]string, error) {
	var stages []string
	var cur strings.Builder

	var quote rune // 0, '\'', or '"'
	runes := []rune(line)
	n := len(runes)

	for i := 0; i < n; i++ {
		ch := runes[i]

		if quote != 0 {
			cur.WriteRune(ch)
			if ch == '\\' && quote == '"' && i+1 < n {
				i++
				cur.WriteRune(runes[i])
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}

		switch {
		case ch == '\'' || ch == '"':
			quote = ch
			cur.WriteRune(ch)
		case ch == '\\' && i+1 < n:
			cur.WriteRune(ch)
			i++
			cur.WriteRune(runes[i])
		case ch == '|':
			stages = append(stages, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}

	if quote != 0 {
		return nil, shellerr.InvalidQuoting("unterminated quote")
	}

	stages = append(stages, cur.String())

	result := make([]string, 0, len(stages))
	for _, s := range stages {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return nil, shellerr.RedirectionParse("empty command in pipeline")
		}
		result = append(result, trimmed)
	}
	return result, nil
}

// ParseRedirections walks a token stream, pulling out every
// >/1>/>>/1>>/2>/2>> operator (and its filename argument) wherever it
// appears in the argv, leaving only the command and its real arguments.
func ParseRedirections(tokens []Token) ([]string, *Redirection, *Redirection, error) {
	var argv []string
	var stdout, stderr *Redirection

	for i := 0; i < len(tokens); i++ {
		op, isOp := redirectionOperators[tokens[i].Value]
		if !isOp {
			argv = append(argv, tokens[i].Value)
			continue
		}
		i++
		if i >= len(tokens) {
			return nil, nil, nil, shellerr.RedirectionParse("expected filename after " + tokens[i-1].Value)
		}
		redir := &Redirection{Target: tokens[i].Value, Mode: op.mode}
		if op.fd == 1 {
			stdout = redir
		} else {
			stderr = redir
		}
	}

	return argv, stdout, stderr, nil
}

// ParsePipeline runs the splitter, lexer and redirection parser over a
// raw input line, producing the fully-structured Pipeline the executor
// consumes. A blank line yields a nil Pipeline and nil error.
func ParsePipeline(line string) (*Pipeline, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	stageLines, err := SplitPipeline(line)
	if err != nil {
		return nil, err
	}

	stages := make([]Stage, 0, len(stageLines))
	for _, stageLine := range stageLines {
		tokens, err := Lex(stageLine)
		if err != nil {
			return nil, err
		}
		argv, stdout, stderr, err := ParseRedirections(tokens)
		if err != nil {
			return nil, err
		}
		stages = append(stages, Stage{Argv: argv, StdoutRedir: stdout, StderrRedir: stderr})
	}

	if len(stages) > 1 {
		for _, st := range stages {
			if len(st.Argv) == 0 {
				return nil, shellerr.Execution("empty command in pipeline")
			}
		}
	}

	return &Pipeline{Stages: stages}, nil
}
