package shell_test

import (
	"testing"

	"github.com/mansson/poshell/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPipeline(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single stage", "echo hello", []string{"echo hello"}},
		{"two stages", "cat file.txt | sort", []string{"cat file.txt", "sort"}},
		{"three stages", "cat file | sort | uniq", []string{"cat file", "sort", "uniq"}},
		{"pipe inside single quotes", `echo 'a|b'`, []string{`echo 'a|b'`}},
		{"pipe inside double quotes", `echo "a|b"`, []string{`echo "a|b"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages, err := shell.SplitPipeline(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stages)
		})
	}
}

func TestSplitPipeline_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty stage between pipes", "cat file | | sort"},
		{"unterminated quote", "echo 'unterminated | pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shell.SplitPipeline(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParsePipeline_SingleStageRedirections(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		argv       []string
		stdout     *shell.Redirection
		stderr     *shell.Redirection
	}{
		{
			name: "plain command",
			input: "echo hello world",
			argv:  []string{"echo", "hello", "world"},
		},
		{
			name:   "stdout overwrite",
			input:  "echo hello > out.txt",
			argv:   []string{"echo", "hello"},
			stdout: &shell.Redirection{Target: "out.txt", Mode: shell.Overwrite},
		},
		{
			name:   "stdout append via 1>>",
			input:  "echo hello 1>> out.txt",
			argv:   []string{"echo", "hello"},
			stdout: &shell.Redirection{Target: "out.txt", Mode: shell.Append},
		},
		{
			name:   "stderr overwrite",
			input:  "cmd 2> err.txt",
			argv:   []string{"cmd"},
			stderr: &shell.Redirection{Target: "err.txt", Mode: shell.Overwrite},
		},
		{
			name:   "stderr append",
			input:  "cmd 2>> err.txt",
			argv:   []string{"cmd"},
			stderr: &shell.Redirection{Target: "err.txt", Mode: shell.Append},
		},
		{
			name:   "both redirections",
			input:  "cmd > out.txt 2> err.txt",
			argv:   []string{"cmd"},
			stdout: &shell.Redirection{Target: "out.txt", Mode: shell.Overwrite},
			stderr: &shell.Redirection{Target: "err.txt", Mode: shell.Overwrite},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline, err := shell.ParsePipeline(tt.input)
			require.NoError(t, err)
			require.Len(t, pipeline.Stages, 1)

			stage := pipeline.Stages[0]
			assert.Equal(t, tt.argv, stage.Argv)
			assert.Equal(t, tt.stdout, stage.StdoutRedir)
			assert.Equal(t, tt.stderr, stage.StderrRedir)
		})
	}
}

func TestParsePipeline_MissingFilename(t *testing.T) {
	_, err := shell.ParsePipeline("echo hello >")
	assert.Error(t, err)
}

func TestParsePipeline_MultiStage(t *testing.T) {
	pipeline, err := shell.ParsePipeline("cat file.txt | sort -r | uniq -c")
	require.NoError(t, err)
	require.Len(t, pipeline.Stages, 3)

	assert.Equal(t, []string{"cat", "file.txt"}, pipeline.Stages[0].Argv)
	assert.Equal(t, []string{"sort", "-r"}, pipeline.Stages[1].Argv)
	assert.Equal(t, []string{"uniq", "-c"}, pipeline.Stages[2].Argv)
}

func TestParsePipeline_BlankLine(t *testing.T) {
	pipeline, err := shell.ParsePipeline("   ")
	require.NoError(t, err)
	assert.Nil(t, pipeline)
}
