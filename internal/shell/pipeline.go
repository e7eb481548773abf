package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mansson/poshell/internal/commands"
	"github.com/mansson/poshell/internal/session"
	"github.com/mansson/poshell/internal/shellerr"
)

// ExecuteLine lexes, splits and redirection-parses line, then runs the
// resulting pipeline. A blank line is a silent no-op.
func ExecuteLine(ctx context.Context, sess *session.Session, line string) error {
	pipeline, err := ParsePipeline(line)
	if err != nil {
		return err
	}
	if pipeline == nil || len(pipeline.Stages) == 0 {
		return nil
	}
	if len(pipeline.Stages) == 1 {
		return executeSingle(ctx, sess, pipeline.Stages[0])
	}
	return executeMulti(ctx, sess, pipeline.Stages)
}

func openRedirTarget(r *Redirection) (*os.File, error) {
	flag := os.O_WRONLY | os.O_CREATE
	if r.Mode == Append {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	f, err := os.OpenFile(r.Target, flag, 0o644)
	if err != nil {
		return nil, shellerr.RedirectionOpen(r.Target, err)
	}
	return f, nil
}

func closeAll(closers []io.Closer) {
	for _, c := range closers {
		_ = c.Close()
	}
}

// executeSingle runs one command (builtin or external) with its own
// redirections, satisfying the fd save/install/restore invariant
// through the lifetime of the ExecutionEnv handed to it rather than
// literal dup2.
func executeSingle(ctx context.Context, sess *session.Session, stage Stage) error {
	if len(stage.Argv) == 0 {
		// A line consisting only of redirections is a no-op.
		return nil
	}

	env := &commands.ExecutionEnv{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	var closers []io.Closer

	if stage.StdoutRedir != nil {
		f, err := openRedirTarget(stage.StdoutRedir)
		if err != nil {
			return err
		}
		env.Stdout = f
		closers = append(closers, f)
	}
	if stage.StderrRedir != nil {
		f, err := openRedirTarget(stage.StderrRedir)
		if err != nil {
			closeAll(closers)
			return err
		}
		env.Stderr = f
		closers = append(closers, f)
	}

	resolved, err := commands.Resolve(stage.Argv[0])
	if err != nil {
		closeAll(closers)
		return err
	}

	switch resolved.Kind {
	case commands.KindBuiltin:
		if code, requested := resolved.Builtin.ExitProbe(stage.Argv); requested {
			closeAll(closers)
			os.Exit(code)
		}
		runErr := resolved.Builtin.Run(ctx, sess, env, stage.Argv)
		closeAll(closers)
		return runErr
	default:
		runErr := runExternal(ctx, resolved.Path, stage.Argv, env)
		closeAll(closers)
		return runErr
	}
}

// executeMulti wires n stages through n-1 os.Pipe()s. A builtin is only
// permitted as the final stage; encountering one earlier is a
// resolution failure, matched before any process is spawned. Any
// redirection-open failure likewise aborts before spawning starts.
func executeMulti(ctx context.Context, sess *session.Session, stages []Stage) error {
	n := len(stages)

	resolved := make([]commands.Resolution, n)
	for i, st := range stages {
		r, err := commands.Resolve(st.Argv[0])
		if err != nil {
			return err
		}
		if r.Kind == commands.KindBuiltin && i != n-1 {
			// A non-final builtin is treated as a resolution failure,
			// same as an unresolvable name.
			return shellerr.CommandNotFound(st.Argv[0])
		}
		resolved[i] = r
	}

	stdouts := make([]io.Writer, n)
	stderrs := make([]io.Writer, n)
	for i := range stderrs {
		stderrs[i] = os.Stderr
	}

	var closers []io.Closer
	for i, st := range stages {
		if st.StdoutRedir != nil {
			f, err := openRedirTarget(st.StdoutRedir)
			if err != nil {
				closeAll(closers)
				return err
			}
			stdouts[i] = f
			closers = append(closers, f)
		}
		if st.StderrRedir != nil {
			f, err := openRedirTarget(st.StderrRedir)
			if err != nil {
				closeAll(closers)
				return err
			}
			stderrs[i] = f
			closers = append(closers, f)
		}
	}

	type pipeEnds struct{ r, w *os.File }
	pipes := make([]pipeEnds, n-1)
	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			closeAll(closers)
			return shellerr.Execution("failed to create pipe: " + err.Error())
		}
		pipes[i] = pipeEnds{r, w}
		closers = append(closers, r, w)
	}
	defer closeAll(closers)

	stdins := make([]io.Reader, n)
	stdins[0] = os.Stdin
	for i := 1; i < n; i++ {
		stdins[i] = pipes[i-1].r
	}
	for i := 0; i < n-1; i++ {
		if stdouts[i] != nil {
			// Stage i's own redirection overrides this pipe slot, so
			// nothing will ever write to its real pipe. Close the write
			// end now, before any stage is spawned, or stage i+1's read
			// end never sees EOF and waitAll deadlocks.
			pipes[i].w.Close()
			continue
		}
		stdouts[i] = pipes[i].w
	}
	if stdouts[n-1] == nil {
		stdouts[n-1] = os.Stdout
	}

	var children []*exec.Cmd
	for i := 0; i < n; i++ {
		if resolved[i].Kind == commands.KindBuiltin {
			if r, ok := stdins[i].(*os.File); ok && r != os.Stdin {
				io.Copy(io.Discard, r)
			}
			waitAll(children)
			env := &commands.ExecutionEnv{Stdin: stdins[i], Stdout: stdouts[i], Stderr: stderrs[i]}
			if code, requested := resolved[i].Builtin.ExitProbe(stages[i].Argv); requested {
				closeAll(closers)
				os.Exit(code)
			}
			return resolved[i].Builtin.Run(ctx, sess, env, stages[i].Argv)
		}

		cmd := exec.CommandContext(ctx, resolved[i].Path, stages[i].Argv[1:]...)
		cmd.Stdin = stdins[i]
		cmd.Stdout = stdouts[i]
		cmd.Stderr = stderrs[i]
		if err := cmd.Start(); err != nil {
			closeAll(closers)
			waitAll(children)
			return shellerr.Execution(stages[i].Argv[0] + ": " + err.Error())
		}
		children = append(children, cmd)

		if i < n-1 {
			if w, ok := stdouts[i].(*os.File); ok && w != os.Stdout {
				w.Close()
			}
		}
		if i > 0 {
			pipes[i-1].r.Close()
		}
	}

	waitAll(children)
	return nil
}

func waitAll(children []*exec.Cmd) {
	for _, c := range children {
		if err := c.Wait(); err != nil {
			if _, isExit := err.(*exec.ExitError); !isExit {
				fmt.Fprintf(os.Stderr, "poshell: wait: %v\n", err)
			}
		}
	}
}

// runExternal spawns an external command via os/exec. A non-zero exit
// status is not itself a shell error (bash does not fail a line just
// because the command it ran returned non-zero); only a failure to
// start the process is surfaced.
func runExternal(ctx context.Context, path string, argv []string, env *commands.ExecutionEnv) error {
	cmd := exec.CommandContext(ctx, path, argv[1:]...)
	cmd.Stdin = env.Stdin
	cmd.Stdout = env.Stdout
	cmd.Stderr = env.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if _, ok := err.(*exec.ExitError); ok {
		return nil
	}
	return shellerr.Execution(argv[0] + ": " + err.Error())
}
