package maven

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Command describes one process invocation. Env, when non-nil, fully replaces
// the ambient environment; it is always constructed explicitly, never by
// mutating global process state.
type Command struct {
	Dir  string
	Env  []string
	Name string
	Args []string
}

// Result is the captured outcome of a finished process: combined
// stdout+stderr as one ordered stream, plus the exit status.
type Result struct {
	Output   string
	ExitCode int
}

// Execer spawns external processes. The pipeline steps depend on this
// interface so tests can substitute a fake.
type Execer interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// SystemExecer runs commands via os/exec, waiting for completion and
// capturing combined output.
type SystemExecer struct{}

func (SystemExecer) Run(ctx context.Context, c Command) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	res := Result{Output: out.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		// Spawn failure (executable missing, permission denied).
		return res, err
	}
	return res, nil
}
