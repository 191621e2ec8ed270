package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// waitDelay bounds how long Wait blocks on inherited pipes after the
// process has been killed by context cancellation.
const waitDelay = 5 * time.Second

type implExecutor struct{}

// New creates a new Executor instance. Commands run in the current working
// directory unless ExecuteInDir is used.
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (Output, error) {
	return e.ExecuteInDir(ctx, "", name, args...)
}

// ExecuteInDir runs an external command in a specific working directory
func (e *implExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (Output, error) {
	var stdout, stderr bytes.Buffer
	err := e.run(ctx, dir, &stdout, &stderr, name, args)
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		return out, err
	}
	return out, nil
}

// ExecuteToFile runs an external command with stdout redirected to a file.
// The file is created (or truncated) before the command starts.
func (e *implExecutor) ExecuteToFile(ctx context.Context, stdoutPath string, name string, args ...string) (Output, error) {
	if err := os.MkdirAll(filepath.Dir(stdoutPath), 0755); err != nil {
		return Output{}, fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(stdoutPath)
	if err != nil {
		return Output{}, fmt.Errorf("create stdout file: %w", err)
	}

	var stderr bytes.Buffer
	runErr := e.run(ctx, "", f, &stderr, name, args)
	closeErr := f.Close()

	out := Output{Stderr: stderr.String()}
	if runErr != nil {
		return out, runErr
	}
	if closeErr != nil {
		return out, fmt.Errorf("close stdout file: %w", closeErr)
	}
	return out, nil
}

func (e *implExecutor) run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	if err == nil {
		return nil
	}

	toolErr := &ExternalToolError{
		Tool:     name,
		Args:     args,
		ExitCode: -1,
		Err:      err,
	}
	if b, ok := stderr.(*bytes.Buffer); ok {
		toolErr.Stderr = b.String()
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		toolErr.ExitCode = exitErr.ExitCode()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		toolErr.Err = ctxErr
		toolErr.TimedOut = errors.Is(ctxErr, context.DeadlineExceeded)
	}
	return toolErr
}
