package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs name with args and captures stdout and stderr.
	Execute(ctx context.Context, name string, args ...string) (Output, error)
	// ExecuteInDir is Execute with an explicit working directory.
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (Output, error)
	// ExecuteToFile streams the command's stdout into stdoutPath. Only stderr
	// is captured in the returned Output.
	ExecuteToFile(ctx context.Context, stdoutPath string, name string, args ...string) (Output, error)
}

// Output holds the captured streams of a finished command.
type Output struct {
	Stdout string
	Stderr string
}
