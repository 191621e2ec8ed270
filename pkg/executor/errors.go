package executor

import (
	"fmt"
	"strings"
)

// maxDiagnostic caps the stderr text carried in error messages.
const maxDiagnostic = 4000

// ExternalToolError reports a command that could not start, exited non-zero,
// or was killed because its context ended.
type ExternalToolError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	TimedOut bool
	Err      error
}

func (e *ExternalToolError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "command '%s' failed", e.Tool)
	switch {
	case e.TimedOut:
		b.WriteString(" (timed out)")
	case e.ExitCode >= 0:
		fmt.Fprintf(&b, " (exit code %d)", e.ExitCode)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		fmt.Fprintf(&b, "\nstderr: %s", tail(s, maxDiagnostic))
	}
	return b.String()
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}

// tail keeps the last n bytes of s; tools print the actual failure last.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
