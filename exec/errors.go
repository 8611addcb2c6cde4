package exec

import (
	"context"
	"errors"
	"fmt"
)

// ExecError describes a command that failed to start or exited non-zero.
type ExecError struct {
	// Command is the full argument vector.
	Command []string

	// ExitCode is the exit status, or -1 if the process never ran.
	ExitCode int

	// Stderr is the captured standard error.
	Stderr []byte

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %v failed with exit code %d", e.Command, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// Canceled reports whether the command was stopped by its context being
// cancelled.
func (e *ExecError) Canceled() bool {
	return errors.Is(e.Err, context.Canceled)
}

// TimedOut reports whether the command was stopped by its deadline.
func (e *ExecError) TimedOut() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}
