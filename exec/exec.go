package exec

import (
	"context"
	"time"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor runs commands. Implementations must treat themselves as
// immutable: With* methods return a configured copy.
type Executor interface {
	// WithEnv adds environment variables for the command.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory.
	WithDir(dir string) Executor

	// WithContext bounds the command by ctx.
	WithContext(ctx context.Context) Executor

	// WithDisableColors sets NO_COLOR, TERM=dumb and related variables.
	WithDisableColors() Executor

	// WithTimeout kills the command after d. Zero disables the timeout.
	WithTimeout(d time.Duration) Executor

	// WithInheritEnv starts from the parent process environment.
	WithInheritEnv() Executor

	// Run executes args[0] with the remaining arguments.
	Run(args ...string) (*Result, error)
}

// Result is the outcome of a finished command.
type Result struct {
	// Stdout is the captured standard output, unmodified.
	Stdout []byte

	// Stderr is the captured standard error, unmodified.
	Stderr []byte

	// ExitCode is the process exit code, or -1 if it never started.
	ExitCode int
}

// String returns stdout as a string.
func (r *Result) String() string {
	if r == nil {
		return ""
	}
	return string(r.Stdout)
}

// Success reports whether the command exited with status zero.
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Option configures a Command at construction time.
type Option func(*settings)

// WithEnv returns an Option that adds environment variables.
func WithEnv(env map[string]string) Option {
	return func(s *settings) {
		s.addEnv(env)
	}
}

// WithDir returns an Option that sets the default working directory.
func WithDir(dir string) Option {
	return func(s *settings) {
		s.dir = dir
	}
}

// WithContext returns an Option that sets the default context.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		s.ctx = ctx
	}
}

// WithDisableColors returns an Option that disables colored output.
func WithDisableColors() Option {
	return func(s *settings) {
		s.disableColors = true
	}
}

// WithTimeout returns an Option that sets a default per-command timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithInheritEnv returns an Option that inherits the parent environment.
func WithInheritEnv() Option {
	return func(s *settings) {
		s.inheritEnv = true
	}
}
