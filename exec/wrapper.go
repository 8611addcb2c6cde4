package exec

import (
	"context"
	"time"
)

// CommandWrapper prepends a fixed command name to every Run, e.g. "git".
// It is itself an Executor and is immutable like Command.
type CommandWrapper struct {
	executor Executor
	cmd      string
}

// NewWrapper wraps executor so that Run(args...) executes cmd args....
func NewWrapper(executor Executor, cmd string) *CommandWrapper {
	return &CommandWrapper{executor: executor, cmd: cmd}
}

// Name returns the wrapped command name.
func (w *CommandWrapper) Name() string {
	return w.cmd
}

func (w *CommandWrapper) wrap(e Executor) *CommandWrapper {
	return &CommandWrapper{executor: e, cmd: w.cmd}
}

// WithEnv adds environment variables.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	return w.wrap(w.executor.WithEnv(env))
}

// WithDir sets the working directory.
func (w *CommandWrapper) WithDir(dir string) Executor {
	return w.wrap(w.executor.WithDir(dir))
}

// WithContext sets the context.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	return w.wrap(w.executor.WithContext(ctx))
}

// WithDisableColors disables colored output.
func (w *CommandWrapper) WithDisableColors() Executor {
	return w.wrap(w.executor.WithDisableColors())
}

// WithTimeout sets a timeout.
func (w *CommandWrapper) WithTimeout(d time.Duration) Executor {
	return w.wrap(w.executor.WithTimeout(d))
}

// WithInheritEnv inherits the parent environment.
func (w *CommandWrapper) WithInheritEnv() Executor {
	return w.wrap(w.executor.WithInheritEnv())
}

// Run executes the wrapped command with args appended.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	full := make([]string, 0, len(args)+1)
	full = append(full, w.cmd)
	full = append(full, args...)
	return w.executor.Run(full...)
}
