package exec

import (
	"bytes"
	"context"
	"errors"
	osexec "os/exec"
	"time"
)

// Command is the os/exec backed Executor.
type Command struct {
	s *settings
}

// New creates a Command with the given defaults.
func New(opts ...Option) *Command {
	s := newSettings()
	for _, opt := range opts {
		opt(s)
	}
	return &Command{s: s}
}

func (c *Command) with(fn func(*settings)) *Command {
	s := c.s.clone()
	fn(s)
	return &Command{s: s}
}

// WithEnv adds environment variables.
func (c *Command) WithEnv(env map[string]string) Executor {
	return c.with(func(s *settings) { s.addEnv(env) })
}

// WithDir sets the working directory.
func (c *Command) WithDir(dir string) Executor {
	return c.with(func(s *settings) { s.dir = dir })
}

// WithContext sets the context.
func (c *Command) WithContext(ctx context.Context) Executor {
	return c.with(func(s *settings) { s.ctx = ctx })
}

// WithDisableColors disables colored output.
func (c *Command) WithDisableColors() Executor {
	return c.with(func(s *settings) { s.disableColors = true })
}

// WithTimeout sets a timeout.
func (c *Command) WithTimeout(d time.Duration) Executor {
	return c.with(func(s *settings) { s.timeout = d })
}

// WithInheritEnv inherits the parent environment.
func (c *Command) WithInheritEnv() Executor {
	return c.with(func(s *settings) { s.inheritEnv = true })
}

// Run executes the command and waits for it to exit.
func (c *Command) Run(args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ExecError{Command: args, ExitCode: -1, Err: osexec.ErrNotFound}
	}

	ctx := c.s.ctx
	if c.s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.s.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = c.s.dir
	cmd.Env = c.s.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: -1,
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}
		return res, &ExecError{
			Command:  args,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Err:      err,
		}
	}
	return res, nil
}
