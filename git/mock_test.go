package git

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmgilman/go/revcache/exec"
	"github.com/jmgilman/go/revcache/exec/mocks"
)

// scriptedExecutor answers Run calls by the git subcommand and records the
// directories it was pointed at.
func scriptedExecutor(run func(args []string) (*exec.Result, error)) (*mocks.ExecutorMock, *[]string) {
	var (
		mu   sync.Mutex
		dirs []string
		mock *mocks.ExecutorMock
	)
	mock = &mocks.ExecutorMock{
		RunFunc: func(args ...string) (*exec.Result, error) {
			return run(args)
		},
		WithEnvFunc: func(env map[string]string) exec.Executor {
			return mock
		},
		WithDirFunc: func(dir string) exec.Executor {
			mu.Lock()
			dirs = append(dirs, dir)
			mu.Unlock()
			return mock
		},
		WithContextFunc: func(ctx context.Context) exec.Executor {
			return mock
		},
		WithTimeoutFunc: func(d time.Duration) exec.Executor {
			return mock
		},
	}
	return mock, &dirs
}

func ok(stdout string) (*exec.Result, error) {
	return &exec.Result{Stdout: []byte(stdout)}, nil
}

func fail(code int, stderr string, args []string) (*exec.Result, error) {
	res := &exec.Result{ExitCode: code, Stderr: []byte(stderr)}
	return res, &exec.ExecError{Command: args, ExitCode: code, Stderr: res.Stderr, Err: fmt.Errorf("exit status %d", code)}
}
