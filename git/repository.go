package git

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"

	"github.com/jmgilman/go/revcache/exec"
)

// Repository runs git queries in a working directory. It is safe for
// concurrent use.
type Repository struct {
	git     exec.Executor
	log     zerolog.Logger
	timeout time.Duration

	mu      sync.RWMutex
	workDir string
	branch  string
	fs      billy.Filesystem
	ownFS   bool
}

// New creates a Repository for workDir.
func New(workDir string, opts ...Option) *Repository {
	options := &repositoryOptions{
		binary: "git",
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.executor == nil {
		options.executor = exec.New(exec.WithDisableColors(), exec.WithInheritEnv())
	}

	r := &Repository{
		git:     exec.NewWrapper(options.executor, options.binary),
		log:     options.log,
		timeout: options.timeout,
		workDir: workDir,
		fs:      options.fs,
	}
	if r.fs == nil {
		r.fs = osfs.New(workDir)
		r.ownFS = true
	}
	return r
}

// WorkDir returns the working directory.
func (r *Repository) WorkDir() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.workDir
}

// SetWorkDir changes the working directory.
func (r *Repository) SetWorkDir(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workDir = dir
	if r.ownFS {
		r.fs = osfs.New(dir)
	}
}

// Filesystem returns the working-tree filesystem.
func (r *Repository) Filesystem() billy.Filesystem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fs
}

// queryEnv keeps queries from taking optional locks, such as the index
// refresh done by diff-index.
var queryEnv = map[string]string{"GIT_OPTIONAL_LOCKS": "0"}

func (r *Repository) command(ctx context.Context) exec.Executor {
	return r.git.WithEnv(queryEnv).WithDir(r.WorkDir()).WithContext(ctx)
}

// Query runs git with args and returns stdout. Failures are classified.
func (r *Repository) Query(ctx context.Context, args ...string) (string, error) {
	start := time.Now()
	res, err := r.command(ctx).WithTimeout(r.timeout).Run(args...)

	ev := r.log.Debug().Strs("args", args).Dur("took", time.Since(start))
	if res != nil {
		ev = ev.Int("exit_code", res.ExitCode)
	}
	ev.Msg("git query")

	if err != nil {
		return res.String(), classifyExecError(err, args)
	}
	return res.String(), nil
}

// Run runs a synchronous query.
func (r *Repository) Run(ctx context.Context, args ...string) Result {
	out, err := r.Query(ctx, args...)
	return Result{Success: err == nil, Output: out, Err: err}
}

// Stream runs git asynchronously. The returned channel receives exactly one
// value, the full stdout, once the process exits, and is then closed.
// Cancelling ctx kills the process.
func (r *Repository) Stream(ctx context.Context, args ...string) <-chan StreamResult {
	out := make(chan StreamResult, 1)
	cmd := r.command(ctx)

	go func() {
		defer close(out)

		start := time.Now()
		res, err := cmd.Run(args...)
		if err != nil {
			err = classifyExecError(err, args)
		}

		var buf []byte
		if res != nil {
			buf = res.Stdout
		}
		r.log.Debug().
			Strs("args", args[:min(len(args), 1)]).
			Int("bytes", len(buf)).
			Dur("took", time.Since(start)).
			Err(err).
			Msg("git stream finished")

		out <- StreamResult{Output: buf, Err: err}
	}()

	return out
}

func trimOutput(s string) string {
	return strings.TrimSpace(s)
}
