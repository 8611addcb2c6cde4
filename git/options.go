package git

import (
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/jmgilman/go/revcache/exec"
)

// Option configures a Repository.
type Option func(*repositoryOptions)

type repositoryOptions struct {
	executor exec.Executor
	binary   string
	fs       billy.Filesystem
	log      zerolog.Logger
	timeout  time.Duration
}

// WithExecutor sets the executor git runs through. Defaults to exec.New
// with colors disabled.
func WithExecutor(e exec.Executor) Option {
	return func(o *repositoryOptions) {
		o.executor = e
	}
}

// WithBinary sets the git executable. Defaults to "git".
func WithBinary(path string) Option {
	return func(o *repositoryOptions) {
		if path != "" {
			o.binary = path
		}
	}
}

// WithFilesystem sets the filesystem used for working-tree probes. If not
// provided, an osfs rooted at the working directory is used and re-rooted
// whenever the working directory changes.
//
// Example:
//
//	repo := git.New("/repo", git.WithFilesystem(memfs.New()))
func WithFilesystem(fs billy.Filesystem) Option {
	return func(o *repositoryOptions) {
		o.fs = fs
	}
}

// WithLogger sets the logger. Queries are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(o *repositoryOptions) {
		o.log = log
	}
}

// WithQueryTimeout bounds every synchronous query. Streams are not bounded.
func WithQueryTimeout(d time.Duration) Option {
	return func(o *repositoryOptions) {
		o.timeout = d
	}
}
