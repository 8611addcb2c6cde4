package loader

import (
	"github.com/rs/zerolog"
)

const (
	defaultRemote          = "origin"
	defaultDistanceWorkers = 4
)

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. Defaults to zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// WithListener adds a progress listener. May be given more than once.
func WithListener(listener Listener) Option {
	return func(l *Loader) {
		if listener != nil {
			l.listeners = append(l.listeners, listener)
		}
	}
}

// WithResolver replaces the `git rev-parse --show-cdup` root resolution,
// e.g. with git.GoGitResolver{}.
func WithResolver(r RootResolver) Option {
	return func(l *Loader) {
		if r != nil {
			l.resolver = r
		}
	}
}

// WithRemote sets the remote used for distance queries. Defaults to "origin".
func WithRemote(remote string) Option {
	return func(l *Loader) {
		if remote != "" {
			l.remote = remote
		}
	}
}

// WithDefaultBranch fixes the default branch instead of detecting it from
// the remote on every load.
func WithDefaultBranch(branch string) Option {
	return func(l *Loader) {
		l.defaultBranch = branch
	}
}

// WithDistanceWorkers bounds the concurrent distance queries. Defaults to 4.
func WithDistanceWorkers(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.workers = n
		}
	}
}
