package loader

import (
	"context"

	"github.com/jmgilman/go/revcache/git"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/backend.go -pkg mocks . Backend

// Backend is the repository collaborator the loader queries. git.Repository
// implements it.
type Backend interface {
	WorkDir() string
	SetWorkDir(dir string)
	Run(ctx context.Context, args ...string) git.Result
	Stream(ctx context.Context, args ...string) <-chan git.StreamResult
	CurrentBranch() string
	UpdateCurrentBranch(ctx context.Context) error
	Distance(ctx context.Context, base, branch string) (behind, ahead uint, err error)
	DefaultBranch(ctx context.Context, remote string) string
	FileExists(path string) bool
}

var _ Backend = (*git.Repository)(nil)

// RootResolver finds the repository root for a working directory.
type RootResolver interface {
	ResolveRoot(ctx context.Context, dir string) (string, error)
}

// Listener receives load progress notifications. Calls are made from the
// loader's goroutine and must not block.
type Listener interface {
	// LoadingStarted reports the number of records about to be parsed.
	LoadingStarted(total int)

	// LoadingFinished reports that the cache has been populated.
	LoadingFinished()

	// LoadingCancelled reports that the in-flight cycle was cancelled.
	LoadingCancelled()
}

// ListenerFuncs adapts optional functions to a Listener.
type ListenerFuncs struct {
	Started   func(total int)
	Finished  func()
	Cancelled func()
}

func (f ListenerFuncs) LoadingStarted(total int) {
	if f.Started != nil {
		f.Started(total)
	}
}

func (f ListenerFuncs) LoadingFinished() {
	if f.Finished != nil {
		f.Finished()
	}
}

func (f ListenerFuncs) LoadingCancelled() {
	if f.Cancelled != nil {
		f.Cancelled()
	}
}

// LoadOptions are the per-call settings of a load cycle.
type LoadOptions struct {
	// ShowAll loads every ref (--all) instead of the current branch only.
	ShowAll bool

	// MaxCount limits the number of commits when positive. Boundary
	// parents of the last listed commits are emitted on top of the limit.
	MaxCount int
}
