package loader

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jmgilman/go/revcache/cache"
	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/git"
)

// Loader runs load cycles against a Backend and publishes them to a cache.
// It is safe for concurrent use.
type Loader struct {
	backend   Backend
	cache     cache.Writer
	resolver  RootResolver
	listeners []Listener
	log       zerolog.Logger

	remote        string
	defaultBranch string
	workers       int

	mu         sync.Mutex
	locked     bool
	generation uint64
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New creates a Loader writing to c.
func New(backend Backend, c cache.Writer, opts ...Option) *Loader {
	l := &Loader{
		backend: backend,
		cache:   c,
		log:     zerolog.Nop(),
		remote:  defaultRemote,
		workers: defaultDistanceWorkers,
	}
	l.resolver = backendResolver{backend: backend}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load starts a load cycle. It returns once the log query is dispatched;
// the cache is populated in the background. ctx bounds the whole cycle,
// including the background part.
//
// Load fails with LOAD_IN_PROGRESS if a cycle is running, with
// INVALID_CONFIGURATION if the backend has no working directory, and with
// NOT_A_REPOSITORY if the root cannot be resolved. A cycle cancelled before
// its log query is dispatched returns CANCELED. The cache is not touched on
// failure.
func (l *Loader) Load(ctx context.Context, opts LoadOptions) error {
	l.mu.Lock()
	if l.locked {
		l.mu.Unlock()
		err := errors.New(errors.CodeLoadInProgress, "git is currently loading data")
		l.log.Warn().Err(err).Msg("load rejected")
		return err
	}

	workDir := l.backend.WorkDir()
	if workDir == "" {
		l.mu.Unlock()
		err := errors.New(errors.CodeInvalidConfig, "no working directory set")
		l.log.Error().Err(err).Msg("load rejected")
		return err
	}

	l.locked = true
	l.generation++
	gen := l.generation
	cycleCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	log := l.log.With().Str("cycle", uuid.NewString()).Logger()
	log.Info().Str("work_dir", workDir).Bool("show_all", opts.ShowAll).Msg("loading repository")

	if err := l.prepare(cycleCtx, workDir, log); err != nil {
		l.release(gen)
		log.Error().Err(err).Msg("load aborted")
		return err
	}

	revision := "--all"
	if !opts.ShowAll {
		revision = l.backend.CurrentBranch()
		if revision == "" {
			revision = git.DetachedHead
		}
	}

	// Cancel may have run while the root and branch were resolved, and a
	// newer cycle may already have populated the cache.
	l.mu.Lock()
	if gen != l.generation || !l.locked {
		l.mu.Unlock()
		err := errors.New(errors.CodeCanceled, "load cancelled before dispatch")
		log.Info().Err(err).Msg("load aborted")
		return err
	}
	l.cache.BeginLoad()
	l.mu.Unlock()

	stream := l.backend.Stream(cycleCtx, commit.LogArgs(revision, opts.MaxCount)...)
	log.Debug().Str("revision", revision).Msg("requested revisions")

	l.wg.Add(1)
	go l.run(cycleCtx, gen, stream, log)

	return nil
}

func (l *Loader) prepare(ctx context.Context, workDir string, log zerolog.Logger) error {
	root, err := l.resolver.ResolveRoot(ctx, workDir)
	if err != nil {
		if errors.HasCode(err, errors.CodeCanceled) {
			return err
		}
		return errors.WithContext(
			errors.Wrap(err, errors.CodeNotRepository, "the working directory is not a git repository"),
			"work_dir", workDir,
		)
	}
	if root != workDir {
		log.Debug().Str("root", root).Msg("resolved repository root")
		l.backend.SetWorkDir(root)
	}

	if err := l.backend.UpdateCurrentBranch(ctx); err != nil {
		return errors.Wrap(err, errors.GetCode(err), "failed to update current branch")
	}
	return nil
}

func (l *Loader) run(ctx context.Context, gen uint64, stream <-chan git.StreamResult, log zerolog.Logger) {
	defer l.wg.Done()
	start := time.Now()

	var res git.StreamResult
	select {
	case r, ok := <-stream:
		if !ok {
			r.Err = errors.New(errors.CodeInternal, "log stream closed without a result")
		}
		res = r
	case <-ctx.Done():
		l.discard(gen, log, "cancelled before revisions arrived")
		return
	}

	if !l.isCurrent(gen) || ctx.Err() != nil {
		l.discard(gen, log, "revisions arrived after cancellation")
		return
	}

	if res.Err != nil {
		if errors.HasCode(res.Err, errors.CodeCanceled) {
			l.discard(gen, log, "log query cancelled")
			return
		}
		// A repository without commits makes git log fail; load it as empty.
		log.Warn().Err(res.Err).Msg("log query failed, loading empty history")
		res.Output = nil
	}

	records := commit.Split(res.Output)
	log.Info().Int("records", len(records)).Msg("revisions received")
	l.notify(func(li Listener) { li.LoadingStarted(len(records)) })

	wip := l.computeWip(ctx, log)
	index := l.loadReferences(ctx, log)

	l.mu.Lock()
	if gen != l.generation || !l.locked {
		l.mu.Unlock()
		l.discard(gen, log, "cycle cancelled before population")
		return
	}
	if err := l.cache.Setup(wip, records); err != nil {
		log.Warn().Err(err).Msg("skipped malformed records")
	}
	l.cache.ReplaceReferences(index)
	l.cache.SetConfigurationDone()
	l.locked = false
	l.cancel()
	l.cancel = nil
	l.mu.Unlock()

	log.Info().Dur("took", time.Since(start)).Msg("repository loaded")
	l.notify(func(li Listener) { li.LoadingFinished() })
}

// Cancel aborts the running cycle, if any. The loader is released
// immediately and a late result is discarded.
func (l *Loader) Cancel() {
	l.mu.Lock()
	if !l.locked {
		l.mu.Unlock()
		return
	}
	l.cancel()
	l.cancel = nil
	l.locked = false
	l.generation++
	l.mu.Unlock()

	l.log.Info().Msg("load cancelled")
	l.notify(func(li Listener) { li.LoadingCancelled() })
}

// Wait blocks until background work of every dispatched cycle has ended,
// including cycles whose results are being discarded.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// IsLoading reports whether a cycle holds the loader.
func (l *Loader) IsLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.locked
}

// UpdateWipRevision recomputes the WIP row without reloading history. It
// does not take the cycle lock. It returns false, and leaves the cache
// alone, when HEAD cannot be resolved or the cache is empty.
func (l *Loader) UpdateWipRevision(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Wrap(err, errors.CodeCanceled, "wip update cancelled")
	}

	wip := l.computeWip(ctx, l.log)
	if !wip.Valid {
		l.log.Debug().Msg("HEAD not resolved, wip update skipped")
		return false, nil
	}

	updated := l.cache.UpdateWipCommit(wip)
	l.log.Debug().Bool("updated", updated).Bool("changes", wip.HasChanges()).Msg("wip revision updated")
	return updated, nil
}

func (l *Loader) release(gen uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if gen == l.generation && l.locked {
		l.locked = false
		l.cancel()
		l.cancel = nil
	}
}

func (l *Loader) isCurrent(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return gen == l.generation && l.locked
}

// discard drops a cycle's result. If the cycle still holds the lock (its
// context ended without Cancel), the lock is released here.
func (l *Loader) discard(gen uint64, log zerolog.Logger, reason string) {
	l.release(gen)
	err := errors.New(errors.CodeCanceled, reason)
	log.Info().Err(err).Msg("load result discarded")
}

func (l *Loader) notify(fn func(Listener)) {
	for _, li := range l.listeners {
		fn(li)
	}
}
