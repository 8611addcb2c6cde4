package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/loader"
)

// Target is what a Watcher drives. loader.Loader implements it.
type Target interface {
	Load(ctx context.Context, opts loader.LoadOptions) error
	UpdateWipRevision(ctx context.Context) (bool, error)
}

var _ Target = (*loader.Loader)(nil)

// Watcher turns filesystem events under a repository root into cache
// refreshes.
type Watcher struct {
	root     string
	target   Target
	fsw      *fsnotify.Watcher
	debounce time.Duration
	log      zerolog.Logger
	loadOpts loader.LoadOptions

	closeOnce sync.Once
}

// New creates a Watcher for the repository at root and registers watches on
// its directories.
func New(root string, target Target, opts ...Option) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to create filesystem watcher")
	}

	w := &Watcher{
		root:     root,
		target:   target,
		fsw:      fsw,
		debounce: defaultDebounce,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.addTree(root); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return w, nil
}

// WatchedPaths returns the directories currently watched.
func (w *Watcher) WatchedPaths() []string {
	return w.fsw.WatchList()
}

// Close releases the underlying watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fsw.Close()
	})
	return err
}

// Run processes events until ctx is done. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	w.log.Info().Str("root", w.root).Int("dirs", len(w.fsw.WatchList())).Msg("watching repository")
	return w.loop(ctx, w.fsw.Events, w.fsw.Errors)
}

func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	var (
		pending Action
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	arm := func() {
		if timer == nil {
			timer = time.NewTimer(w.debounce)
		} else {
			timer.Reset(w.debounce)
		}
		fire = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			action := w.handle(ev)
			if action > pending {
				pending = action
			}
			if action != ActionNone {
				arm()
			}

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watcher error")

		case <-fire:
			fire = nil
			if w.apply(ctx, pending) {
				pending = ActionNone
			} else {
				arm()
			}
		}
	}
}

// handle classifies an event and tracks new directories.
func (w *Watcher) handle(ev fsnotify.Event) Action {
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return ActionNone
	}

	if ev.Has(fsnotify.Create) && watchDir(rel) {
		if err := w.addTree(ev.Name); err != nil {
			w.log.Debug().Err(err).Str("path", ev.Name).Msg("failed to watch new path")
		}
	}

	action := Classify(rel)
	if action != ActionNone {
		w.log.Trace().Str("path", rel).Str("op", ev.Op.String()).Stringer("action", action).Msg("event")
	}
	return action
}

// apply runs action. It returns false when the action should be retried
// after another debounce window.
func (w *Watcher) apply(ctx context.Context, action Action) bool {
	switch action {
	case ActionReload:
		err := w.target.Load(ctx, w.loadOpts)
		if errors.HasCode(err, errors.CodeLoadInProgress) {
			w.log.Debug().Msg("load in progress, reload deferred")
			return false
		}
		if err != nil {
			w.log.Error().Err(err).Msg("reload failed")
			return true
		}
		w.log.Info().Msg("reload started")

	case ActionRefreshWip:
		updated, err := w.target.UpdateWipRevision(ctx)
		if err != nil {
			w.log.Error().Err(err).Msg("wip refresh failed")
			return true
		}
		w.log.Debug().Bool("updated", updated).Msg("wip refreshed")
	}
	return true
}

// addTree watches path and every directory below it that watchDir accepts.
func (w *Watcher) addTree(path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == path {
				return errors.WithContext(
					errors.Wrap(err, errors.CodeInvalidInput, "failed to walk watch root"),
					"path", p,
				)
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(w.root, p)
		if relErr != nil || !watchDir(rel) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			w.log.Debug().Err(err).Str("path", p).Msg("failed to add watch")
		}
		return nil
	})
}
