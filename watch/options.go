package watch

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/jmgilman/go/revcache/loader"
)

const defaultDebounce = 250 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before an action runs. Defaults to
// 250ms.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. Defaults to zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(w *Watcher) {
		w.log = log
	}
}

// WithLoadOptions sets the options passed on reload.
func WithLoadOptions(opts loader.LoadOptions) Option {
	return func(w *Watcher) {
		w.loadOpts = opts
	}
}
