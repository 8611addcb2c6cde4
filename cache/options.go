package cache

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a RevisionCache.
type Option func(*RevisionCache)

// WithLogger sets the logger. Defaults to zerolog.Nop().
func WithLogger(log zerolog.Logger) Option {
	return func(c *RevisionCache) {
		c.log = log
	}
}

// WithClock sets the time source used to stamp the WIP row.
func WithClock(now func() time.Time) Option {
	return func(c *RevisionCache) {
		c.now = now
	}
}
