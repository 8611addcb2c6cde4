package cache

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/lane"
	"github.com/jmgilman/go/revcache/refs"
)

var (
	_ Reader = (*RevisionCache)(nil)
	_ Writer = (*RevisionCache)(nil)
)

// RevisionCache is the commit and reference store of one repository.
// It is safe for concurrent use.
type RevisionCache struct {
	mu         sync.RWMutex
	snap       *snapshot
	refs       *refs.Index
	configured bool

	log zerolog.Logger
	now func() time.Time
}

// New returns an empty, unconfigured cache.
func New(opts ...Option) *RevisionCache {
	c := &RevisionCache{
		snap: emptySnapshot,
		refs: refs.NewIndex(),
		log:  zerolog.Nop(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BeginLoad marks the cache as not ready.
func (c *RevisionCache) BeginLoad() {
	c.mu.Lock()
	c.configured = false
	c.mu.Unlock()
}

// SetConfigurationDone marks the cache as ready.
func (c *RevisionCache) SetConfigurationDone() {
	c.mu.Lock()
	c.configured = true
	c.mu.Unlock()
}

// IsConfigured reports whether the last load finished.
func (c *RevisionCache) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.configured
}

// Setup replaces the cache contents with the WIP row followed by records in
// the given order, and clears the reference index. If no record parses the
// cache becomes empty and has no WIP row.
//
// Malformed records are skipped. The new contents are published either way;
// the returned error lists what was skipped.
func (c *RevisionCache) Setup(wip commit.WipInfo, records []string) error {
	now := c.now()

	parsed := make([]commit.Record, 0, len(records)+1)
	index := make(map[string]int, len(records)+1)
	var errs []error

	parsed = append(parsed, commit.NewWip(wip, now))
	index[commit.ZeroSHA] = 0

	for i, raw := range records {
		rec, err := commit.Parse(raw)
		if err != nil {
			errs = append(errs, errors.WithContext(err, "record_index", i))
			continue
		}
		if _, dup := index[rec.SHA]; dup {
			errs = append(errs, errors.WithContext(
				errors.New(errors.CodeParseFailed, "duplicate commit in log output"),
				"sha", rec.SHA,
			))
			continue
		}
		index[rec.SHA] = len(parsed)
		parsed = append(parsed, rec)
	}

	next := emptySnapshot
	if len(parsed) > 1 {
		assignLanes(parsed)
		next = &snapshot{commits: parsed, index: index, loadedAt: now}
	}

	c.mu.Lock()
	c.snap = next
	c.refs = refs.NewIndex()
	c.mu.Unlock()

	c.log.Debug().
		Int("records", len(records)).
		Int("rows", len(next.commits)).
		Int("skipped", len(errs)).
		Msg("revision cache set up")

	if len(errs) > 0 {
		return errors.WithContext(
			errors.Wrapf(errors.Join(errs...), errors.CodeParseFailed, "skipped %d malformed records", len(errs)),
			"skipped", len(errs),
		)
	}
	return nil
}

// UpdateWipCommit replaces row 0 with a WIP row built from wip. Every other
// row and the SHA index are left untouched. It returns false when the cache
// is empty.
func (c *RevisionCache) UpdateWipCommit(wip commit.WipInfo) bool {
	rec := commit.NewWip(wip, c.now())
	rec.Lanes = lane.NewBuilder().Next(rec.SHA, rec.Parents, false)

	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.snap
	if len(cur.commits) == 0 {
		return false
	}

	commits := make([]commit.Record, len(cur.commits))
	copy(commits, cur.commits)
	commits[0] = rec

	c.snap = &snapshot{commits: commits, index: cur.index, loadedAt: cur.loadedAt}
	return true
}

func assignLanes(rows []commit.Record) {
	b := lane.NewBuilder()
	for i := range rows {
		rows[i].Lanes = b.Next(rows[i].SHA, rows[i].Parents, rows[i].Boundary)
	}
}

func (c *RevisionCache) current() *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
