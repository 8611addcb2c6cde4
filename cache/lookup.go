package cache

import (
	"iter"
	"strings"

	"github.com/jmgilman/go/revcache/commit"
)

// CommitInfo returns the record with exactly this SHA, or the zero record.
func (c *RevisionCache) CommitInfo(sha string) commit.Record {
	s := c.current()
	row, ok := s.index[sha]
	if !ok {
		return commit.Record{}
	}
	return s.commits[row]
}

// CommitInfoByPrefix returns the only record whose SHA starts with prefix.
// An empty, unknown or ambiguous prefix returns the zero record.
func (c *RevisionCache) CommitInfoByPrefix(prefix string) commit.Record {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return commit.Record{}
	}

	s := c.current()
	if row, ok := s.index[prefix]; ok {
		return s.commits[row]
	}

	match := -1
	for sha, row := range s.index {
		if !strings.HasPrefix(sha, prefix) {
			continue
		}
		if match != -1 {
			return commit.Record{}
		}
		match = row
	}
	return s.at(match)
}

// CommitInfoByField searches field for text, case-insensitively, starting at
// startRow and wrapping around to row 0. A startRow outside the cache starts
// at 0. Empty text matches nothing.
func (c *RevisionCache) CommitInfoByField(field commit.Field, text string, startRow int) commit.Record {
	if text == "" {
		return commit.Record{}
	}

	s := c.current()
	n := len(s.commits)
	if startRow < 0 || startRow >= n {
		startRow = 0
	}

	needle := strings.ToLower(text)
	for i := 0; i < n; i++ {
		rec := s.commits[(startRow+i)%n]
		if strings.Contains(strings.ToLower(rec.Field(field)), needle) {
			return rec
		}
	}
	return commit.Record{}
}

// CommitAt returns the record at row, or the zero record.
func (c *RevisionCache) CommitAt(row int) commit.Record {
	return c.current().at(row)
}

// Row returns the row of sha.
func (c *RevisionCache) Row(sha string) (int, bool) {
	row, ok := c.current().index[sha]
	return row, ok
}

// Count returns the number of rows including the WIP row.
func (c *RevisionCache) Count() int {
	return len(c.current().commits)
}

// Wip returns the WIP row, or the zero record when the cache is empty.
func (c *RevisionCache) Wip() commit.Record {
	return c.current().at(0)
}

// All iterates the rows of the snapshot current at the time of the call.
func (c *RevisionCache) All() iter.Seq2[int, commit.Record] {
	s := c.current()
	return func(yield func(int, commit.Record) bool) {
		for i, rec := range s.commits {
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Stats summarizes the cache.
func (c *RevisionCache) Stats() Stats {
	c.mu.RLock()
	s, x, configured := c.snap, c.refs, c.configured
	st := Stats{
		Commits:    len(s.commits),
		References: x.Len(),
		Branches:   len(x.Branches()),
		Configured: configured,
		LoadedAt:   s.loadedAt,
	}
	c.mu.RUnlock()

	for _, rec := range s.commits {
		if rec.IsMerge() {
			st.Merges++
		}
		if rec.Boundary {
			st.Boundary++
		}
	}
	return st
}
