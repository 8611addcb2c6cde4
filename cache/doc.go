// Package cache provides the in-memory revision cache of a repository.
//
// The RevisionCache holds the ordered commit rows of the last load, the
// working-in-progress (WIP) row, a SHA index and the reference index. It is
// split into two views:
//
//   - Reader: lookups and iteration, handed to every consumer.
//   - Writer: Setup, the WIP update path and reference insertion, used by the
//     loader only.
//
// # Snapshots
//
// Rows and the SHA index live in an immutable snapshot. Setup parses and
// indexes outside the lock, then swaps the snapshot pointer, so a reader
// running during a load sees either the previous rows or the new ones and
// never a partial set:
//
//	c := cache.New()
//	if err := c.Setup(wip, commit.Split(buf)); err != nil {
//		log.Warn().Err(err).Msg("some records were skipped")
//	}
//	c.SetConfigurationDone()
//
//	rec := c.CommitInfo(sha)
//	if !rec.IsValid() {
//		// not in the cache
//	}
//
// Lookups never fail: a miss returns the zero commit.Record.
//
// # Readiness
//
// IsConfigured is false between BeginLoad and SetConfigurationDone. Row
// indexes obtained before a reload are not stable across it.
package cache
