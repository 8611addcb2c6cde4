package loader

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/revcache/refs"
)

// loadReferences builds a fresh reference index and local branch distances.
// A failed show-ref yields an empty index.
func (l *Loader) loadReferences(ctx context.Context, log zerolog.Logger) *refs.Index {
	index := refs.NewIndex()

	var branches []string
	out := l.query(ctx, log, "show-ref", "-d")
	for _, e := range refs.ParseShowRef(out) {
		if !index.Insert(e.SHA, e.Ref) {
			log.Debug().Str("sha", e.SHA).Str("ref", e.Ref.Name).Msg("duplicate reference skipped")
			continue
		}
		if e.Ref.Type == refs.LocalBranch {
			branches = append(branches, e.Ref.Name)
		}
	}
	log.Debug().Int("references", index.Len()).Int("branches", len(branches)).Msg("references loaded")

	if len(branches) == 0 {
		return index
	}

	base := l.defaultBranch
	if base == "" {
		base = l.backend.DefaultBranch(ctx, l.remote)
	}
	base = l.remote + "/" + base

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.workers)
	for _, branch := range branches {
		g.Go(func() error {
			d, ok := l.distances(gctx, log, base, branch)
			if ok {
				mu.Lock()
				index.SetDistances(branch, d)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return index
}

// distances compares branch with the default branch and with its own
// remote counterpart. It reports false when neither comparison succeeded.
func (l *Loader) distances(ctx context.Context, log zerolog.Logger, base, branch string) (refs.Distances, bool) {
	var d refs.Distances
	found := false

	behind, ahead, err := l.backend.Distance(ctx, base, branch)
	if err == nil {
		d.BehindMaster, d.AheadMaster = behind, ahead
		found = true
	} else {
		log.Debug().Err(err).Str("branch", branch).Str("base", base).Msg("no distance to default branch")
	}

	behind, ahead, err = l.backend.Distance(ctx, l.remote+"/"+branch, branch)
	if err == nil {
		d.BehindOrigin, d.AheadOrigin = behind, ahead
		found = true
	} else {
		log.Debug().Err(err).Str("branch", branch).Msg("no distance to upstream")
	}

	return d, found
}
