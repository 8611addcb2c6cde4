package loader

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/git"
)

// computeWip resolves HEAD and collects the working tree state. The
// returned info is invalid when HEAD does not resolve.
func (l *Loader) computeWip(ctx context.Context, log zerolog.Logger) commit.WipInfo {
	res := l.backend.Run(ctx, "rev-parse", "--revs-only", git.DetachedHead)
	head := strings.TrimSpace(res.Output)
	if !res.Success || head == "" {
		log.Debug().Err(res.Err).Msg("HEAD did not resolve")
		return commit.WipInfo{}
	}

	info := commit.WipInfo{ParentSHA: head, Valid: true}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info.DiffIndex = l.query(gctx, log, "diff-index", head)
		return nil
	})
	g.Go(func() error {
		info.DiffIndexCached = l.query(gctx, log, "diff-index", "--cached", head)
		return nil
	})
	g.Go(func() error {
		info.Untracked = splitLines(l.query(gctx, log, untrackedArgs(l.backend)...))
		return nil
	})
	_ = g.Wait()

	return info
}

// untrackedArgs lists untracked files honoring the standard ignore files and
// the repository's info/exclude.
func untrackedArgs(b Backend) []string {
	args := []string{"ls-files", "--others", "--exclude-standard"}
	if b.FileExists(git.InfoExcludePath) {
		args = append(args, "--exclude-from="+git.InfoExcludePath)
	}
	return args
}

// query runs a best-effort query; failures yield empty output.
func (l *Loader) query(ctx context.Context, log zerolog.Logger, args ...string) string {
	res := l.backend.Run(ctx, args...)
	if !res.Success {
		log.Warn().Err(res.Err).Strs("args", args).Msg("query failed")
		return ""
	}
	return res.Output
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
