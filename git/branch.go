package git

import (
	"context"
	"strings"

	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/refs"
)

// DetachedHead is the branch name reported when HEAD is not on a branch.
const DetachedHead = "HEAD"

// FallbackDefaultBranch is used when the remote default cannot be detected.
const FallbackDefaultBranch = "master"

// CurrentBranch returns the branch recorded by the last UpdateCurrentBranch.
func (r *Repository) CurrentBranch() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.branch
}

// UpdateCurrentBranch re-reads the checked out branch. A detached HEAD is
// recorded as DetachedHead.
func (r *Repository) UpdateCurrentBranch(ctx context.Context) error {
	branch := DetachedHead

	out, err := r.Query(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if err == nil {
		branch = trimOutput(out)
	} else if errors.HasCode(err, errors.CodeCanceled) || errors.HasCode(err, errors.CodeNotRepository) {
		return errors.Wrap(err, errors.GetCode(err), "failed to read current branch")
	}

	r.mu.Lock()
	r.branch = branch
	r.mu.Unlock()

	r.log.Debug().Str("branch", branch).Msg("current branch updated")
	return nil
}

// Distance counts the commits branch is behind and ahead of base.
func (r *Repository) Distance(ctx context.Context, base, branch string) (behind, ahead uint, err error) {
	out, err := r.Query(ctx, "rev-list", "--left-right", "--count", base+"..."+branch)
	if err != nil {
		return 0, 0, err
	}

	behind, ahead, err = refs.ParseDistance(out)
	if err != nil {
		return 0, 0, errors.WithContextMap(
			errors.Wrap(err, errors.CodeParseFailed, "failed to parse branch distance"),
			map[string]interface{}{"base": base, "branch": branch},
		)
	}
	return behind, ahead, nil
}

// DefaultBranch detects the default branch of remote: first from the
// remote's HEAD symbolic ref, then by probing main and master. It falls back
// to FallbackDefaultBranch.
func (r *Repository) DefaultBranch(ctx context.Context, remote string) string {
	out, err := r.Query(ctx, "symbolic-ref", "--short", "refs/remotes/"+remote+"/HEAD")
	if err == nil {
		name := trimOutput(out)
		if name != "" {
			return strings.TrimPrefix(name, remote+"/")
		}
	}

	for _, name := range []string{"main", "master"} {
		if _, err := r.Query(ctx, "rev-parse", "--verify", "-q", remote+"/"+name); err == nil {
			return name
		}
	}

	return FallbackDefaultBranch
}
