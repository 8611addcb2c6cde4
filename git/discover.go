package git

import (
	"context"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	"github.com/jmgilman/go/revcache/errors"
)

// Discover returns the root of the working tree containing dir, searching
// parent directories the way git does. Bare repositories have no working
// tree and are rejected.
func Discover(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidInput, "failed to resolve directory")
	}

	repo, err := gogit.PlainOpenWithOptions(abs, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", errors.WithContext(classifyGoGitError(err), "dir", abs)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", errors.WithContext(
			errors.Wrap(err, errors.CodeNotRepository, "repository has no working tree"),
			"dir", abs,
		)
	}

	return wt.Filesystem.Root(), nil
}

// GoGitResolver resolves repository roots with go-git instead of the git CLI.
type GoGitResolver struct{}

// ResolveRoot implements the loader's root resolver.
func (GoGitResolver) ResolveRoot(ctx context.Context, dir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(err, errors.CodeCanceled, "root resolution cancelled")
	}
	return Discover(dir)
}

func classifyGoGitError(err error) error {
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return errors.Wrap(err, errors.CodeNotRepository, "not a git repository")
	}
	return errors.Wrap(err, errors.CodeQueryFailed, "failed to open repository")
}
