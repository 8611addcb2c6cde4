package cli

import (
	"context"
	"path/filepath"

	"github.com/jmgilman/go/revcache/cache"
	"github.com/jmgilman/go/revcache/config"
	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/git"
	"github.com/jmgilman/go/revcache/loader"
)

// session wires a repository, cache and loader from the configuration.
type session struct {
	repo   *git.Repository
	cache  *cache.RevisionCache
	loader *loader.Loader
}

func (a *app) openSession(listeners ...loader.Listener) (*session, error) {
	workDir, err := filepath.Abs(a.cfg.WorkDir)
	if err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to resolve working directory"),
			"work_dir", a.cfg.WorkDir,
		)
	}

	repo := git.New(workDir,
		git.WithBinary(a.cfg.GitBinary),
		git.WithLogger(a.log.With().Str("component", "git").Logger()),
		git.WithQueryTimeout(a.cfg.QueryTimeout),
	)
	c := cache.New(cache.WithLogger(a.log.With().Str("component", "cache").Logger()))

	opts := []loader.Option{
		loader.WithLogger(a.log.With().Str("component", "loader").Logger()),
		loader.WithRemote(a.cfg.Remote),
		loader.WithDefaultBranch(a.cfg.DefaultBranch),
		loader.WithDistanceWorkers(a.cfg.DistanceWorkers),
	}
	if a.cfg.Resolver == config.ResolverGoGit {
		opts = append(opts, loader.WithResolver(git.GoGitResolver{}))
	}
	for _, l := range listeners {
		opts = append(opts, loader.WithListener(l))
	}

	return &session{
		repo:   repo,
		cache:  c,
		loader: loader.New(repo, c, opts...),
	}, nil
}

func (a *app) loadOptions() loader.LoadOptions {
	return loader.LoadOptions{ShowAll: a.cfg.ShowAll, MaxCount: a.cfg.MaxCount}
}

// load runs one cycle to completion.
func (s *session) load(ctx context.Context, opts loader.LoadOptions) error {
	if err := s.loader.Load(ctx, opts); err != nil {
		return err
	}
	s.loader.Wait()

	if !s.cache.IsConfigured() {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.CodeCanceled, "load cancelled")
		}
		return errors.New(errors.CodeCanceled, "load did not complete")
	}
	return nil
}
