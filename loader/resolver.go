package loader

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/revcache/errors"
)

// backendResolver resolves the root with `git rev-parse --show-cdup`, run
// in the backend's working directory.
type backendResolver struct {
	backend Backend
}

func (r backendResolver) ResolveRoot(ctx context.Context, dir string) (string, error) {
	res := r.backend.Run(ctx, "rev-parse", "--show-cdup")
	if !res.Success {
		if res.Err != nil {
			return "", res.Err
		}
		return "", errors.New(errors.CodeNotRepository, "rev-parse --show-cdup failed")
	}

	root, err := filepath.Abs(filepath.Join(dir, strings.TrimSpace(res.Output)))
	if err != nil {
		return "", errors.Wrap(err, errors.CodeInvalidInput, "failed to resolve repository root")
	}
	return root, nil
}
