package git

import (
	"context"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/exec"
)

func TestUpdateCurrentBranch(t *testing.T) {
	mock, _ := scriptedExecutor(func(args []string) (*exec.Result, error) {
		return ok("feature/login\n")
	})

	repo := New("/work", WithExecutor(mock), WithFilesystem(memfs.New()))
	require.NoError(t, repo.UpdateCurrentBranch(context.Background()))
	assert.Equal(t, "feature/login", repo.CurrentBranch())
}

func TestUpdateCurrentBranchDetached(t *testing.T) {
	mock, _ := scriptedExecutor(func(args []string) (*exec.Result, error) {
		return fail(1, "", args)
	})

	repo := New("/work", WithExecutor(mock), WithFilesystem(memfs.New()))
	require.NoError(t, repo.UpdateCurrentBranch(context.Background()))
	assert.Equal(t, DetachedHead, repo.CurrentBranch())
}

func TestUpdateCurrentBranchNotRepository(t *testing.T) {
	mock, _ := scriptedExecutor(func(args []string) (*exec.Result, error) {
		return fail(128, "fatal: not a git repository", args)
	})

	repo := New("/work", WithExecutor(mock), WithFilesystem(memfs.New()))
	err := repo.UpdateCurrentBranch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotRepository))
}

func TestDistance(t *testing.T) {
	var got []string
	mock, _ := scriptedExecutor(func(args []string) (*exec.Result, error) {
		got = args
		return ok("2\t5\n")
	})

	repo := New("/work", WithExecutor(mock), WithFilesystem(memfs.New()))
	behind, ahead, err := repo.Distance(context.Background(), "origin/master", "feature")

	require.NoError(t, err)
	assert.Equal(t, uint(2), behind)
	assert.Equal(t, uint(5), ahead)
	assert.Equal(t, []string{"git", "rev-list", "--left-right", "--count", "origin/master...feature"}, got)
}

func TestDistanceFailures(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		mock, _ := scriptedExecutor(func(args []string) (*exec.Result, error) {
			return fail(128, "fatal: ambiguous argument 'origin/feature...feature'", args)
		})
		repo := New("/work", WithExecutor(mock), WithFilesystem(memfs.New()))

		_, _, err := repo.Distance(context.Background(), "origin/feature", "feature")
		assert.True(t, errors.HasCode(err, errors.CodeQueryFailed))
	})

	t.Run("parse", func(t *testing.T) {
		mock, _ := scriptedExecutor(func(args []string) (*exec.Result, error) {
			return ok("unexpected")
		})
		repo := New("/work", WithExecutor(mock), WithFilesystem(memfs.New()))

		_, _, err := repo.Distance(context.Background(), "a", "b")
		assert.True(t, errors.HasCode(err, errors.CodeParseFailed))
	})
}

func TestDefaultBranch(t *testing.T) {
	tests := []struct {
		name string
		run  func(args []string) (*exec.Result, error)
		want string
	}{
		{
			name: "remote head",
			run: func(args []string) (*exec.Result, error) {
				return ok("origin/develop\n")
			},
			want: "develop",
		},
		{
			name: "probe main",
			run: func(args []string) (*exec.Result, error) {
				if args[1] == "rev-parse" && strings.HasSuffix(args[len(args)-1], "/main") {
					return ok("abc\n")
				}
				return fail(1, "", args)
			},
			want: "main",
		},
		{
			name: "fallback",
			run: func(args []string) (*exec.Result, error) {
				return fail(1, "", args)
			},
			want: FallbackDefaultBranch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, _ := scriptedExecutor(tt.run)
			repo := New("/work", WithExecutor(mock), WithFilesystem(memfs.New()))
			assert.Equal(t, tt.want, repo.DefaultBranch(context.Background(), "origin"))
		})
	}
}
