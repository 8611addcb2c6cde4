package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/git/testutil"
)

func TestIntegrationQueries(t *testing.T) {
	testutil.RequireGit(t)

	dir := t.TempDir()
	repo, err := testutil.InitRepo(dir)
	require.NoError(t, err)
	rootSHA, err := testutil.CommitFile(repo, dir, "README.md", "# readme\n", testutil.TestInitialCommit)
	require.NoError(t, err)
	childSHA, err := testutil.CommitFile(repo, dir, "main.go", "package main\n", testutil.TestSecondCommit)
	require.NoError(t, err)

	r := New(dir)
	ctx := context.Background()

	res := r.Run(ctx, "rev-parse", "--revs-only", "HEAD")
	require.True(t, res.Success)
	assert.Equal(t, childSHA, strings.TrimSpace(res.Output))

	require.NoError(t, r.UpdateCurrentBranch(ctx))
	assert.NotEmpty(t, r.CurrentBranch())
	assert.NotEqual(t, DetachedHead, r.CurrentBranch())

	out := <-r.Stream(ctx, commit.LogArgs("--all", 0)...)
	require.NoError(t, out.Err)

	records := commit.Split(out.Output)
	require.Len(t, records, 2)

	child, err := commit.Parse(records[0])
	require.NoError(t, err)
	assert.Equal(t, childSHA, child.SHA)
	assert.Equal(t, []string{rootSHA}, child.Parents)
	assert.Equal(t, testutil.TestSecondCommit, child.ShortLog)
	assert.Equal(t, testutil.TestAuthor, child.Author.Name)
	assert.Equal(t, testutil.TestTimestamp, child.AuthoredAt)

	root, err := commit.Parse(records[1])
	require.NoError(t, err)
	assert.Equal(t, rootSHA, root.SHA)
	assert.Empty(t, root.Parents)
}

func TestIntegrationNotRepository(t *testing.T) {
	testutil.RequireGit(t)

	r := New(t.TempDir())
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(r.WorkDir()))

	res := r.Run(context.Background(), "rev-parse", "--show-cdup")
	assert.False(t, res.Success)
	assert.True(t, errors.HasCode(res.Err, errors.CodeNotRepository))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	_, err := testutil.InitRepo(dir)
	require.NoError(t, err)

	sub := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	root, err := Discover(sub)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	root, err = GoGitResolver{}.ResolveRoot(context.Background(), sub)
	require.NoError(t, err)
	got, err = filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDiscoverNotRepository(t *testing.T) {
	_, err := Discover(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotRepository))
}

func TestGoGitResolverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GoGitResolver{}.ResolveRoot(ctx, t.TempDir())
	assert.True(t, errors.HasCode(err, errors.CodeCanceled))
}
