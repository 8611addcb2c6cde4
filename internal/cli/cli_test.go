package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/git/testutil"
	"github.com/jmgilman/go/revcache/internal/cli"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errOut bytes.Buffer
	code := cli.Execute(context.Background(), append(args, "--log-level", "disabled"), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

type fixture struct {
	dir   string
	root  string
	child string
}

// newFixture creates a repository with two commits on master, a feature
// branch and a lightweight tag on the root commit.
func newFixture(t *testing.T) fixture {
	t.Helper()
	testutil.RequireGit(t)

	dir := t.TempDir()
	repo, err := testutil.InitRepo(dir)
	require.NoError(t, err)

	root, err := testutil.CommitFile(repo, dir, "README.md", "hello\n", testutil.TestInitialCommit)
	require.NoError(t, err)
	child, err := testutil.CommitFile(repo, dir, "main.go", "package main\n", testutil.TestSecondCommit)
	require.NoError(t, err)

	require.NoError(t, repo.Storer.SetReference(
		plumbing.NewHashReference(plumbing.NewBranchReferenceName("feature"), plumbing.NewHash(child)),
	))
	_, err = repo.CreateTag("v1.0", plumbing.NewHash(root), nil)
	require.NoError(t, err)

	return fixture{dir: dir, root: root, child: child}
}

func TestLogCommand(t *testing.T) {
	f := newFixture(t)

	res := run(t, "log", "--repo", f.dir)
	require.Equal(t, 0, res.code, res.stderr)

	assert.Contains(t, res.stdout, f.child[:8])
	assert.Contains(t, res.stdout, f.root[:8])
	assert.Contains(t, res.stdout, testutil.TestSecondCommit)
	assert.Contains(t, res.stdout, "feature")
	assert.Contains(t, res.stdout, "tag: v1.0")
}

func TestLogCommandJSON(t *testing.T) {
	f := newFixture(t)

	res := run(t, "log", "--repo", f.dir, "--all", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var rows []struct {
		Row   int      `json:"row"`
		SHA   string   `json:"sha"`
		Lanes []string `json:"lanes"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, commit.ZeroSHA, rows[0].SHA)
	assert.Equal(t, f.child, rows[1].SHA)
	assert.Equal(t, f.root, rows[2].SHA)
	assert.Equal(t, []string{"initial"}, rows[2].Lanes)
}

func TestLogCommandMaxCount(t *testing.T) {
	f := newFixture(t)

	res := run(t, "log", "--repo", f.dir, "-n", "1", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var rows []struct {
		SHA      string `json:"sha"`
		Boundary bool   `json:"boundary"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, commit.ZeroSHA, rows[0].SHA)
	assert.Equal(t, f.child, rows[1].SHA)
	assert.False(t, rows[1].Boundary)
	// The parent just past the limit is listed as a boundary row.
	assert.Equal(t, f.root, rows[2].SHA)
	assert.True(t, rows[2].Boundary)
}

func TestShowCommand(t *testing.T) {
	f := newFixture(t)

	res := run(t, "show", f.child[:7], "--repo", f.dir)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, f.child)
	assert.Contains(t, res.stdout, f.root)
	assert.Contains(t, res.stdout, testutil.TestEmail)
}

func TestShowCommandUnknown(t *testing.T) {
	f := newFixture(t)

	res := run(t, "show", "ffffff", "--repo", f.dir, "--json")
	require.Equal(t, 1, res.code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(res.stderr), &resp))
	assert.Equal(t, string(errors.CodeInvalidInput), resp.Code)
}

func TestSearchCommand(t *testing.T) {
	f := newFixture(t)

	res := run(t, "search", "SECOND", "--repo", f.dir, "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var hit struct {
		Row int    `json:"row"`
		SHA string `json:"sha"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &hit))
	assert.Equal(t, 1, hit.Row)
	assert.Equal(t, f.child, hit.SHA)

	res = run(t, "search", "nothing like this", "--repo", f.dir)
	assert.Equal(t, 1, res.code)

	res = run(t, "search", "x", "--field", "bogus", "--repo", f.dir)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown search field")
}

func TestRefsCommand(t *testing.T) {
	f := newFixture(t)

	res := run(t, "refs", "--repo", f.dir, "--all", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var view struct {
		References map[string][]struct {
			Type string `json:"type"`
			Name string `json:"name"`
		} `json:"references"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &view))

	var names []string
	for _, r := range view.References[f.child] {
		names = append(names, r.Type+":"+r.Name)
	}
	assert.ElementsMatch(t, []string{"local:master", "local:feature"}, names)
	require.Len(t, view.References[f.root], 1)
	assert.Equal(t, "v1.0", view.References[f.root][0].Name)
}

func TestRefsCommandType(t *testing.T) {
	f := newFixture(t)

	res := run(t, "refs", "--repo", f.dir, "--all", "--type", "tag", "--json")
	require.Equal(t, 0, res.code, res.stderr)

	var view struct {
		References map[string][]struct {
			Type string `json:"type"`
			Name string `json:"name"`
		} `json:"references"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &view))
	require.Len(t, view.References, 1)
	require.Len(t, view.References[f.root], 1)
	assert.Equal(t, "tag", view.References[f.root][0].Type)
	assert.Equal(t, "v1.0", view.References[f.root][0].Name)

	res = run(t, "refs", "--repo", f.dir, "--type", "bogus")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown reference type")
}

func TestWipCommand(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "README.md"), []byte("changed\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "scratch.txt"), []byte("new\n"), 0o644))

	res := run(t, "wip", "--repo", f.dir)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Local changes")
	assert.Contains(t, res.stdout, "README.md")
	assert.Contains(t, res.stdout, "scratch.txt")
	assert.Contains(t, res.stdout, "(untracked)")
}

func TestNotRepository(t *testing.T) {
	testutil.RequireGit(t)

	res := run(t, "log", "--repo", t.TempDir(), "--json")
	require.Equal(t, 1, res.code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(res.stderr), &resp))
	assert.Equal(t, string(errors.CodeNotRepository), resp.Code)
}

func TestNotRepositoryGoGitResolver(t *testing.T) {
	res := run(t, "log", "--repo", t.TempDir(), "--resolver", "gogit", "--json")
	require.Equal(t, 1, res.code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(res.stderr), &resp))
	assert.Equal(t, string(errors.CodeNotRepository), resp.Code)
}

func TestConfigCommand(t *testing.T) {
	res := run(t, "config", "--repo", "/srv/repo", "--remote", "upstream")
	require.Equal(t, 0, res.code, res.stderr)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &doc))
	assert.Equal(t, "/srv/repo", doc["work_dir"])
	assert.Equal(t, "upstream", doc["remote"])
	assert.Equal(t, map[string]any{"debounce": "250ms"}, doc["watch"])
}

func TestConfigCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_branch: trunk\n"), 0o644))

	res := run(t, "config", "--config", path)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "default_branch: trunk")
}

func TestInvalidConfigurationJSON(t *testing.T) {
	res := run(t, "config", "--resolver", "libgit2", "--json")
	require.Equal(t, 1, res.code)

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(res.stderr), &resp))
	assert.Equal(t, string(errors.CodeInvalidConfig), resp.Code)
	assert.Equal(t, "resolver", resp.Context["key"])
}
