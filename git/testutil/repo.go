// Package testutil provides test helpers for revcache: hand-built log
// output and real on-disk repositories created with go-git.
package testutil

import (
	"os"
	osexec "os/exec"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// RequireGit skips the test when the git CLI is not installed.
func RequireGit(t testing.TB) {
	t.Helper()
	if _, err := osexec.LookPath("git"); err != nil {
		t.Skip("git CLI not available")
	}
}

// InitRepo initializes a non-bare repository in dir with go-git.
//
// Example:
//
//	repo, err := testutil.InitRepo(t.TempDir())
//	if err != nil {
//	    t.Fatal(err)
//	}
func InitRepo(dir string) (*gogit.Repository, error) {
	//nolint:wrapcheck // Test utility - errors from go-git are transparent
	return gogit.PlainInit(dir, false)
}

// WriteFile writes content to path relative to the repository root,
// creating parent directories.
func WriteFile(root, path, content string) error {
	full := filepath.Join(root, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		//nolint:wrapcheck // Test utility - simple file operation error
		return err
	}
	//nolint:wrapcheck // Test utility - simple file operation error
	return os.WriteFile(full, []byte(content), 0o644)
}

// CommitFile writes a file, stages it and commits it with the test author.
// It returns the new commit SHA.
func CommitFile(repo *gogit.Repository, root, path, content, message string) (string, error) {
	if err := WriteFile(root, path, content); err != nil {
		return "", err
	}

	wt, err := repo.Worktree()
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from go-git are transparent
		return "", err
	}
	if _, err := wt.Add(path); err != nil {
		//nolint:wrapcheck // Test utility - errors from go-git are transparent
		return "", err
	}

	hash, err := wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  TestAuthor,
			Email: TestEmail,
			When:  time.Unix(TestTimestamp, 0),
		},
	})
	if err != nil {
		//nolint:wrapcheck // Test utility - errors from go-git are transparent
		return "", err
	}
	return hash.String(), nil
}
