// Package git is the repository collaborator of the revision loader.
//
// Repository runs read-only git queries through the git CLI (via the exec
// package) in a configurable working directory and tracks the current
// branch. It offers the capabilities the loader depends on:
//
//   - Run: a synchronous query returning {Success, Output}.
//   - Stream: an asynchronous, cancellable query delivering the whole stdout
//     buffer once the process exits. Used for the NUL-separated `git log -z`.
//   - CurrentBranch and UpdateCurrentBranch.
//   - Distance: ahead/behind counts between two revisions.
//
// Root discovery is available through go-git as well (Discover and
// GoGitResolver) for callers that prefer not to spawn a process.
//
// # Usage
//
//	repo := git.New("/path/to/work/dir", git.WithLogger(log))
//	if err := repo.UpdateCurrentBranch(ctx); err != nil {
//		return err
//	}
//	res := repo.Run(ctx, "rev-parse", "--revs-only", "HEAD")
//	if res.Success {
//		head := strings.TrimSpace(res.Output)
//	}
//
//	for r := range repo.Stream(ctx, commit.LogArgs("--all", 0)...) {
//		if r.Err != nil {
//			return r.Err
//		}
//		records := commit.Split(r.Output)
//	}
//
// # Filesystem
//
// Working-tree probes (such as checking for .git/info/exclude) go through a
// go-billy filesystem rooted at the working directory. Tests can supply a
// memfs instead.
//
// # Errors
//
// Failed queries are classified into revcache error codes: CANCELED and
// TIMEOUT from the process context, NOT_A_REPOSITORY from git's stderr, and
// QUERY_FAILED otherwise. The exec.ExecError stays in the chain.
package git
