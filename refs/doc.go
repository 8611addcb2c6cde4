// Package refs indexes branch and tag references by commit SHA.
//
// The Index maps a SHA to every reference pointing at it and records, for
// each local branch, how far it is ahead of and behind the default branch and
// its remote tracking branch. The package also parses the output of the git
// queries that feed it: `git show-ref -d` and
// `git rev-list --left-right --count`.
package refs
