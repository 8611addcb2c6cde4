// Package commit defines the parsed commit record and its parsers.
//
// Records come from one `git log -z` call whose format places, per commit:
//
//	[log size N]
//	<mark><sha>X<parent> <parent>...
//	<committer name><<committer email>>
//	<author name><<author email>>
//	<author timestamp>
//	<subject>
//	<body...>
//
// Records are separated by NUL bytes. The mark is '-' for boundary commits.
//
// The synthetic working-in-progress record (SHA ZeroSHA) is built from a
// WipInfo describing HEAD and the output of the diff-index queries.
package commit
