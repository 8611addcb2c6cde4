package testutil

import (
	"strconv"
	"strings"
)

// Test user information used across all test helpers.
const (
	// TestAuthor is the default author name for test commits.
	TestAuthor = "Test User"

	// TestEmail is the default email for test commits.
	TestEmail = "test@example.com"

	// TestAuthor2 is an alternate author name for multi-user scenarios.
	TestAuthor2 = "Another User"

	// TestEmail2 is an alternate email for multi-user scenarios.
	TestEmail2 = "another@example.com"
)

// Fixed SHAs for hand-built log output.
const (
	RootSHA    = "1111111111111111111111111111111111111111"
	ChildSHA   = "2222222222222222222222222222222222222222"
	FeatureSHA = "3333333333333333333333333333333333333333"
	MergeSHA   = "4444444444444444444444444444444444444444"
	OldSHA     = "5555555555555555555555555555555555555555"
)

// TestTimestamp is the author timestamp of hand-built records.
const TestTimestamp int64 = 1700000000

// Test commit messages.
const (
	// TestInitialCommit is the subject of root commits.
	TestInitialCommit = "init"

	// TestSecondCommit is the subject of the first child commit.
	TestSecondCommit = "second commit"

	// TestFeatureCommit is a message for feature commits.
	TestFeatureCommit = "Add new feature"

	// TestMultilineBody is a multi-line commit body.
	TestMultilineBody = `This commit adds a complex feature that required
multiple changes across several files.

- Added new functionality
- Updated documentation`
)

// RawCommit describes one record of `git log -z` output in the format the
// commit parser expects.
type RawCommit struct {
	SHA       string
	Parents   []string
	Boundary  bool
	Committer string
	Author    string
	Timestamp int64
	Subject   string
	Body      string

	// LogSize prefixes the record with a "log size N" line as --log-size does.
	LogSize bool
}

// NewRawCommit returns a record with test identities and timestamp.
func NewRawCommit(sha, subject string, parents ...string) RawCommit {
	return RawCommit{
		SHA:       sha,
		Parents:   parents,
		Committer: TestAuthor + "<" + TestEmail + ">",
		Author:    TestAuthor + "<" + TestEmail + ">",
		Timestamp: TestTimestamp,
		Subject:   subject,
	}
}

// String renders the record, including the trailing space the log format
// appends after the body.
func (c RawCommit) String() string {
	mark := ">"
	if c.Boundary {
		mark = "-"
	}

	var b strings.Builder
	b.WriteString(mark + c.SHA + "X" + strings.Join(c.Parents, " ") + "\n")
	b.WriteString(c.Committer + "\n")
	b.WriteString(c.Author + "\n")
	b.WriteString(strconv.FormatInt(c.Timestamp, 10) + "\n")
	b.WriteString(c.Subject + "\n")
	b.WriteString(c.Body + " ")

	if !c.LogSize {
		return b.String()
	}
	return "log size " + strconv.Itoa(b.Len()) + "\n" + b.String()
}

// LogBuffer joins records with NUL separators as `git log -z` does.
func LogBuffer(commits ...RawCommit) []byte {
	parts := make([]string, len(commits))
	for i, c := range commits {
		parts[i] = c.String()
	}
	return []byte(strings.Join(parts, "\x00"))
}

// Records renders commits as raw record strings.
func Records(commits ...RawCommit) []string {
	out := make([]string, len(commits))
	for i, c := range commits {
		out[i] = c.String()
	}
	return out
}

// SampleShowRef is `git show-ref -d` output for the sample history.
const SampleShowRef = ChildSHA + " refs/heads/main\n" +
	FeatureSHA + " refs/heads/feature\n" +
	ChildSHA + " refs/remotes/origin/HEAD\n" +
	ChildSHA + " refs/remotes/origin/main\n" +
	OldSHA + " refs/tags/v1.0\n" +
	RootSHA + " refs/tags/v1.0^{}\n"

// SampleDiffIndex is unstaged diff-index output.
const SampleDiffIndex = ":100644 100644 " + RootSHA + " " + OldSHA + " M\tREADME.md\n"

// SampleDiffIndexCached is staged diff-index output.
const SampleDiffIndexCached = ":000000 100644 0000000000000000000000000000000000000000 " + ChildSHA + " A\tmain.go\n"
