package commit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/git/testutil"
)

func TestParse(t *testing.T) {
	raw := testutil.NewRawCommit(testutil.ChildSHA, testutil.TestSecondCommit, testutil.RootSHA)
	raw.Body = testutil.TestMultilineBody
	raw.Author = testutil.TestAuthor2 + "<" + testutil.TestEmail2 + ">"
	raw.LogSize = true

	rec, err := Parse(raw.String())
	require.NoError(t, err)

	assert.Equal(t, testutil.ChildSHA, rec.SHA)
	assert.Equal(t, []string{testutil.RootSHA}, rec.Parents)
	assert.Equal(t, Signature{Name: testutil.TestAuthor, Email: testutil.TestEmail}, rec.Committer)
	assert.Equal(t, Signature{Name: testutil.TestAuthor2, Email: testutil.TestEmail2}, rec.Author)
	assert.Equal(t, testutil.TestTimestamp, rec.AuthoredAt)
	assert.Equal(t, testutil.TestSecondCommit, rec.ShortLog)
	assert.Equal(t, testutil.TestMultilineBody, rec.LongLog)
	assert.False(t, rec.Boundary)
	assert.True(t, rec.IsValid())
	assert.False(t, rec.IsWip())
}

func TestParseRootAndBoundary(t *testing.T) {
	raw := testutil.NewRawCommit(testutil.RootSHA, testutil.TestInitialCommit)
	raw.Boundary = true

	rec, err := Parse(raw.String())
	require.NoError(t, err)
	assert.Empty(t, rec.Parents)
	assert.True(t, rec.Boundary)
	assert.Empty(t, rec.LongLog, "trailing format space must be trimmed")
	assert.Equal(t, "", rec.FirstParent())
}

func TestParseSHA256(t *testing.T) {
	sha := strings.Repeat("1f", 32)
	parent := strings.Repeat("2e", 32)

	rec, err := Parse(testutil.NewRawCommit(sha, testutil.TestSecondCommit, parent).String())
	require.NoError(t, err)
	assert.Equal(t, sha, rec.SHA)
	assert.Equal(t, []string{parent}, rec.Parents)
}

func TestParseMerge(t *testing.T) {
	raw := testutil.NewRawCommit(testutil.MergeSHA, "merge", testutil.ChildSHA, testutil.FeatureSHA)

	rec, err := Parse(raw.String())
	require.NoError(t, err)
	assert.True(t, rec.IsMerge())
	assert.Equal(t, testutil.ChildSHA, rec.FirstParent())
}

func TestParseLeadingNewline(t *testing.T) {
	raw := testutil.NewRawCommit(testutil.RootSHA, testutil.TestInitialCommit)

	rec, err := Parse("\n" + raw.String())
	require.NoError(t, err)
	assert.Equal(t, testutil.RootSHA, rec.SHA)
}

func TestParseErrors(t *testing.T) {
	bad := testutil.NewRawCommit("not-a-sha", "x")
	badTime := testutil.NewRawCommit(testutil.RootSHA, "x")
	badTime.Timestamp = 0

	tests := []struct {
		name string
		raw  string
	}{
		{name: "too short", raw: ">" + testutil.RootSHA + "X\nonly"},
		{name: "invalid sha", raw: bad.String()},
		{name: "invalid timestamp", raw: replaceLine(badTime.String(), 3, "yesterday")},
		{name: "empty header", raw: "\n\n\n\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Parse(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.CodeParseFailed))
			assert.False(t, rec.IsValid())
		})
	}
}

func TestSplit(t *testing.T) {
	buf := testutil.LogBuffer(
		testutil.NewRawCommit(testutil.ChildSHA, testutil.TestSecondCommit, testutil.RootSHA),
		testutil.NewRawCommit(testutil.RootSHA, testutil.TestInitialCommit),
	)
	buf = append(buf, 0, '\n', 0)

	records := Split(buf)
	require.Len(t, records, 2)
	assert.Contains(t, records[0], testutil.TestSecondCommit)
	assert.Contains(t, records[1], testutil.TestInitialCommit)

	assert.Empty(t, Split(nil))
}

func TestLogArgs(t *testing.T) {
	args := LogArgs("--all", 0)
	assert.Equal(t, "log", args[0])
	assert.Contains(t, args, "-z")
	assert.Contains(t, args, "--boundary")
	assert.Contains(t, args, "--pretty=format:"+LogFormat)
	assert.Equal(t, "--all", args[len(args)-1])

	args = LogArgs("main", 50)
	assert.Equal(t, []string{"--max-count=50", "main"}, args[len(args)-2:])
}

func replaceLine(s string, n int, with string) string {
	lines := strings.Split(s, "\n")
	lines[n] = with
	return strings.Join(lines, "\n")
}
