package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/git/testutil"
)

func TestCommitInfoMiss(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Setup(sampleWip(), sampleRecords()))

	rec := c.CommitInfo("ffffffffffffffffffffffffffffffffffffffff")
	assert.False(t, rec.IsValid())
	assert.Equal(t, commit.Record{}, rec)
}

func TestCommitInfoByFieldWraps(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Setup(sampleWip(), sampleRecords()))

	// "second" is only at row 1; starting at 2 must wrap around.
	rec := c.CommitInfoByField(commit.FieldShortLog, "SECOND", 2)
	assert.Equal(t, testutil.ChildSHA, rec.SHA)

	rec = c.CommitInfoByField(commit.FieldShortLog, "init", 2)
	assert.Equal(t, testutil.RootSHA, rec.SHA)
}

func TestCommitInfoByFieldNoMatch(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Setup(sampleWip(), sampleRecords()))

	assert.False(t, c.CommitInfoByField(commit.FieldShortLog, "missing", 0).IsValid())
	assert.False(t, c.CommitInfoByField(commit.FieldShortLog, "", 0).IsValid())
}

func TestCommitInfoByFieldOutOfRange(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Setup(sampleWip(), sampleRecords()))

	assert.Equal(t, commit.ZeroSHA, c.CommitInfoByField(commit.FieldShortLog, "changes", 99).SHA)
	assert.Equal(t, commit.ZeroSHA, c.CommitInfoByField(commit.FieldShortLog, "changes", -3).SHA)
}

func TestCommitInfoByFieldOtherFields(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Setup(sampleWip(), sampleRecords()))

	assert.Equal(t, testutil.ChildSHA, c.CommitInfoByField(commit.FieldAuthor, "test user", 1).SHA)
	assert.Equal(t, testutil.RootSHA, c.CommitInfoByField(commit.FieldSHA, "1111", 0).SHA)
}

func TestCommitInfoByFieldEmptyCache(t *testing.T) {
	c := newTestCache()
	assert.False(t, c.CommitInfoByField(commit.FieldShortLog, "x", 0).IsValid())
}

func TestCommitInfoByPrefix(t *testing.T) {
	c := newTestCache()
	records := testutil.Records(
		testutil.NewRawCommit("abc1000000000000000000000000000000000000", "one", "abc2000000000000000000000000000000000000"),
		testutil.NewRawCommit("abc2000000000000000000000000000000000000", "two"),
	)
	require.NoError(t, c.Setup(commit.WipInfo{ParentSHA: "abc1000000000000000000000000000000000000", Valid: true}, records))

	assert.Equal(t, "one", c.CommitInfoByPrefix("abc1").ShortLog)
	assert.Equal(t, "two", c.CommitInfoByPrefix("ABC2").ShortLog)
	assert.False(t, c.CommitInfoByPrefix("abc").IsValid(), "ambiguous prefix")
	assert.False(t, c.CommitInfoByPrefix("").IsValid())
	assert.False(t, c.CommitInfoByPrefix("fff").IsValid())
	assert.True(t, c.CommitInfoByPrefix(commit.ZeroSHA).IsWip())
}

func TestAllStopsEarly(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Setup(sampleWip(), sampleRecords()))

	seen := 0
	for range c.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestCommitAtOutOfRange(t *testing.T) {
	c := newTestCache()
	require.NoError(t, c.Setup(sampleWip(), sampleRecords()))

	assert.False(t, c.CommitAt(-1).IsValid())
	assert.False(t, c.CommitAt(3).IsValid())
	_, ok := c.Row("nope")
	assert.False(t, ok)
}
