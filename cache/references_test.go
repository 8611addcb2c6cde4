package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/revcache/git/testutil"
	"github.com/jmgilman/go/revcache/refs"
)

func TestInsertReferenceIdempotent(t *testing.T) {
	c := newTestCache()
	main := refs.Ref{Type: refs.LocalBranch, Name: "main"}

	c.InsertReference(testutil.ChildSHA, main)
	c.InsertReference(testutil.ChildSHA, main)
	c.InsertReference(testutil.ChildSHA, refs.Ref{Type: refs.Tag, Name: "v1.0"})

	assert.Equal(t, []refs.Ref{main, {Type: refs.Tag, Name: "v1.0"}}, c.References(testutil.ChildSHA))
	assert.Empty(t, c.References(testutil.RootSHA))
}

func TestInsertLocalBranchDistances(t *testing.T) {
	c := newTestCache()
	want := refs.Distances{BehindMaster: 2, AheadMaster: 5, BehindOrigin: 0, AheadOrigin: 1}

	c.InsertLocalBranchDistances("feature", want)

	got, ok := c.Distances("feature")
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"feature"}, c.Branches())

	_, ok = c.Distances("main")
	assert.False(t, ok)
}

func TestReferenceIndexIsACopy(t *testing.T) {
	c := newTestCache()
	c.InsertReference(testutil.ChildSHA, refs.Ref{Type: refs.LocalBranch, Name: "main"})
	c.InsertLocalBranchDistances("main", refs.Distances{AheadOrigin: 1})

	idx := c.ReferenceIndex()
	c.InsertReference(testutil.ChildSHA, refs.Ref{Type: refs.Tag, Name: "v2"})
	c.ReplaceReferences(nil)

	assert.Equal(t, []string{testutil.ChildSHA}, idx.SHAs())
	assert.Equal(t, []refs.Ref{{Type: refs.LocalBranch, Name: "main"}}, idx.Lookup(testutil.ChildSHA))
	d, ok := idx.Distances("main")
	require.True(t, ok)
	assert.Equal(t, uint(1), d.AheadOrigin)
}

func TestReplaceReferences(t *testing.T) {
	c := newTestCache()
	c.InsertReference(testutil.RootSHA, refs.Ref{Type: refs.Tag, Name: "old"})

	x := refs.NewIndex()
	x.Insert(testutil.ChildSHA, refs.Ref{Type: refs.LocalBranch, Name: "main"})
	x.SetDistances("main", refs.Distances{AheadOrigin: 1})
	c.ReplaceReferences(x)

	assert.Empty(t, c.References(testutil.RootSHA))
	assert.Len(t, c.References(testutil.ChildSHA), 1)
	d, ok := c.Distances("main")
	require.True(t, ok)
	assert.Equal(t, uint(1), d.AheadOrigin)

	c.ReplaceReferences(nil)
	assert.Empty(t, c.References(testutil.ChildSHA))
}
