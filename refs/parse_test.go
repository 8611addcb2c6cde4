package refs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/revcache/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		want   Ref
		peeled bool
		ok     bool
	}{
		{name: "refs/tags/v1.0^{}", want: Ref{Type: Tag, Name: "v1.0"}, peeled: true, ok: true},
		{name: "refs/tags/v1.0", want: Ref{Type: Tag, Name: "v1.0"}, ok: true},
		{name: "refs/heads/main", want: Ref{Type: LocalBranch, Name: "main"}, ok: true},
		{name: "refs/heads/feature/login", want: Ref{Type: LocalBranch, Name: "feature/login"}, ok: true},
		{name: "refs/remotes/origin/main", want: Ref{Type: RemoteBranch, Name: "origin/main"}, ok: true},
		{name: "refs/remotes/origin/HEAD"},
		{name: "refs/stash"},
		{name: "refs/notes/commits"},
		{name: "HEAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, peeled, ok := Classify(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, ref)
			assert.Equal(t, tt.peeled, peeled)
		})
	}
}

func TestParseShowRef(t *testing.T) {
	output := "" +
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa refs/heads/main\n" +
		"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb refs/heads/feature\n" +
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa refs/remotes/origin/HEAD\n" +
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa refs/remotes/origin/main\n" +
		"cccccccccccccccccccccccccccccccccccccccc refs/tags/v1.0\n" +
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa refs/tags/v1.0^{}\n" +
		"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb refs/tags/light\n" +
		"garbage line\n" +
		"\n"

	got := ParseShowRef(output)

	assert.Equal(t, []Entry{
		{SHA: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Ref: Ref{Type: LocalBranch, Name: "main"}},
		{SHA: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Ref: Ref{Type: LocalBranch, Name: "feature"}},
		{SHA: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Ref: Ref{Type: RemoteBranch, Name: "origin/main"}},
		{SHA: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Ref: Ref{Type: Tag, Name: "v1.0"}},
		{SHA: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", Ref: Ref{Type: Tag, Name: "light"}},
	}, got)
}

func TestParseShowRefSHA256(t *testing.T) {
	sha := strings.Repeat("d4", 32)

	got := ParseShowRef(sha + " refs/heads/main\n")
	assert.Equal(t, []Entry{{SHA: sha, Ref: Ref{Type: LocalBranch, Name: "main"}}}, got)
}

func TestParseShowRefEmpty(t *testing.T) {
	assert.Empty(t, ParseShowRef(""))
}

func TestParseDistance(t *testing.T) {
	behind, ahead, err := ParseDistance("2\t5\n")
	require.NoError(t, err)
	assert.Equal(t, uint(2), behind)
	assert.Equal(t, uint(5), ahead)
}

func TestParseDistanceInvalid(t *testing.T) {
	for _, in := range []string{"", "fatal: ambiguous argument", "1", "x\t2", "1\ty"} {
		_, _, err := ParseDistance(in)
		require.Error(t, err, in)
		assert.Equal(t, errors.CodeParseFailed, errors.GetCode(err), in)
	}
}
