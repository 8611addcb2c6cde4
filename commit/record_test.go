package commit

import (
	"strings"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
)

func TestZeroSHA(t *testing.T) {
	assert.Equal(t, "0000000000000000000000000000000000000000", ZeroSHA)
	assert.True(t, plumbing.IsHash(ZeroSHA))
}

func TestIsObjectID(t *testing.T) {
	assert.True(t, IsObjectID(ZeroSHA))
	assert.True(t, IsObjectID(strings.Repeat("ab", 32)))
	assert.False(t, IsObjectID(""))
	assert.False(t, IsObjectID(ZeroSHA[:7]))
	assert.False(t, IsObjectID(strings.Repeat("zz", 32)))
	assert.False(t, IsObjectID(strings.Repeat("a", 50)))
}

func TestParseSignature(t *testing.T) {
	tests := []struct {
		in   string
		want Signature
	}{
		{in: "Jane Doe<jane@example.com>", want: Signature{Name: "Jane Doe", Email: "jane@example.com"}},
		{in: "Jane Doe <jane@example.com>", want: Signature{Name: "Jane Doe", Email: "jane@example.com"}},
		{in: "<nobody@example.com>", want: Signature{Email: "nobody@example.com"}},
		{in: "-", want: Signature{Name: "-"}},
		{in: "", want: Signature{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSignature(tt.in))
		})
	}
}

func TestSignatureString(t *testing.T) {
	assert.Equal(t, "Jane <j@x.io>", Signature{Name: "Jane", Email: "j@x.io"}.String())
	assert.Equal(t, "-", Signature{Name: "-"}.String())
}

func TestRecordField(t *testing.T) {
	rec := Record{
		SHA:       "abc",
		ShortLog:  "subject",
		LongLog:   "body",
		Author:    Signature{Name: "A", Email: "a@x"},
		Committer: Signature{Name: "C"},
	}

	assert.Equal(t, "abc", rec.Field(FieldSHA))
	assert.Equal(t, "subject", rec.Field(FieldShortLog))
	assert.Equal(t, "body", rec.Field(FieldLongLog))
	assert.Equal(t, "A <a@x>", rec.Field(FieldAuthor))
	assert.Equal(t, "C", rec.Field(FieldCommitter))
	assert.Equal(t, "", rec.Field(Field(99)))
}

func TestParseField(t *testing.T) {
	for f := FieldSHA; f <= FieldCommitter; f++ {
		got, ok := ParseField(f.String())
		assert.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := ParseField("nope")
	assert.False(t, ok)
}

func TestRecordHelpers(t *testing.T) {
	var zero Record
	assert.False(t, zero.IsValid())
	assert.False(t, zero.IsWip())

	rec := Record{SHA: "0123456789abcdef", AuthoredAt: 1700000000}
	assert.Equal(t, "0123456", rec.ShortSHA(7))
	assert.Equal(t, rec.SHA, rec.ShortSHA(0))
	assert.True(t, rec.AuthoredTime().Equal(time.Unix(1700000000, 0)))
}
