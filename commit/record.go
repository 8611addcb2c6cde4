package commit

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/jmgilman/go/revcache/lane"
)

// ZeroSHA identifies the working-in-progress record.
var ZeroSHA = plumbing.ZeroHash.String()

const sha256HexSize = 64

// IsObjectID reports whether s is a full object name, either a SHA-1 or a
// SHA-256 one.
func IsObjectID(s string) bool {
	if plumbing.IsHash(s) {
		return true
	}
	if len(s) != sha256HexSize {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// Signature is a name and email pair.
type Signature struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ParseSignature parses "name<email>". Input without an email becomes a
// name-only signature.
func ParseSignature(s string) Signature {
	open := strings.LastIndex(s, "<")
	if open == -1 {
		return Signature{Name: strings.TrimSpace(s)}
	}
	return Signature{
		Name:  strings.TrimSpace(s[:open]),
		Email: strings.TrimSuffix(strings.TrimSpace(s[open+1:]), ">"),
	}
}

func (s Signature) String() string {
	if s.Email == "" {
		return s.Name
	}
	return s.Name + " <" + s.Email + ">"
}

// Field selects a searchable text field of a Record.
type Field uint8

const (
	FieldSHA Field = iota
	FieldShortLog
	FieldLongLog
	FieldAuthor
	FieldCommitter
)

func (f Field) String() string {
	switch f {
	case FieldSHA:
		return "sha"
	case FieldShortLog:
		return "short_log"
	case FieldLongLog:
		return "long_log"
	case FieldAuthor:
		return "author"
	case FieldCommitter:
		return "committer"
	default:
		return "unknown"
	}
}

// ParseField maps a field name as printed by Field.String back to a Field.
func ParseField(s string) (Field, bool) {
	for f := FieldSHA; f <= FieldCommitter; f++ {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// Record is one row of the revision cache. The zero value is the invalid
// record returned by lookups that miss.
type Record struct {
	SHA        string      `json:"sha"`
	Parents    []string    `json:"parents,omitempty"`
	Committer  Signature   `json:"committer"`
	Author     Signature   `json:"author"`
	AuthoredAt int64       `json:"authored_at"`
	ShortLog   string      `json:"short_log"`
	LongLog    string      `json:"long_log,omitempty"`
	Boundary   bool        `json:"boundary,omitempty"`
	Lanes      []lane.Lane `json:"-"`

	// Files is only set on the working-in-progress record.
	Files []FileChange `json:"files,omitempty"`
}

// IsValid reports whether r is a real record rather than a lookup miss.
func (r Record) IsValid() bool {
	return r.SHA != ""
}

// IsWip reports whether r is the working-in-progress record.
func (r Record) IsWip() bool {
	return r.SHA == ZeroSHA
}

// IsMerge reports whether r has more than one parent.
func (r Record) IsMerge() bool {
	return len(r.Parents) > 1
}

// FirstParent returns the first parent SHA, or "" for a root commit.
func (r Record) FirstParent() string {
	if len(r.Parents) == 0 {
		return ""
	}
	return r.Parents[0]
}

// AuthoredTime returns AuthoredAt as a time.Time.
func (r Record) AuthoredTime() time.Time {
	return time.Unix(r.AuthoredAt, 0)
}

// Field returns the text of field f.
func (r Record) Field(f Field) string {
	switch f {
	case FieldSHA:
		return r.SHA
	case FieldShortLog:
		return r.ShortLog
	case FieldLongLog:
		return r.LongLog
	case FieldAuthor:
		return r.Author.String()
	case FieldCommitter:
		return r.Committer.String()
	default:
		return ""
	}
}

// ShortSHA returns the first n characters of the SHA.
func (r Record) ShortSHA(n int) string {
	if n <= 0 || n >= len(r.SHA) {
		return r.SHA
	}
	return r.SHA[:n]
}
