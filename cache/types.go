package cache

import (
	"iter"
	"time"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/refs"
)

// Reader is the read-only view of the cache.
type Reader interface {
	CommitInfo(sha string) commit.Record
	CommitInfoByField(field commit.Field, text string, startRow int) commit.Record
	CommitInfoByPrefix(prefix string) commit.Record
	CommitAt(row int) commit.Record
	Row(sha string) (int, bool)
	Count() int
	Wip() commit.Record
	All() iter.Seq2[int, commit.Record]
	References(sha string) []refs.Ref
	Distances(branch string) (refs.Distances, bool)
	Branches() []string
	IsConfigured() bool
	Stats() Stats
}

// Writer is the mutating view of the cache, owned by the loader.
type Writer interface {
	BeginLoad()
	Setup(wip commit.WipInfo, records []string) error
	UpdateWipCommit(wip commit.WipInfo) bool
	InsertReference(sha string, ref refs.Ref)
	InsertLocalBranchDistances(branch string, d refs.Distances)
	ReplaceReferences(x *refs.Index)
	SetConfigurationDone()
}

// Stats summarizes the cache contents.
type Stats struct {
	Commits    int       `json:"commits"`
	Merges     int       `json:"merges"`
	Boundary   int       `json:"boundary"`
	References int       `json:"references"`
	Branches   int       `json:"branches"`
	Configured bool      `json:"configured"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// snapshot is never modified after it is published.
type snapshot struct {
	commits  []commit.Record
	index    map[string]int
	loadedAt time.Time
}

var emptySnapshot = &snapshot{index: map[string]int{}}

func (s *snapshot) at(row int) commit.Record {
	if row < 0 || row >= len(s.commits) {
		return commit.Record{}
	}
	return s.commits[row]
}
