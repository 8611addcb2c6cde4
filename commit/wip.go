package commit

import (
	"strings"
	"time"
)

const (
	wipSignature  = "-"
	wipChanges    = "Local changes"
	wipNoChanges  = "No local changes"
	diffIndexMeta = ':'
)

// WipInfo describes the working tree relative to HEAD. It is only Valid
// when HEAD resolved; a repository without commits has an empty ParentSHA.
type WipInfo struct {
	ParentSHA       string
	DiffIndex       string
	DiffIndexCached string
	Untracked       []string
	Valid           bool
}

// HasChanges reports whether either diff-index query listed a change.
func (w WipInfo) HasChanges() bool {
	return strings.TrimSpace(w.DiffIndex) != "" || strings.TrimSpace(w.DiffIndexCached) != ""
}

// NewWip builds the working-in-progress record stamped with now.
func NewWip(info WipInfo, now time.Time) Record {
	rec := Record{
		SHA:        ZeroSHA,
		Committer:  Signature{Name: wipSignature},
		Author:     Signature{Name: wipSignature},
		AuthoredAt: now.Unix(),
		ShortLog:   wipNoChanges,
	}
	if info.ParentSHA != "" {
		rec.Parents = []string{info.ParentSHA}
	}
	if info.HasChanges() {
		rec.ShortLog = wipChanges
	}

	rec.Files = append(rec.Files, ParseDiffIndex(info.DiffIndex, false)...)
	rec.Files = append(rec.Files, ParseDiffIndex(info.DiffIndexCached, true)...)
	for _, path := range info.Untracked {
		rec.Files = append(rec.Files, FileChange{Path: path, Status: StatusUntracked, Untracked: true})
	}

	return rec
}

// Status is a diff-index status letter.
type Status byte

const (
	StatusAdded       Status = 'A'
	StatusCopied      Status = 'C'
	StatusDeleted     Status = 'D'
	StatusModified    Status = 'M'
	StatusRenamed     Status = 'R'
	StatusTypeChanged Status = 'T'
	StatusUnmerged    Status = 'U'
	StatusUnknown     Status = 'X'
	StatusUntracked   Status = '?'
)

func (s Status) String() string { return string(s) }

// FileChange is one working-tree change.
type FileChange struct {
	Path      string `json:"path"`
	OldPath   string `json:"old_path,omitempty"`
	Status    Status `json:"status"`
	OldMode   string `json:"old_mode,omitempty"`
	NewMode   string `json:"new_mode,omitempty"`
	Staged    bool   `json:"staged,omitempty"`
	Untracked bool   `json:"untracked,omitempty"`
}

// ParseDiffIndex parses raw diff-index output:
//
//	:100644 100644 <sha> <sha> M	path
//	:100644 100644 <sha> <sha> R086	old	new
//
// Malformed lines are skipped.
func ParseDiffIndex(output string, staged bool) []FileChange {
	var out []FileChange
	for _, line := range strings.Split(output, "\n") {
		if line == "" || line[0] != diffIndexMeta {
			continue
		}

		meta, paths, found := strings.Cut(line[1:], "\t")
		if !found {
			continue
		}
		fields := strings.Fields(meta)
		if len(fields) < 5 || fields[4] == "" {
			continue
		}

		fc := FileChange{
			OldMode: fields[0],
			NewMode: fields[1],
			Status:  Status(fields[4][0]),
			Staged:  staged,
		}

		names := strings.Split(paths, "\t")
		fc.Path = names[len(names)-1]
		if len(names) > 1 {
			fc.OldPath = names[0]
		}
		out = append(out, fc)
	}
	return out
}

// MarshalText encodes the status as its letter.
func (s Status) MarshalText() ([]byte, error) {
	return []byte{byte(s)}, nil
}
