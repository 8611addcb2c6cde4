package refs

import (
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/errors"
)

// peelSuffix marks the commit an annotated tag points to in show-ref -d.
const peelSuffix = "^{}"

const remotePrefix = "refs/remotes/"

// Classify turns a full reference name into a Ref. It reports whether the
// name was a peeled tag line, and ok=false for names the index does not keep:
// remote HEAD pointers, notes, stashes and other namespaces.
func Classify(name string) (ref Ref, peeled bool, ok bool) {
	rn := plumbing.ReferenceName(name)

	switch {
	case rn.IsTag():
		short := strings.TrimPrefix(name, "refs/tags/")
		if strings.HasSuffix(short, peelSuffix) {
			short = strings.TrimSuffix(short, peelSuffix)
			peeled = true
		}
		if short == "" {
			return Ref{}, false, false
		}
		return Ref{Type: Tag, Name: short}, peeled, true

	case rn.IsBranch():
		short := strings.TrimPrefix(name, "refs/heads/")
		if short == "" {
			return Ref{}, false, false
		}
		return Ref{Type: LocalBranch, Name: short}, false, true

	case rn.IsRemote():
		if strings.HasSuffix(name, "HEAD") {
			return Ref{}, false, false
		}
		short := strings.TrimPrefix(name, remotePrefix)
		if short == "" {
			return Ref{}, false, false
		}
		return Ref{Type: RemoteBranch, Name: short}, false, true
	}

	return Ref{}, false, false
}

// Entry is one classified line of show-ref output.
type Entry struct {
	SHA string
	Ref Ref
}

// ParseShowRef parses `git show-ref -d` output. An annotated tag appears
// twice, once for the tag object and once peeled; only the peeled commit is
// kept. Lightweight tags appear once and are kept as is. Entries keep the
// order of their first appearance.
func ParseShowRef(output string) []Entry {
	var entries []Entry
	tagPos := make(map[string]int)

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		sha, name, found := strings.Cut(line, " ")
		if !found || !commit.IsObjectID(sha) {
			continue
		}

		ref, peeled, ok := Classify(strings.TrimSpace(name))
		if !ok {
			continue
		}

		if ref.Type == Tag {
			if i, seen := tagPos[ref.Name]; seen {
				if peeled {
					entries[i].SHA = sha
				}
				continue
			}
			tagPos[ref.Name] = len(entries)
		}

		entries = append(entries, Entry{SHA: sha, Ref: ref})
	}

	return entries
}

// ParseDistance parses `git rev-list --left-right --count a...b` output,
// "<behind>\t<ahead>".
func ParseDistance(output string) (behind, ahead uint, err error) {
	fields := strings.Fields(output)
	if len(fields) != 2 {
		return 0, 0, errors.Newf(errors.CodeParseFailed, "unexpected rev-list output %q", output)
	}

	b, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return 0, 0, errors.Wrap(err, errors.CodeParseFailed, "invalid behind count")
	}
	a, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return 0, 0, errors.Wrap(err, errors.CodeParseFailed, "invalid ahead count")
	}

	return uint(b), uint(a), nil
}
