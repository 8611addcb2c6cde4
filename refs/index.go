package refs

import (
	"slices"
	"sort"
)

// Index maps commit SHAs to references and local branches to distances.
// It is not safe for concurrent use; the revision cache guards it.
type Index struct {
	bySHA     map[string][]Ref
	distances map[string]Distances
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		bySHA:     make(map[string][]Ref),
		distances: make(map[string]Distances),
	}
}

// Insert adds ref to sha. Inserting the same pair again is a no-op and
// returns false.
func (x *Index) Insert(sha string, ref Ref) bool {
	if slices.Contains(x.bySHA[sha], ref) {
		return false
	}
	x.bySHA[sha] = append(x.bySHA[sha], ref)
	return true
}

// Lookup returns the references of sha in insertion order, or nil.
func (x *Index) Lookup(sha string) []Ref {
	return slices.Clone(x.bySHA[sha])
}

// LookupType returns only the references of sha with type t.
func (x *Index) LookupType(sha string, t Type) []Ref {
	var out []Ref
	for _, r := range x.bySHA[sha] {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}

// SetDistances stores or overwrites the distances of branch.
func (x *Index) SetDistances(branch string, d Distances) {
	x.distances[branch] = d
}

// Distances returns the distances of branch.
func (x *Index) Distances(branch string) (Distances, bool) {
	d, ok := x.distances[branch]
	return d, ok
}

// Branches returns the names of branches with distances, sorted.
func (x *Index) Branches() []string {
	out := make([]string, 0, len(x.distances))
	for name := range x.distances {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// SHAs returns every SHA carrying at least one reference, sorted.
func (x *Index) SHAs() []string {
	out := make([]string, 0, len(x.bySHA))
	for sha := range x.bySHA {
		out = append(out, sha)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of references stored.
func (x *Index) Len() int {
	n := 0
	for _, refs := range x.bySHA {
		n += len(refs)
	}
	return n
}

// Clone returns a deep copy.
func (x *Index) Clone() *Index {
	c := &Index{
		bySHA:     make(map[string][]Ref, len(x.bySHA)),
		distances: make(map[string]Distances, len(x.distances)),
	}
	for sha, refs := range x.bySHA {
		c.bySHA[sha] = slices.Clone(refs)
	}
	for name, d := range x.distances {
		c.distances[name] = d
	}
	return c
}
