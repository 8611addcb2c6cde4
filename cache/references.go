package cache

import "github.com/jmgilman/go/revcache/refs"

// InsertReference attaches ref to sha. Repeated calls are no-ops.
func (c *RevisionCache) InsertReference(sha string, ref refs.Ref) {
	c.mu.Lock()
	c.refs.Insert(sha, ref)
	c.mu.Unlock()
}

// InsertLocalBranchDistances stores or overwrites the distances of branch.
func (c *RevisionCache) InsertLocalBranchDistances(branch string, d refs.Distances) {
	c.mu.Lock()
	c.refs.SetDistances(branch, d)
	c.mu.Unlock()
}

// ReplaceReferences swaps in a fully built index. The cache takes ownership
// of x; nil clears the references.
func (c *RevisionCache) ReplaceReferences(x *refs.Index) {
	if x == nil {
		x = refs.NewIndex()
	}
	c.mu.Lock()
	c.refs = x
	c.mu.Unlock()
}

// ReferenceIndex returns a copy of the reference index. Later loads do not
// change it.
func (c *RevisionCache) ReferenceIndex() *refs.Index {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refs.Clone()
}

// References returns the references pointing at sha.
func (c *RevisionCache) References(sha string) []refs.Ref {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refs.Lookup(sha)
}

// Distances returns the distances of a local branch.
func (c *RevisionCache) Distances(branch string) (refs.Distances, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refs.Distances(branch)
}

// Branches returns the local branches with distances, sorted.
func (c *RevisionCache) Branches() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refs.Branches()
}
