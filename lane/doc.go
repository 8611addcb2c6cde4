// Package lane classifies commit graph lanes.
//
// A lane is one vertical track of the commit graph. Each row of the revision
// cache carries one Lane per track, describing what the track does on that
// row: a line passing through, a fork, a merge, the start of a branch, and so
// on. Renderers only read the predicates; they never need the Builder.
//
// The Builder derives lanes from commits in log order:
//
//	b := lane.NewBuilder()
//	for _, c := range commits {
//		row := b.Next(c.SHA, c.Parents, c.Boundary)
//		// row[i] is the lane of track i on this row
//	}
package lane
