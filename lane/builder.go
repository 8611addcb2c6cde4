package lane

// Builder lays out graph lanes row by row. Commits must be fed in the order
// they are displayed, children before parents. A Builder is not safe for
// concurrent use.
type Builder struct {
	types  []Type
	next   []string // SHA each track expects next
	active int

	boundary bool
	node     Type
	nodeR    Type
	nodeL    Type
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Reset discards all tracks.
func (b *Builder) Reset() {
	b.types = b.types[:0]
	b.next = b.next[:0]
	b.active = 0
}

// Next computes the lanes for the commit sha and advances the layout to its
// first parent. The returned slice is owned by the caller.
func (b *Builder) Next(sha string, parents []string, boundary bool) []Lane {
	if len(b.types) == 0 {
		b.init(sha)
	}

	fork, discontinuity := b.isFork(sha)
	merge := len(parents) > 1
	initial := len(parents) == 0

	// Uses the boundary state of the previous row.
	if discontinuity {
		b.changeActiveLane(sha)
	}
	b.setBoundary(boundary)

	if fork {
		b.setFork(sha)
	}
	if merge {
		b.setMerge(parents)
	}
	if initial {
		b.setInitial()
	}

	row := make([]Lane, len(b.types))
	for i, t := range b.types {
		row[i] = New(t)
	}

	nextSHA := ""
	if !initial {
		nextSHA = parents[0]
	}
	b.nextParent(nextSHA)

	if merge {
		b.afterMerge()
	}
	if fork {
		b.afterFork()
	}
	if b.types[b.active] == Branch {
		b.types[b.active] = Active
	}

	return row
}

func (b *Builder) init(sha string) {
	b.Reset()
	b.setBoundary(false)
	b.add(Branch, sha, b.active)
}

func (b *Builder) setBoundary(boundary bool) {
	b.boundary = boundary
	if boundary {
		b.node, b.nodeR, b.nodeL = BoundaryConnected, BoundaryRight, BoundaryLeft
		b.types[b.active] = Boundary
		return
	}
	b.node, b.nodeR, b.nodeL = MergeFork, MergeForkRight, MergeForkLeft
}

func (b *Builder) isFork(sha string) (fork, discontinuity bool) {
	pos := b.findNext(sha, 0)
	discontinuity = pos != b.active
	if pos == -1 {
		return false, discontinuity
	}
	return b.findNext(sha, pos+1) != -1, discontinuity
}

func (b *Builder) setFork(sha string) {
	start := b.findNext(sha, 0)
	end := start
	for idx := start; idx != -1; idx = b.findNext(sha, idx+1) {
		end = idx
		b.types[idx] = Tail
	}
	b.types[b.active] = b.node

	switch b.types[start] {
	case b.node:
		b.types[start] = b.nodeL
	case Tail:
		b.types[start] = TailLeft
	}
	switch b.types[end] {
	case b.node:
		b.types[end] = b.nodeR
	case Tail:
		b.types[end] = TailRight
	}

	for i := start + 1; i < end; i++ {
		switch b.types[i] {
		case NotActive:
			b.types[i] = Cross
		case Empty:
			b.types[i] = CrossEmpty
		}
	}
}

// setMerge must run after setFork.
func (b *Builder) setMerge(parents []string) {
	if b.boundary {
		return
	}

	cur := b.types[b.active]
	wasFork := cur == b.node
	wasForkL := cur == b.nodeL
	wasForkR := cur == b.nodeR
	startWasCross, endWasCross := false, false

	b.types[b.active] = b.node
	start, end := b.active, b.active

	for _, p := range parents[1:] {
		idx := b.findNext(p, 0)
		if idx == -1 {
			end = b.add(Head, p, end+1)
			continue
		}
		if idx > end {
			end = idx
			endWasCross = b.types[idx] == Cross
		}
		if idx < start {
			start = idx
			startWasCross = b.types[idx] == Cross
		}
		b.types[idx] = Join
	}

	switch st := b.types[start]; {
	case st == b.node && !wasFork && !wasForkR:
		b.types[start] = b.nodeL
	case st == Join && !startWasCross:
		b.types[start] = JoinLeft
	case st == Head:
		b.types[start] = HeadLeft
	}
	switch et := b.types[end]; {
	case et == b.node && !wasFork && !wasForkL:
		b.types[end] = b.nodeR
	case et == Join && !endWasCross:
		b.types[end] = JoinRight
	case et == Head:
		b.types[end] = HeadRight
	}

	for i := start + 1; i < end; i++ {
		switch b.types[i] {
		case NotActive:
			b.types[i] = Cross
		case Empty:
			b.types[i] = CrossEmpty
		case TailRight, TailLeft:
			b.types[i] = Tail
		}
	}
}

func (b *Builder) setInitial() {
	if !b.types[b.active].isNode() {
		if b.boundary {
			b.types[b.active] = Boundary
		} else {
			b.types[b.active] = Initial
		}
	}
}

func (b *Builder) changeActiveLane(sha string) {
	if t := b.types[b.active]; t == Initial || t.isBoundary() {
		b.types[b.active] = Empty
	} else {
		b.types[b.active] = NotActive
	}

	idx := b.findNext(sha, 0)
	if idx != -1 {
		b.types[idx] = Active
	} else {
		idx = b.add(Branch, sha, b.active)
	}
	b.active = idx
}

func (b *Builder) nextParent(sha string) {
	if b.boundary {
		sha = ""
	}
	b.next[b.active] = sha
}

func (b *Builder) afterMerge() {
	if b.boundary {
		return
	}
	for i, t := range b.types {
		switch {
		case t.isHead() || t.isJoin() || t == Cross:
			b.types[i] = NotActive
		case t == CrossEmpty:
			b.types[i] = Empty
		case t.isNode():
			b.types[i] = Active
		}
	}
}

func (b *Builder) afterFork() {
	for i, t := range b.types {
		switch {
		case t == Cross:
			t = NotActive
		case t.isTail() || t == CrossEmpty:
			t = Empty
		}
		// A boundary commit can itself be a fork.
		if !b.boundary && t.isNode() {
			t = Active
		}
		b.types[i] = t
	}
	for n := len(b.types); n > 0 && b.types[n-1] == Empty; n-- {
		b.types = b.types[:n-1]
		b.next = b.next[:n-1]
	}
}

func (b *Builder) findNext(sha string, pos int) int {
	for i := pos; i < len(b.next); i++ {
		if b.next[i] == sha {
			return i
		}
	}
	return -1
}

// add reuses the first Empty track at or after pos, or appends a new one.
func (b *Builder) add(t Type, sha string, pos int) int {
	for i := pos; i < len(b.types); i++ {
		if b.types[i] == Empty {
			b.types[i] = t
			b.next[i] = sha
			return i
		}
	}
	b.types = append(b.types, t)
	b.next = append(b.next, sha)
	return len(b.types) - 1
}
