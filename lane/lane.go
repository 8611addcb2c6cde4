package lane

// Type is the role of a lane on one row.
type Type uint8

const (
	Empty Type = iota
	Active
	NotActive
	MergeFork
	MergeForkRight
	MergeForkLeft
	Join
	JoinRight
	JoinLeft
	Head
	HeadRight
	HeadLeft
	Tail
	TailRight
	TailLeft
	Cross
	CrossEmpty
	Initial
	Branch
	Boundary
	BoundaryConnected
	BoundaryRight
	BoundaryLeft
)

var typeNames = [...]string{
	Empty:             "empty",
	Active:            "active",
	NotActive:         "not-active",
	MergeFork:         "merge-fork",
	MergeForkRight:    "merge-fork-right",
	MergeForkLeft:     "merge-fork-left",
	Join:              "join",
	JoinRight:         "join-right",
	JoinLeft:          "join-left",
	Head:              "head",
	HeadRight:         "head-right",
	HeadLeft:          "head-left",
	Tail:              "tail",
	TailRight:         "tail-right",
	TailLeft:          "tail-left",
	Cross:             "cross",
	CrossEmpty:        "cross-empty",
	Initial:           "initial",
	Branch:            "branch",
	Boundary:          "boundary",
	BoundaryConnected: "boundary-connected",
	BoundaryRight:     "boundary-right",
	BoundaryLeft:      "boundary-left",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// isNode reports a commit dot: a fork/merge point or a boundary variant.
func (t Type) isNode() bool {
	switch t {
	case MergeFork, MergeForkRight, MergeForkLeft:
		return true
	}
	return t.isBoundary()
}

func (t Type) isHead() bool { return t == Head || t == HeadRight || t == HeadLeft }
func (t Type) isTail() bool { return t == Tail || t == TailRight || t == TailLeft }
func (t Type) isJoin() bool { return t == Join || t == JoinRight || t == JoinLeft }

func (t Type) isBoundary() bool {
	switch t {
	case Boundary, BoundaryConnected, BoundaryRight, BoundaryLeft:
		return true
	}
	return false
}

// Lane is one graph track on one row. The zero value is an Empty lane.
// Lanes compare equal when their types are equal.
type Lane struct {
	t Type
}

// New returns a lane of type t.
func New(t Type) Lane {
	return Lane{t: t}
}

// Type returns the lane's role.
func (l Lane) Type() Type { return l.t }

// Equals reports whether the lane has type t.
func (l Lane) Equals(t Type) bool { return l.t == t }

func (l Lane) IsHead() bool     { return l.t.isHead() }
func (l Lane) IsTail() bool     { return l.t.isTail() }
func (l Lane) IsJoin() bool     { return l.t.isJoin() }
func (l Lane) IsBoundary() bool { return l.t.isBoundary() }

// IsFreeLane reports a track that carries no commit on this row and may be
// crossed by a connector.
func (l Lane) IsFreeLane() bool {
	return l.t == NotActive || l.t == Cross || l.t.isJoin()
}

// IsMerge reports a fork/merge dot, including boundary dots.
func (l Lane) IsMerge() bool {
	switch l.t {
	case MergeFork, MergeForkRight, MergeForkLeft:
		return true
	}
	return l.t.isBoundary()
}

// IsActive reports the track holding this row's commit.
func (l Lane) IsActive() bool {
	return l.t == Active || l.t == Initial || l.t == Branch || l.IsMerge()
}

func (l Lane) String() string { return l.t.String() }
