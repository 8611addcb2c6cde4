package refs

// Type is the kind of a reference.
type Type uint8

const (
	Tag Type = iota
	LocalBranch
	RemoteBranch
)

func (t Type) String() string {
	switch t {
	case Tag:
		return "tag"
	case LocalBranch:
		return "local"
	case RemoteBranch:
		return "remote"
	default:
		return "unknown"
	}
}

// ParseType is the inverse of Type.String.
func ParseType(s string) (Type, bool) {
	for _, t := range []Type{Tag, LocalBranch, RemoteBranch} {
		if t.String() == s {
			return t, true
		}
	}
	return 0, false
}

// Ref is a named pointer to a commit, stored without its refs/ prefix.
// Remote branches keep the remote name, e.g. "origin/main".
type Ref struct {
	Type Type   `json:"type"`
	Name string `json:"name"`
}

// Distances are the commit counts between a local branch and the default
// branch (Master) and its remote tracking branch (Origin).
type Distances struct {
	BehindMaster uint `json:"behind_master"`
	AheadMaster  uint `json:"ahead_master"`
	BehindOrigin uint `json:"behind_origin"`
	AheadOrigin  uint `json:"ahead_origin"`
}
