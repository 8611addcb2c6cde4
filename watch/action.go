package watch

import (
	"path/filepath"
	"strings"
)

// Action is what an event asks of the cache. Larger values include the
// work of smaller ones.
type Action uint8

const (
	// ActionNone ignores the event.
	ActionNone Action = iota

	// ActionRefreshWip recomputes the WIP row.
	ActionRefreshWip

	// ActionReload reloads history and references.
	ActionReload
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionRefreshWip:
		return "refresh-wip"
	case ActionReload:
		return "reload"
	default:
		return "unknown"
	}
}

const gitDir = ".git"

// Classify maps a path relative to the repository root to an action.
func Classify(rel string) Action {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." || rel == gitDir {
		return ActionNone
	}

	inner, ok := strings.CutPrefix(rel, gitDir+"/")
	if !ok {
		return ActionRefreshWip
	}

	if strings.HasSuffix(inner, ".lock") {
		return ActionNone
	}
	switch {
	case inner == "HEAD", inner == "packed-refs", strings.HasPrefix(inner, "refs/"):
		return ActionReload
	case inner == "index", inner == "info/exclude":
		return ActionRefreshWip
	}
	return ActionNone
}

// watchDir reports whether a directory under the root needs a watch.
// Inside the git directory only the directory itself and refs/ matter.
func watchDir(rel string) bool {
	rel = filepath.ToSlash(filepath.Clean(rel))
	if rel == "." || rel == gitDir {
		return true
	}
	inner, ok := strings.CutPrefix(rel, gitDir+"/")
	if !ok {
		return true
	}
	return inner == "refs" || strings.HasPrefix(inner, "refs/") || inner == "info"
}
