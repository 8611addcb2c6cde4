package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/lane"
	"github.com/jmgilman/go/revcache/refs"
)

const shortSHALen = 8

var styles = struct {
	sha    lipgloss.Style
	wip    lipgloss.Style
	local  lipgloss.Style
	remote lipgloss.Style
	tag    lipgloss.Style
	muted  lipgloss.Style
	graph  lipgloss.Style
	err    lipgloss.Style
	label  lipgloss.Style
}{
	sha:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	wip:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	local:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	remote: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	tag:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	graph:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	err:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	label:  lipgloss.NewStyle().Bold(true),
}

var glyphs = map[lane.Type]string{
	lane.Empty:             " ",
	lane.Active:            "●",
	lane.NotActive:         "│",
	lane.MergeFork:         "◆",
	lane.MergeForkRight:    "◆",
	lane.MergeForkLeft:     "◆",
	lane.Join:              "┼",
	lane.JoinRight:         "┤",
	lane.JoinLeft:          "├",
	lane.Head:              "┬",
	lane.HeadRight:         "╮",
	lane.HeadLeft:          "╭",
	lane.Tail:              "┴",
	lane.TailRight:         "╯",
	lane.TailLeft:          "╰",
	lane.Cross:             "┼",
	lane.CrossEmpty:        "─",
	lane.Initial:           "◎",
	lane.Branch:            "○",
	lane.Boundary:          "◌",
	lane.BoundaryConnected: "◌",
	lane.BoundaryRight:     "◌",
	lane.BoundaryLeft:      "◌",
}

// graph renders the lanes of one row.
func graph(lanes []lane.Lane) string {
	var b strings.Builder
	for i, l := range lanes {
		if i > 0 {
			b.WriteByte(' ')
		}
		g, ok := glyphs[l.Type()]
		if !ok {
			g = "?"
		}
		b.WriteString(g)
	}
	return b.String()
}

// refLabels renders references as "(main, origin/main, tag: v1.0)".
func refLabels(rs []refs.Ref) string {
	if len(rs) == 0 {
		return ""
	}
	labels := make([]string, 0, len(rs))
	for _, r := range rs {
		switch r.Type {
		case refs.LocalBranch:
			labels = append(labels, styles.local.Render(r.Name))
		case refs.RemoteBranch:
			labels = append(labels, styles.remote.Render(r.Name))
		case refs.Tag:
			labels = append(labels, styles.tag.Render("tag: "+r.Name))
		}
	}
	return "(" + strings.Join(labels, ", ") + ")"
}

// row renders one cache row as a single line.
func row(rec commit.Record, rs []refs.Ref) string {
	parts := []string{styles.graph.Render(graph(rec.Lanes))}

	if rec.IsWip() {
		parts = append(parts, styles.wip.Render(rec.ShortLog))
		return strings.Join(parts, " ")
	}

	parts = append(parts, styles.sha.Render(rec.ShortSHA(shortSHALen)))
	if labels := refLabels(rs); labels != "" {
		parts = append(parts, labels)
	}
	parts = append(parts, rec.ShortLog)
	parts = append(parts, styles.muted.Render("<"+rec.Author.Name+">"))
	return strings.Join(parts, " ")
}

// detail renders a record over several lines.
func detail(rec commit.Record, rs []refs.Ref) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(styles.label.Render(label) + " " + value + "\n")
	}

	line("commit   ", styles.sha.Render(rec.SHA))
	if labels := refLabels(rs); labels != "" {
		line("refs     ", labels)
	}
	if len(rec.Parents) > 0 {
		line("parents  ", strings.Join(rec.Parents, " "))
	}
	line("author   ", rec.Author.String())
	line("committer", rec.Committer.String())
	line("date     ", rec.AuthoredTime().UTC().Format(time.RFC3339))
	if rec.Boundary {
		line("boundary ", "yes")
	}

	b.WriteString("\n    " + rec.ShortLog + "\n")
	if rec.LongLog != "" {
		for _, l := range strings.Split(rec.LongLog, "\n") {
			b.WriteString("    " + l + "\n")
		}
	}

	if len(rec.Files) > 0 {
		b.WriteString("\n")
		for _, f := range rec.Files {
			b.WriteString(fileLine(f) + "\n")
		}
	}
	return b.String()
}

func fileLine(f commit.FileChange) string {
	state := "unstaged"
	switch {
	case f.Untracked:
		state = "untracked"
	case f.Staged:
		state = "staged"
	}

	path := f.Path
	if f.OldPath != "" {
		path = f.OldPath + " -> " + f.Path
	}
	return "  " + styles.sha.Render(f.Status.String()) + " " + path + " " + styles.muted.Render("("+state+")")
}

type refView struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

func refViews(rs []refs.Ref) []refView {
	if len(rs) == 0 {
		return nil
	}
	out := make([]refView, len(rs))
	for i, r := range rs {
		out[i] = refView{Type: r.Type.String(), Name: r.Name}
	}
	return out
}

type rowView struct {
	Row int `json:"row"`
	commit.Record
	Lanes []string  `json:"lanes"`
	Refs  []refView `json:"refs,omitempty"`
}

func newRowView(i int, rec commit.Record, rs []refs.Ref) rowView {
	lanes := make([]string, len(rec.Lanes))
	for j, l := range rec.Lanes {
		lanes[j] = l.String()
	}
	return rowView{Row: i, Record: rec, Lanes: lanes, Refs: refViews(rs)}
}
