package cli

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/revcache/config"
	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/refs"
)

type branchView struct {
	Name string `json:"name"`
	refs.Distances
}

type refsView struct {
	References map[string][]refView `json:"references"`
	Branches   []branchView         `json:"branches"`
}

func (a *app) refsCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "refs",
		Short: "Print references per commit and local branch distances",
		Long: `Print every reference grouped by the commit it points at, followed by the
ahead/behind counts of each local branch. Commits outside the loaded window
are listed too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup := func(x *refs.Index, sha string) []refs.Ref { return x.Lookup(sha) }
			if kind != "" {
				t, ok := refs.ParseType(kind)
				if !ok {
					return errors.WithContext(
						errors.New(errors.CodeInvalidInput, "unknown reference type"),
						"type", kind,
					)
				}
				lookup = func(x *refs.Index, sha string) []refs.Ref { return x.LookupType(sha, t) }
			}

			s, err := a.openSession()
			if err != nil {
				return err
			}
			if err := s.load(cmd.Context(), a.loadOptions()); err != nil {
				return err
			}

			idx := s.cache.ReferenceIndex()
			view := refsView{References: map[string][]refView{}}

			// Loaded commits come first, in history order.
			shas := idx.SHAs()
			rowOf := func(sha string) int {
				if n, ok := s.cache.Row(sha); ok {
					return n
				}
				return math.MaxInt
			}
			slices.SortStableFunc(shas, func(x, y string) int { return cmp.Compare(rowOf(x), rowOf(y)) })

			var listed []string
			for _, sha := range shas {
				if rs := lookup(idx, sha); len(rs) > 0 {
					view.References[sha] = refViews(rs)
					listed = append(listed, sha)
				}
			}
			for _, name := range idx.Branches() {
				d, _ := idx.Distances(name)
				view.Branches = append(view.Branches, branchView{Name: name, Distances: d})
			}

			if a.jsonOut {
				return a.writeJSON(view)
			}

			for _, sha := range listed {
				fmt.Fprintf(a.out, "%s %s\n", styles.sha.Render(sha[:min(len(sha), shortSHALen)]), refLabels(lookup(idx, sha)))
			}
			if len(view.Branches) > 0 {
				fmt.Fprintln(a.out)
			}
			for _, b := range view.Branches {
				fmt.Fprintf(a.out, "%s %s %s\n",
					styles.local.Render(b.Name),
					styles.muted.Render(fmt.Sprintf("default: -%d +%d", b.BehindMaster, b.AheadMaster)),
					styles.muted.Render(fmt.Sprintf("upstream: -%d +%d", b.BehindOrigin, b.AheadOrigin)),
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "type", "", "only list references of this type (local|remote|tag)")
	config.RegisterLoadFlags(cmd.Flags())
	return cmd
}
