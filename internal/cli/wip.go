package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/revcache/loader"
)

func (a *app) wipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wip",
		Short: "Recompute and print the working tree state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			// Only HEAD is needed to anchor the WIP row.
			if err := s.load(cmd.Context(), loader.LoadOptions{MaxCount: 1}); err != nil {
				return err
			}
			if _, err := s.loader.UpdateWipRevision(cmd.Context()); err != nil {
				return err
			}

			wip := s.cache.Wip()
			if a.jsonOut {
				return a.writeJSON(wip)
			}
			if !wip.IsValid() {
				fmt.Fprintln(a.out, styles.muted.Render("HEAD does not resolve; no working tree state"))
				return nil
			}
			fmt.Fprint(a.out, detail(wip, nil))
			return nil
		},
	}
}
