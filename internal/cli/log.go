package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/revcache/config"
)

func (a *app) logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Load the history and print every row with its graph lanes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			if err := s.load(cmd.Context(), a.loadOptions()); err != nil {
				return err
			}

			if a.jsonOut {
				views := make([]rowView, 0, s.cache.Count())
				for i, rec := range s.cache.All() {
					views = append(views, newRowView(i, rec, s.cache.References(rec.SHA)))
				}
				return a.writeJSON(views)
			}

			for _, rec := range s.cache.All() {
				fmt.Fprintln(a.out, row(rec, s.cache.References(rec.SHA)))
			}
			return nil
		},
	}
	config.RegisterLoadFlags(cmd.Flags())
	return cmd
}
