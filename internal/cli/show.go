package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/revcache/config"
	"github.com/jmgilman/go/revcache/errors"
)

func (a *app) showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <sha|prefix>",
		Short: "Print one commit; the zero SHA prints the working tree state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			if err := s.load(cmd.Context(), a.loadOptions()); err != nil {
				return err
			}

			rec := s.cache.CommitInfoByPrefix(args[0])
			if !rec.IsValid() {
				return errors.WithContext(
					errors.New(errors.CodeInvalidInput, "no unique commit matches the given revision"),
					"revision", args[0],
				)
			}

			n, _ := s.cache.Row(rec.SHA)
			rs := s.cache.References(rec.SHA)
			if a.jsonOut {
				return a.writeJSON(newRowView(n, rec, rs))
			}
			fmt.Fprint(a.out, detail(rec, rs))
			return nil
		},
	}
	config.RegisterLoadFlags(cmd.Flags())
	return cmd
}
