package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/revcache/commit"
	"github.com/jmgilman/go/revcache/config"
	"github.com/jmgilman/go/revcache/errors"
)

func (a *app) searchCmd() *cobra.Command {
	var (
		from  int
		field string
	)

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Find the next commit whose field contains text",
		Long: `Find the next commit, starting at --from and wrapping around, whose field
contains text. Matching ignores case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := commit.ParseField(field)
			if !ok {
				return errors.WithContext(
					errors.New(errors.CodeInvalidInput, "unknown search field"),
					"field", field,
				)
			}

			s, err := a.openSession()
			if err != nil {
				return err
			}
			if err := s.load(cmd.Context(), a.loadOptions()); err != nil {
				return err
			}

			rec := s.cache.CommitInfoByField(f, args[0], from)
			if !rec.IsValid() {
				return errors.WithContextMap(
					errors.New(errors.CodeInvalidInput, "no commit matches"),
					map[string]interface{}{"text": args[0], "field": field},
				)
			}

			n, _ := s.cache.Row(rec.SHA)
			rs := s.cache.References(rec.SHA)
			if a.jsonOut {
				return a.writeJSON(newRowView(n, rec, rs))
			}
			fmt.Fprintf(a.out, "%s %s\n", styles.muted.Render(fmt.Sprintf("%5d", n)), row(rec, rs))
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "row to start searching at")
	cmd.Flags().StringVar(&field, "field", commit.FieldShortLog.String(), "field to search (sha|short_log|long_log|author|committer)")
	config.RegisterLoadFlags(cmd.Flags())
	return cmd
}
