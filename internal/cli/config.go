package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/revcache/errors"
)

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonOut {
				return a.writeJSON(a.cfg)
			}
			out, err := a.cfg.YAML()
			if err != nil {
				return errors.Wrap(err, errors.CodeInternal, "failed to render configuration")
			}
			_, err = a.out.Write(out)
			return err
		},
	}
}
