package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/revcache/config"
	"github.com/jmgilman/go/revcache/loader"
	"github.com/jmgilman/go/revcache/watch"
)

func (a *app) watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Load the repository and keep the cache fresh until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var s *session
			report := loader.ListenerFuncs{
				Finished: func() {
					st := s.cache.Stats()
					fmt.Fprintf(a.out, "%s %d commits, %d references, %d branches\n",
						styles.label.Render("loaded"), st.Commits, st.References, st.Branches)
				},
				Cancelled: func() {
					fmt.Fprintln(a.out, styles.muted.Render("load cancelled"))
				},
			}

			s, err := a.openSession(report)
			if err != nil {
				return err
			}
			opts := a.loadOptions()
			if err := s.load(ctx, opts); err != nil {
				return err
			}

			w, err := watch.New(s.repo.WorkDir(), s.loader,
				watch.WithDebounce(a.cfg.Watch.Debounce),
				watch.WithLoadOptions(opts),
				watch.WithLogger(a.log.With().Str("component", "watch").Logger()),
			)
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()

			err = w.Run(ctx)
			s.loader.Cancel()
			s.loader.Wait()
			return err
		},
	}
	config.RegisterLoadFlags(cmd.Flags())
	config.RegisterWatchFlags(cmd.Flags())
	return cmd
}
