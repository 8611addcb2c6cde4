// Package cli implements the revcache command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/revcache/config"
	"github.com/jmgilman/go/revcache/errors"
	"github.com/jmgilman/go/revcache/logger"
)

// app holds state shared by every command of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer

	configFile string
	jsonOut    bool

	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

// NewRootCmd builds the command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, log: zerolog.Nop()}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "revcache",
		Short: "Inspect a git repository through a revision cache",
		Long: `revcache loads a repository's history into an in-memory revision cache
with graph lanes, references and working tree state, and answers queries
against it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closer != nil {
				_ = a.closer.Close()
			}
		},
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "configuration file (default: revcache.yaml in the working or user config directory)")
	pf.BoolVar(&a.jsonOut, "json", false, "write results and errors as JSON")
	config.RegisterFlags(pf)

	cmd.AddCommand(
		a.logCmd(),
		a.showCmd(),
		a.searchCmd(),
		a.refsCmd(),
		a.wipCmd(),
		a.watchCmd(),
		a.configCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	opts := []config.Option{config.WithFlags(cmd.Flags())}
	if a.configFile != "" {
		opts = append(opts, config.WithFile(a.configFile))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, closer, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		MaxBackups: cfg.Log.MaxBackups,
		Out:        a.errOut,
	})
	if err != nil {
		return err
	}
	a.log = log
	a.closer = closer

	a.log.Debug().
		Str("command", cmd.Name()).
		Str("config_file", cfg.File).
		Str("work_dir", cfg.WorkDir).
		Msg("revcache starting")
	return nil
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	cmd := NewRootCmd(out, errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	jsonOut, _ := cmd.PersistentFlags().GetBool("json")
	writeError(errOut, err, jsonOut)
	return 1
}

func writeError(w io.Writer, err error, jsonOut bool) {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(errors.ToJSON(err))
		return
	}
	fmt.Fprintln(w, styles.err.Render("Error:"), err.Error())
}

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to encode output")
	}
	return nil
}
