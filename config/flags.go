package config

import "github.com/spf13/pflag"

// Flag names and the keys they are bound to. Only flags present in the set
// given to Load are bound.
var flagKeys = map[string]string{
	"repo":             "work_dir",
	"all":              "show_all",
	"max-count":        "max_count",
	"remote":           "remote",
	"default-branch":   "default_branch",
	"git":              "git_binary",
	"resolver":         "resolver",
	"query-timeout":    "query_timeout",
	"distance-workers": "distance_workers",
	"log-level":        "log.level",
	"log-format":       "log.format",
	"log-file":         "log.file",
	"debounce":         "watch.debounce",
}

// RegisterFlags adds the global flags to fs. Their defaults are left empty
// so that unset flags never mask file or environment values.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("repo", "C", "", "repository working directory")
	fs.String("remote", "", "remote used for branch distances")
	fs.String("default-branch", "", "branch distances are measured against")
	fs.String("git", "", "git binary")
	fs.String("resolver", "", "repository root resolver (cli|gogit)")
	fs.Duration("query-timeout", 0, "timeout for each synchronous git query")
	fs.Int("distance-workers", 0, "concurrent branch distance queries")
	fs.String("log-level", "", "log level (trace|debug|info|warn|error)")
	fs.String("log-format", "", "log format (console|json)")
	fs.String("log-file", "", "also write logs to a rotating file")
}

// RegisterLoadFlags adds the flags that shape a load cycle.
func RegisterLoadFlags(fs *pflag.FlagSet) {
	fs.BoolP("all", "a", false, "load every reference instead of the current branch")
	fs.IntP("max-count", "n", 0, "limit the number of commits")
}

// RegisterWatchFlags adds the watch command flags.
func RegisterWatchFlags(fs *pflag.FlagSet) {
	fs.Duration("debounce", 0, "quiet period before a refresh")
}
