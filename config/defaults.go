package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default values.
const (
	DefaultWorkDir         = "."
	DefaultRemote          = "origin"
	DefaultGitBinary       = "git"
	DefaultResolver        = ResolverCLI
	DefaultDistanceWorkers = 4
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = FormatConsole
	DefaultLogMaxSizeMB    = 10
	DefaultLogMaxAgeDays   = 28
	DefaultLogMaxBackups   = 3
	DefaultDebounce        = 250 * time.Millisecond
)

// SetDefaults registers every key with its default value. Registering all
// keys is also what lets AutomaticEnv find them during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("work_dir", DefaultWorkDir)
	v.SetDefault("show_all", false)
	v.SetDefault("max_count", 0)
	v.SetDefault("remote", DefaultRemote)
	v.SetDefault("default_branch", "")
	v.SetDefault("git_binary", DefaultGitBinary)
	v.SetDefault("resolver", DefaultResolver)
	v.SetDefault("query_timeout", time.Duration(0))
	v.SetDefault("distance_workers", DefaultDistanceWorkers)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("log.max_age_days", DefaultLogMaxAgeDays)
	v.SetDefault("log.max_backups", DefaultLogMaxBackups)
	v.SetDefault("watch.debounce", DefaultDebounce)
}
