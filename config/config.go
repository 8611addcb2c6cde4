package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Resolver names accepted by the resolver key.
const (
	ResolverCLI   = "cli"
	ResolverGoGit = "gogit"
)

// Log formats accepted by the log.format key.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the effective configuration.
type Config struct {
	WorkDir         string        `mapstructure:"work_dir" json:"work_dir"`
	ShowAll         bool          `mapstructure:"show_all" json:"show_all"`
	MaxCount        int           `mapstructure:"max_count" json:"max_count"`
	Remote          string        `mapstructure:"remote" json:"remote"`
	DefaultBranch   string        `mapstructure:"default_branch" json:"default_branch"`
	GitBinary       string        `mapstructure:"git_binary" json:"git_binary"`
	Resolver        string        `mapstructure:"resolver" json:"resolver"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout" json:"query_timeout"`
	DistanceWorkers int           `mapstructure:"distance_workers" json:"distance_workers"`
	Log             LogConfig     `mapstructure:"log" json:"log"`
	Watch           WatchConfig   `mapstructure:"watch" json:"watch"`

	// File is the configuration file that was read, if any.
	File string `mapstructure:"-" json:"file,omitempty"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level" json:"level"`
	Format     string `mapstructure:"format" yaml:"format" json:"format"`
	File       string `mapstructure:"file" yaml:"file,omitempty" json:"file,omitempty"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" json:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" json:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" json:"max_backups"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" json:"debounce"`
}

// document is the YAML rendering of Config. Durations are written in
// time.Duration notation instead of nanoseconds.
type document struct {
	WorkDir         string    `yaml:"work_dir"`
	ShowAll         bool      `yaml:"show_all"`
	MaxCount        int       `yaml:"max_count"`
	Remote          string    `yaml:"remote"`
	DefaultBranch   string    `yaml:"default_branch,omitempty"`
	GitBinary       string    `yaml:"git_binary"`
	Resolver        string    `yaml:"resolver"`
	QueryTimeout    string    `yaml:"query_timeout"`
	DistanceWorkers int       `yaml:"distance_workers"`
	Log             LogConfig `yaml:"log"`
	Watch           struct {
		Debounce string `yaml:"debounce"`
	} `yaml:"watch"`
}

// YAML renders the configuration as a revcache.yaml document.
func (c *Config) YAML() ([]byte, error) {
	doc := document{
		WorkDir:         c.WorkDir,
		ShowAll:         c.ShowAll,
		MaxCount:        c.MaxCount,
		Remote:          c.Remote,
		DefaultBranch:   c.DefaultBranch,
		GitBinary:       c.GitBinary,
		Resolver:        c.Resolver,
		QueryTimeout:    c.QueryTimeout.String(),
		DistanceWorkers: c.DistanceWorkers,
		Log:             c.Log,
	}
	doc.Watch.Debounce = c.Watch.Debounce.String()
	return yaml.Marshal(doc)
}
