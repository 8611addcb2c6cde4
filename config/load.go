package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/revcache/errors"
)

const (
	// FileName is the configuration file searched for when none is given.
	FileName = "revcache.yaml"

	// EnvPrefix prefixes every environment variable.
	EnvPrefix = "REVCACHE"

	appDir = "revcache"
)

// Option configures Load.
type Option func(*options)

type options struct {
	file        string
	searchPaths []string
	flags       *pflag.FlagSet
}

// WithFile reads the given file instead of searching. The file must exist.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithSearchPaths replaces the directories searched for revcache.yaml.
func WithSearchPaths(dirs ...string) Option {
	return func(o *options) {
		o.searchPaths = dirs
	}
}

// WithFlags binds the flags of fs that have a known key.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(o *options) {
		o.flags = fs
	}
}

// DefaultSearchPaths returns the working directory and the user config
// directory ($XDG_CONFIG_HOME/revcache).
func DefaultSearchPaths() []string {
	paths := []string{"."}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, appDir))
	} else if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, appDir))
	}
	return paths
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// Load resolves the effective configuration.
func Load(opts ...Option) (*Config, error) {
	o := &options{searchPaths: DefaultSearchPaths()}
	for _, opt := range opts {
		opt(o)
	}

	v := New()

	if o.flags != nil {
		for name, key := range flagKeys {
			if f := o.flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, errors.CodeInternal, "failed to bind flag %s", name)
				}
			}
		}
	}

	file, err := readFile(v, o)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode configuration"),
			"file", file,
		)
	}
	cfg.File = file

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(v *viper.Viper, o *options) (string, error) {
	if o.file != "" {
		v.SetConfigFile(o.file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return "", errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file"),
				"file", o.file,
			)
		}
		return o.file, nil
	}

	v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	v.SetConfigType("yaml")
	for _, dir := range o.searchPaths {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", errors.Wrap(err, errors.CodeInvalidConfig, "failed to read config file")
	}
	return v.ConfigFileUsed(), nil
}

// Validate checks values that cannot be expressed by types alone.
func (c *Config) Validate() error {
	invalid := func(key string, value any, msg string) error {
		return errors.WithContextMap(errors.New(errors.CodeInvalidConfig, msg), map[string]interface{}{
			"key":   key,
			"value": value,
		})
	}

	if c.WorkDir == "" {
		return invalid("work_dir", c.WorkDir, "work_dir must not be empty")
	}
	if c.MaxCount < 0 {
		return invalid("max_count", c.MaxCount, "max_count must not be negative")
	}
	if c.DistanceWorkers < 1 {
		return invalid("distance_workers", c.DistanceWorkers, "distance_workers must be positive")
	}
	if c.QueryTimeout < 0 {
		return invalid("query_timeout", c.QueryTimeout.String(), "query_timeout must not be negative")
	}
	switch c.Resolver {
	case ResolverCLI, ResolverGoGit:
	default:
		return invalid("resolver", c.Resolver, "resolver must be cli or gogit")
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return invalid("log.format", c.Log.Format, "log.format must be console or json")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return invalid("log.level", c.Log.Level, "unknown log level")
	}
	return nil
}
