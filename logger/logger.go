// Package logger builds the zerolog logger used by the revcache command.
// Library packages never log through a global; they take the logger this
// package builds through their options.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jmgilman/go/revcache/errors"
)

// Formats accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logger settings.
type Config struct {
	Level  string
	Format string

	// File enables a rotating JSON log file in addition to Out.
	File       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int

	// Out defaults to os.Stderr.
	Out     io.Writer
	NoColor bool
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c Config) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 28 if not set.
func (c Config) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 28
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c Config) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger. The returned closer releases the log file, if one
// was opened.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), nil, errors.WithContext(
				errors.Wrap(err, errors.CodeInvalidConfig, "invalid log level"),
				"level", cfg.Level,
			)
		}
		level = l
	}

	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	var primary io.Writer
	switch cfg.Format {
	case "", FormatConsole:
		primary = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	case FormatJSON:
		primary = out
	default:
		return zerolog.Nop(), nil, errors.WithContext(
			errors.New(errors.CodeInvalidConfig, "invalid log format"),
			"format", cfg.Format,
		)
	}

	if cfg.File == "" {
		log := zerolog.New(primary).Level(level).With().Timestamp().Logger()
		return log, nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return zerolog.Nop(), nil, errors.WithContext(
			errors.Wrap(err, errors.CodeInvalidConfig, "failed to create log directory"),
			"file", cfg.File,
		)
	}

	file := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.GetMaxSizeMB(),
		MaxAge:     cfg.GetMaxAgeDays(),
		MaxBackups: cfg.GetMaxBackups(),
		LocalTime:  true,
	}

	log := zerolog.New(zerolog.MultiLevelWriter(primary, file)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return log, file, nil
}
