// Package config resolves revcache settings from defaults, a revcache.yaml
// file, REVCACHE_* environment variables and command-line flags, in that
// order of increasing precedence.
//
// Keys use dots for nesting; the matching environment variable replaces dots
// with underscores, so log.level is read from REVCACHE_LOG_LEVEL.
package config
