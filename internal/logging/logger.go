// Package logging wires zerolog loggers through context.Context.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o644
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to out.
// The TUI host routes logs away from the terminal it draws on.
func NewWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	output := out

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	case "json":
		// JSON is the default zerolog format
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// TABGALLERY_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TABGALLERY_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("TABGALLERY_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("TABGALLERY_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// NewFromConfigValues creates a logger from the raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewWithFile creates a logger appending to path. An empty path discards all
// output. The returned cleanup closes the file.
func NewWithFile(cfg Config, path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return NewWithWriter(cfg, io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("open log file: %w", err)
	}

	return NewWithWriter(cfg, f), func() { _ = f.Close() }, nil
}

// SetGlobalLevel changes the minimum level of every logger at runtime.
// Loggers built with a stricter level keep it.
func SetGlobalLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}
