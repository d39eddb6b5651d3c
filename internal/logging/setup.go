// Package logging builds the zerowrap logger used across forcedeck. The file
// sink is a lumberjack writer that always receives JSON lines.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the logger output.
type Config struct {
	Level  string     `mapstructure:"level"`
	Format string     `mapstructure:"format"` // "console" or "json"
	File   FileConfig `mapstructure:"file"`
}

// FileConfig enables a rotated log file next to the console output.
type FileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// New builds a logger writing to out. An unknown level falls back to info.
func New(cfg Config, out io.Writer) zerowrap.Logger {
	log := zerowrap.New(zerowrap.Config{
		Level:  cfg.Level,
		Format: cfg.Format,
		Output: out,
	})
	warnInvalidLevel(log, cfg.Level)
	return log
}

func newFileLogger(levelName string, w io.Writer) zerowrap.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil || levelName == "" {
		level = zerolog.InfoLevel
	}
	log := zerowrap.Logger{Logger: zerolog.New(w).Level(level).With().Timestamp().Logger()}
	warnInvalidLevel(log, levelName)
	return log
}

func warnInvalidLevel(log zerowrap.Logger, levelName string) {
	if _, err := zerolog.ParseLevel(strings.ToLower(levelName)); err != nil {
		log.Warn().Str("invalid_level", levelName).Msg("invalid log level, using info")
	}
}

// Setup builds the process logger. When file logging is enabled the returned
// cleanup closes the rotated file; it is always safe to call.
func Setup(cfg Config) (zerowrap.Logger, func(), error) {
	if !cfg.File.Enabled {
		return New(cfg, os.Stderr), func() {}, nil
	}

	// Create the log directory with secure permissions (0700 - owner only)
	if err := os.MkdirAll(filepath.Dir(cfg.File.Path), 0700); err != nil {
		return New(cfg, os.Stderr), func() {}, fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File.Path,
		MaxSize:    cfg.File.MaxSize,
		MaxBackups: cfg.File.MaxBackups,
		MaxAge:     cfg.File.MaxAge,
		Compress:   cfg.File.Compress,
	}

	// The file always gets JSON lines; the console follows the configured format.
	var console io.Writer = os.Stderr
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	log := newFileLogger(cfg.Level, zerolog.MultiLevelWriter(console, fileWriter))

	// Set file permissions to be secure (readable only by owner)
	if err := os.Chmod(cfg.File.Path, 0600); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", cfg.File.Path).Msg("failed to set secure permissions on log file")
	}

	log.Info().Str("log_file", cfg.File.Path).Msg("file logging initialized")

	return log, func() { _ = fileWriter.Close() }, nil
}

// WithFallback attaches log to ctx unless ctx already carries an enabled
// logger, so request-scoped fields set by the middleware survive.
func WithFallback(ctx context.Context, log zerowrap.Logger) context.Context {
	if zerowrap.Ctx(ctx).GetLevel() != zerolog.Disabled {
		return ctx
	}
	return zerowrap.WithCtx(ctx, log)
}
