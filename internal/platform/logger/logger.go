// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string
	Format     string // json, text
	Output     string // stderr, stdout, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// New builds a logger for cfg. The returned closer releases a log file, if any.
// Writing to stdout is allowed but collides with result output on the same stream.
func New(cfg Config) (*slog.Logger, io.Closer) {
	writer, closer := openWriter(cfg)

	lvl := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler), closer
}

// Init builds a logger for cfg and installs it as the slog default.
func Init(cfg Config) (*slog.Logger, io.Closer) {
	log, closer := New(cfg)
	slog.SetDefault(log)
	return log, closer
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openWriter(cfg Config) (io.Writer, io.Closer) {
	switch cfg.Output {
	case "stdout":
		return os.Stdout, nopCloser{}
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/flight-search.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return os.Stderr, nopCloser{}
		}
		lj := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		return lj, lj
	default:
		return os.Stderr, nopCloser{}
	}
}
