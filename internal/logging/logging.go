// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the logger level, format and destination.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // text|json
	File   string // rotating file; empty logs to stderr
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup installs the default slog logger and bridges the std log package
// to the same writer. The returned closer releases the log file, if any.
func Setup(opts Options) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if strings.TrimSpace(opts.File) != "" {
		lj := &lumberjack.Logger{Filename: opts.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		w, closer = lj, lj
	}
	logger := New(w, opts.Level, opts.Format)
	slog.SetDefault(logger)
	if strings.EqualFold(opts.Format, "json") {
		log.SetFlags(0)
	} else {
		log.SetFlags(log.LstdFlags)
	}
	log.SetOutput(w)
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
