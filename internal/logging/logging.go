// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level  string
	Format string
	// File enables a rotated log file next to stderr.
	File string
	// FileOnly drops stderr when File is set; used by the TUI, which owns the terminal.
	FileOnly bool
}

// Setup installs a default slog logger built from opts and returns it.
// The returned closer flushes and closes the log file, if any.
func Setup(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w = io.MultiWriter(os.Stderr, file)
		closer = file

		if opts.FileOnly {
			w = file
		}
	}

	logger := slog.New(newHandler(w, opts.Format, level))
	slog.SetDefault(logger)

	return logger, closer, nil
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(format, "json") {
		return slog.NewJSONHandler(w, handlerOpts)
	}

	return slog.NewTextHandler(w, handlerOpts)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
