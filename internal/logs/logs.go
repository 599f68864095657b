// Package logs builds the command's structured logger.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// ParseLevel parses a level name. Names are case-insensitive; "warning" is
// accepted for warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Options describes where logs go.
type Options struct {
	// Level is the minimum level logged by every handler.
	Level slog.Level
	// Terminal receives human-readable text logs. Nil means no text logs.
	Terminal io.Writer
	// File, if not empty, is a path that receives JSON logs. It is created
	// along with its directory if needed and appended to otherwise.
	File string
}

// Logger is a logger plus the resources it holds.
type Logger struct {
	*slog.Logger
	file     *os.File
	fileOnly *slog.Logger
}

// New creates a logger fanning records out to every configured destination.
// With no destinations, records are discarded.
func New(opts Options) (*Logger, error) {
	l := new(Logger)
	ho := &slog.HandlerOptions{Level: opts.Level}

	var handlers, fileHandlers []slog.Handler
	if opts.Terminal != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Terminal, ho))
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		fileHandlers = append(fileHandlers, slog.NewJSONHandler(f, ho))
		handlers = append(handlers, fileHandlers...)
	}
	l.Logger = slog.New(slogmulti.Fanout(handlers...))
	l.fileOnly = slog.New(slogmulti.Fanout(fileHandlers...))
	return l, nil
}

// FileOnly returns a logger that writes only to the log file, for use while
// something else owns the terminal. Without a file, it discards records.
func (l *Logger) FileOnly() *slog.Logger {
	return l.fileOnly
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
