// Package logging wraps log/slog with the field names used across lanetsp.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger wraps slog.Logger with lanetsp-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler at info level on stderr is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes human-readable records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// New builds a Logger writing to w from textual level ("debug", "info",
// "warn", "error") and format ("text", "json") settings.
func New(w io.Writer, level, format string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", format)
	}
}

// ParseLevel maps a textual level to slog.Level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", level)
	}
}

// WithRun tags records with a search run id.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", id)}
}

// WithScenario tags records with a remote scenario.
func (l *Logger) WithScenario(nodes int, id uint32) *Logger {
	return &Logger{Logger: l.Logger.With("nodes", nodes, "scenario_id", id)}
}

// LogIngest logs a matrix ingestion.
func (l *Logger) LogIngest(ctx context.Context, n int, symmetric bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "ingest rejected",
			"n", n,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "matrix ingested",
		"n", n,
		"symmetric", symmetric,
	)
}

// LogRun logs the end of a search run.
func (l *Logger) LogRun(ctx context.Context, cost uint32, index uint64, visited uint64, elapsed time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "search aborted",
			"visited", visited,
			"elapsed", elapsed,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "search completed",
		"best_cost", cost,
		"best_index", index,
		"visited", visited,
		"elapsed", elapsed,
	)
}

// LogDrop logs a datagram discarded at the protocol boundary.
func (l *Logger) LogDrop(ctx context.Context, from string, size int, reason error) {
	l.WarnContext(ctx, "datagram dropped",
		"from", from,
		"size", size,
		"reason", reason,
	)
}
