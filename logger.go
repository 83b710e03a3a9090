package coloring

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with coloring-specific context. A nil *Logger is
// valid everywhere in this package and performs no logging. ViewOf and the
// set-algebra kernels never touch it; AddSet reaches it only through the
// rate-limited progress reporter.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. If handler is nil, a
// text handler writing to stderr at Info level is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger returns a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))}
}

func (l *Logger) logFinalize(count, bitmaps int) {
	if l == nil {
		return
	}
	frac := 0.0
	if count > 0 {
		frac = float64(bitmaps) / float64(count)
	}
	l.Info("coloring: finalize",
		"sets", count,
		"bitmaps", bitmaps,
		"bitmap_fraction", frac,
	)
}

func (l *Logger) logProgress(added int) {
	if l == nil {
		return
	}
	l.Info("coloring: ingest progress", "sets_added", added)
}

func (l *Logger) logArchive(op, name string, bytes int, err error) {
	if l == nil {
		return
	}
	if err != nil {
		l.Error("coloring: archive "+op+" failed", "blob", name, "error", err)
		return
	}
	l.Info("coloring: archive "+op, "blob", name, "bytes", bytes)
}
