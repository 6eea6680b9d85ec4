package annfilter

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with annfilter-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithGeneName adds the gene-name column field to the logger.
func (l *Logger) WithGeneName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("gene_name", name),
	}
}

// LogCompile logs the outcome of condition compilation.
func (l *Logger) LogCompile(ctx context.Context, ranges, memberships, dropped int) {
	l.DebugContext(ctx, "conditions compiled",
		"ranges", ranges,
		"memberships", memberships,
		"dropped", dropped,
	)
}

// LogSynthesize logs a derived-metric synthesis step.
func (l *Logger) LogSynthesize(ctx context.Context, qcVars []string, percentTop []int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "metric synthesis failed",
			"qc_vars", qcVars,
			"percent_top", percentTop,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "metric synthesis completed",
			"qc_vars", qcVars,
			"percent_top", percentTop,
		)
	}
}

// LogFilter logs a completed filter pass.
func (l *Logger) LogFilter(ctx context.Context, cellsBefore, cellsAfter, genesBefore, genesAfter int) {
	l.InfoContext(ctx, "filter applied",
		"cells_before", cellsBefore,
		"cells_after", cellsAfter,
		"genes_before", genesBefore,
		"genes_after", genesAfter,
	)
}
