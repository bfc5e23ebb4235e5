package neurogo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with neurogo-specific helpers.
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

// WithSegment adds the segment's identification to the logger.
func (l *Logger) WithSegment(s *Segment) *Logger {
	return &Logger{
		Logger: l.Logger.With("segment_id", s.ID.String(), "segment_name", s.Name),
	}
}

// LogFilter logs a filter operation.
func (l *Logger) LogFilter(criteria, results int) {
	l.Debug("filter completed",
		"criteria", criteria,
		"results", results,
	)
}

// LogMerge logs a merge operation.
func (l *Logger) LogMerge(otherID string, err error) {
	if err != nil {
		l.Error("merge failed",
			"other_id", otherID,
			"error", err,
		)
	} else {
		l.Debug("merge completed",
			"other_id", otherID,
		)
	}
}

// LogSubsegment logs a sub-segment construction.
func (l *Logger) LogSubsegment(units, signals, trains, arrays int) {
	l.Debug("subsegment constructed",
		"units", units,
		"analogsignals", signals,
		"spiketrains", trains,
		"analogsignalarrays", arrays,
	)
}
