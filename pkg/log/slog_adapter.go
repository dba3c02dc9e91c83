package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes timer events to an slog.Logger.
// Useful for development when you want to see timer events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level, except for
// violations which are logged at Warn level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("clock_id", event.ClockID),
		slog.String("category", event.Category.String()),
	}

	// Add type-specific attributes
	switch {
	case event.Timer != nil:
		attrs = append(attrs,
			slog.Uint64("start", uint64(event.Timer.Start)),
			slog.Uint64("interval", uint64(event.Timer.Interval)),
			slog.Uint64("now", uint64(event.Timer.Now)),
		)
	case event.Violation != nil:
		attrs = append(attrs,
			slog.String("op", event.Violation.Op),
			slog.String("message", event.Violation.Message),
		)
	}

	level := slog.LevelDebug
	if event.Category == CategoryViolation {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "timer event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
