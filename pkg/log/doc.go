// Package log provides structured diagnostic event capture for software
// timers.
//
// This package defines the Logger interface and Event types for recording
// clock-binding and timer lifecycle events (clock bound, timer armed,
// one-shot expiry consumed, precondition violation). It is separate from
// operational logging (slog) — event capture produces a machine-readable
// trace suitable for offline analysis of timing behavior.
//
// # Basic Usage
//
// Applications attach a Logger when binding a clock:
//
//	// For development: log to console via slog
//	clk, _ := swtimer.NewClock(millis,
//	    swtimer.WithLogger(log.NewSlogAdapter(slog.Default())))
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/app/timers.tlog")
//	clk, _ := swtimer.NewClock(millis, swtimer.WithLogger(fl))
//
//	// Both: use MultiLogger
//	swtimer.WithLogger(log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()), fl))
//
// # Event Categories
//
//   - CategoryClockBound: a tick source was bound into a Clock
//   - CategoryTimerArmed: a timer was armed via Set
//   - CategoryOneShotConsumed: IsExpiredEvaluatedOnce reported its one true
//   - CategoryViolation: a precondition violation was detected
//
// The pure query paths (IsExpired, Remaining) never emit events, so
// attaching a logger does not perturb poll-loop hot paths.
//
// # File Format
//
// Log files use CBOR encoding with integer keys and the .tlog extension.
// Reader streams events back, optionally filtered by clock, category, or
// time range.
package log
