package log

import (
	"time"
)

// Event represents one captured timer event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (wall clock, nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ClockID uniquely identifies the clock binding (UUID).
	ClockID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Type-specific payload (at most one of these is set).
	Timer     *TimerEvent     `cbor:"4,keyasint,omitempty"` // Armed / one-shot consumed
	Violation *ViolationEvent `cbor:"5,keyasint,omitempty"` // Precondition violations
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryClockBound indicates a tick source was bound into a clock.
	CategoryClockBound Category = 0
	// CategoryTimerArmed indicates a timer was armed via Set.
	CategoryTimerArmed Category = 1
	// CategoryOneShotConsumed indicates an edge-triggered expiry was
	// reported by IsExpiredEvaluatedOnce.
	CategoryOneShotConsumed Category = 2
	// CategoryViolation indicates a precondition violation.
	CategoryViolation Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryClockBound:
		return "CLOCK_BOUND"
	case CategoryTimerArmed:
		return "TIMER_ARMED"
	case CategoryOneShotConsumed:
		return "ONESHOT_CONSUMED"
	case CategoryViolation:
		return "VIOLATION"
	default:
		return "UNKNOWN"
	}
}

// TimerEvent carries the timer state observed at an arming or one-shot
// consumption. All values are raw ticks from the bound clock source.
type TimerEvent struct {
	// Start is the tick captured as the timer's start.
	Start uint32 `cbor:"1,keyasint"`

	// Interval is the armed interval in ticks.
	Interval uint32 `cbor:"2,keyasint"`

	// Now is the tick read when the event was emitted. Equal to Start for
	// arming events; for one-shot consumption, Now - Start is the elapsed
	// tick count that satisfied the interval.
	Now uint32 `cbor:"3,keyasint"`
}

// ViolationEvent carries details of a precondition violation.
type ViolationEvent struct {
	// Op is the operation that detected the violation (e.g. "Set").
	Op string `cbor:"1,keyasint"`

	// Message describes the violated precondition.
	Message string `cbor:"2,keyasint"`
}
