package swtimer

import (
	"time"

	"github.com/google/uuid"

	"github.com/rici4kubicek/software-timer/pkg/log"
)

// ClockFunc provides the current tick count. The returned value must be
// monotonically increasing modulo 2^32 (it wraps from math.MaxUint32 back
// to 0, never otherwise jumps backward). The tick unit is defined by the
// application and must match the unit of all timer intervals.
type ClockFunc func() uint32

// Clock is an immutable binding of a tick source. All timer operations are
// methods on a Clock; every Timer armed through the same Clock shares its
// tick source while remaining fully independent otherwise.
//
// Construct with NewClock. A Clock is safe for concurrent use as long as
// its ClockFunc is, with the per-Timer restrictions described in the
// package documentation.
type Clock struct {
	id        string
	now       ClockFunc
	logger    log.Logger
	violation ViolationHandler
}

// Option configures a Clock at construction time.
type Option func(*Clock)

// WithLogger attaches an event logger to the clock. Events are emitted when
// the clock is bound, when a timer is armed, when a one-shot query consumes
// an expiry, and on precondition violations. The pure read paths (IsExpired,
// Remaining) never emit events.
func WithLogger(l log.Logger) Option {
	return func(c *Clock) { c.logger = l }
}

// WithViolationHandler overrides the process-wide violation handler for
// operations on this clock.
func WithViolationHandler(h ViolationHandler) Option {
	return func(c *Clock) { c.violation = h }
}

// NewClock binds a tick source into a Clock. A nil now is a precondition
// violation and is returned as an error wrapping ErrPreconditionViolation.
func NewClock(now ClockFunc, opts ...Option) (*Clock, error) {
	if now == nil {
		return nil, violationErr("NewClock", "nil clock function")
	}
	c := &Clock{
		id:  uuid.NewString(),
		now: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.emit(log.Event{
		Timestamp: time.Now(),
		ClockID:   c.id,
		Category:  log.CategoryClockBound,
	})
	return c, nil
}

// ID returns the unique identifier stamped on this clock's log events.
func (c *Clock) ID() string {
	return c.id
}

// Now reads the bound tick source.
func (c *Clock) Now() uint32 {
	return c.now()
}

// violate reports a precondition violation on this clock: the event is
// logged (if a logger is attached) and the effective handler is invoked.
func (c *Clock) violate(op, detail string) {
	err := violationErr(op, detail)
	c.emit(log.Event{
		Timestamp: time.Now(),
		ClockID:   c.id,
		Category:  log.CategoryViolation,
		Violation: &log.ViolationEvent{Op: op, Message: detail},
	})
	h := c.violation
	if h == nil {
		h = violationHandler
	}
	h(err)
}

// emit sends an event to the attached logger, if any.
func (c *Clock) emit(ev log.Event) {
	if c.logger != nil {
		c.logger.Log(ev)
	}
}
