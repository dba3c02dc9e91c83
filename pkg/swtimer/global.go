package swtimer

// defaultClock is the process-wide binding installed by Init. It is written
// once during setup and read by every package-level operation; there is no
// locking, matching the single initialization contract of the original C
// API this package mirrors.
var defaultClock *Clock

// Init installs the process-wide default clock binding used by the
// package-level Set, IsExpired, Remaining and IsExpiredEvaluatedOnce.
// It must be called exactly once, before any of those, and is not safe to
// call concurrently with timer queries. A nil clock is a precondition
// violation routed to the process-wide handler.
//
// New code should prefer an explicit Clock from NewClock; Init exists for
// the embedded-style call pattern where one clock serves the whole program.
func Init(clock ClockFunc, opts ...Option) {
	c, err := NewClock(clock, opts...)
	if err != nil {
		violationHandler(err)
		return
	}
	defaultClock = c
}

// Default returns the clock installed by Init, or nil before Init.
func Default() *Clock {
	return defaultClock
}

// bound returns the default clock, reporting a violation if Init has not
// been called.
func bound(op string) *Clock {
	c := defaultClock
	if c == nil {
		violationHandler(violationErr(op, "Init not called"))
	}
	return c
}

// Set arms the timer against the default clock binding. See Clock.Set.
func Set(t *Timer, interval uint32) {
	if c := bound("Set"); c != nil {
		c.Set(t, interval)
	}
}

// IsExpired checks the timer against the default clock binding.
// See Clock.IsExpired.
func IsExpired(t *Timer) bool {
	if c := bound("IsExpired"); c != nil {
		return c.IsExpired(t)
	}
	return false
}

// Remaining queries the timer against the default clock binding.
// See Clock.Remaining.
func Remaining(t *Timer) uint32 {
	if c := bound("Remaining"); c != nil {
		return c.Remaining(t)
	}
	return 0
}

// IsExpiredEvaluatedOnce checks the timer against the default clock
// binding. See Clock.IsExpiredEvaluatedOnce.
func IsExpiredEvaluatedOnce(t *Timer) bool {
	if c := bound("IsExpiredEvaluatedOnce"); c != nil {
		return c.IsExpiredEvaluatedOnce(t)
	}
	return false
}
