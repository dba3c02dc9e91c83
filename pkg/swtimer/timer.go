package swtimer

import (
	"time"

	"github.com/rici4kubicek/software-timer/pkg/log"
)

// Timer holds the state of one countdown: the tick captured when it was
// armed, the requested interval, and the one-shot evaluation flag. Timers
// are plain values; copy, embed, or pool them freely. A Timer must be armed
// with Set before its first query.
type Timer struct {
	start     uint32
	interval  uint32
	evaluated bool
}

// Start returns the tick value captured at the most recent Set.
func (t *Timer) Start() uint32 {
	return t.start
}

// Interval returns the interval the timer was armed with.
func (t *Timer) Interval() uint32 {
	return t.interval
}

// Set arms the timer: the current tick is captured as its start, the
// interval is stored, and the one-shot flag is cleared. Any previous state
// is overwritten, so a timer may be re-armed at any point, including while
// already expired or mid-countdown. An interval of 0 expires on the very
// next check.
func (c *Clock) Set(t *Timer, interval uint32) {
	if t == nil {
		c.violate("Set", "nil timer")
		return
	}
	now := c.now()
	t.start = now
	t.interval = interval
	t.evaluated = false
	if c.logger != nil {
		c.emit(log.Event{
			Timestamp: time.Now(),
			ClockID:   c.id,
			Category:  log.CategoryTimerArmed,
			Timer:     &log.TimerEvent{Start: t.start, Interval: t.interval, Now: now},
		})
	}
}

// IsExpired reports whether the timer's interval has elapsed since it was
// armed. The elapsed tick count is now - start under uint32 modular
// subtraction, which stays correct across counter wraparound. Level
// triggered: once expired it reports true on every call until the next Set.
// Read-only.
func (c *Clock) IsExpired(t *Timer) bool {
	if t == nil {
		c.violate("IsExpired", "nil timer")
		return false
	}
	return c.now()-t.start >= t.interval
}

// Remaining returns the number of ticks until the timer expires, or 0 if it
// already has. The value is monotonically non-increasing between Set calls
// within one full clock period. Read-only.
func (c *Clock) Remaining(t *Timer) uint32 {
	if t == nil {
		c.violate("Remaining", "nil timer")
		return 0
	}
	elapsed := c.now() - t.start
	if elapsed >= t.interval {
		return 0
	}
	return t.interval - elapsed
}

// IsExpiredEvaluatedOnce is the edge-triggered variant of IsExpired: it
// reports true exactly once per arming, on the first call that observes
// expiry, and false on every other call until the timer is re-armed with
// Set. The one-shot flag is the only state it mutates, and only on the
// transition call.
func (c *Clock) IsExpiredEvaluatedOnce(t *Timer) bool {
	if t == nil {
		c.violate("IsExpiredEvaluatedOnce", "nil timer")
		return false
	}
	if t.evaluated {
		return false
	}
	now := c.now()
	if now-t.start >= t.interval {
		t.evaluated = true
		if c.logger != nil {
			c.emit(log.Event{
				Timestamp: time.Now(),
				ClockID:   c.id,
				Category:  log.CategoryOneShotConsumed,
				Timer:     &log.TimerEvent{Start: t.start, Interval: t.interval, Now: now},
			})
		}
		return true
	}
	return false
}
