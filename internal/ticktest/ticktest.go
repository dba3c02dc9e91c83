// Package ticktest provides a manually driven tick source for timer tests.
//
// The clock only moves when a test advances it, so expiry boundaries and
// counter wraparound can be exercised deterministically. Advance wraps at
// 2^32 exactly like a real 32-bit tick counter.
package ticktest

// Clock is a manual 32-bit tick counter. Its Now method satisfies
// swtimer.ClockFunc. The zero value starts at tick 0.
type Clock struct {
	now uint32
}

// New returns a clock at tick 0.
func New() *Clock {
	return &Clock{}
}

// At returns a clock positioned at the given tick, for wraparound scenarios
// that start near the top of the counter range.
func At(now uint32) *Clock {
	return &Clock{now: now}
}

// Now returns the current tick.
func (c *Clock) Now() uint32 {
	return c.now
}

// Advance moves the clock forward by d ticks, wrapping modulo 2^32.
func (c *Clock) Advance(d uint32) {
	c.now += d
}

// Jump repositions the clock at an absolute tick value.
func (c *Clock) Jump(to uint32) {
	c.now = to
}
