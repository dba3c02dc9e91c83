// Package swtimer implements polled countdown timers driven by an external
// 32-bit tick source.
//
// A Timer is a small value record (start tick, interval, one-shot flag) that
// is armed with Set and then polled with IsExpired, Remaining, or
// IsExpiredEvaluatedOnce. There is no scheduler, no callback, and no
// background activity: the caller owns the poll loop, exactly as in a bare
// embedded main loop.
//
// # Clock Source
//
// Time comes from a caller-supplied ClockFunc returning the current tick
// count as a uint32. The tick unit (milliseconds, microseconds, ...) is
// defined by the application and must be used consistently for all
// intervals. The source must be monotonic modulo 2^32: it may wrap from
// math.MaxUint32 back to 0, but must never otherwise jump backward.
//
// The primary API binds the source into an immutable Clock:
//
//	clk, err := swtimer.NewClock(millis)
//	if err != nil {
//	    // nil clock function
//	}
//
//	var t swtimer.Timer
//	clk.Set(&t, 1000) // 1 second at millisecond ticks
//
//	for {
//	    if clk.IsExpired(&t) {
//	        // handle timeout
//	    }
//	}
//
// For the embedded-style call pattern, Init installs a process-wide default
// binding and the package-level Set/IsExpired/Remaining/
// IsExpiredEvaluatedOnce operate on it.
//
// # Wraparound
//
// Elapsed time is computed as now - start using native uint32 modular
// subtraction. When the counter wraps mid-countdown the subtraction still
// yields the true elapsed tick count, so no special-case branch exists
// anywhere in the package. A timer is assumed to be queried within one full
// 2^32-tick period of being armed.
//
// # One-Shot Evaluation
//
// IsExpired is level-triggered: once the interval has elapsed it reports
// true on every call until the timer is re-armed. IsExpiredEvaluatedOnce is
// the edge-triggered variant: it reports true exactly once per arming, on
// the first call that observes expiry, and false before and after. Set
// re-arms the timer and re-enables the one-shot edge.
//
// # Contract
//
// A Timer is meaningful only after at least one Set. Querying a timer that
// was never armed is a contract violation and its result carries no
// meaning; the package does not special-case it. (The zero-value Timer has
// interval 0 and therefore reports expired, but callers must not rely on
// that.)
//
// Precondition violations (nil clock function, nil timer, package-level use
// before Init) are routed through a configurable ViolationHandler; the
// default panics. See SetViolationHandler.
//
// # Concurrency
//
// Operations take no locks. Distinct Timer instances share no mutable state
// and may be used from different goroutines freely, provided the ClockFunc
// itself is safe for concurrent calls. A single Timer instance is not safe
// for concurrent Set or IsExpiredEvaluatedOnce without external
// synchronization: Set is a multi-field write and the one-shot check is a
// read-then-write sequence.
package swtimer
