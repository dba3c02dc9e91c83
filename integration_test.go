package softwaretimer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rici4kubicek/software-timer/internal/ticktest"
	"github.com/rici4kubicek/software-timer/pkg/config"
	"github.com/rici4kubicek/software-timer/pkg/log"
	"github.com/rici4kubicek/software-timer/pkg/swtimer"
)

// TestE2E_ConfigToEventLog wires the whole stack together: a YAML config
// selects the violation policy and a CBOR event sink, a clock is bound with
// the resulting logger, timers run through a full arm/expire/one-shot
// cycle, and the captured trace is read back from disk.
func TestE2E_ConfigToEventLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "timers.tlog")
	cfgPath := filepath.Join(dir, "swtimer.yaml")

	cfgData := "tick_unit: ticks\nviolation_policy: ignore\nevent_log: " + logPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	eventLogger, closeFn, err := cfg.BuildLogger(nil)
	require.NoError(t, err)
	require.NotNil(t, eventLogger)

	tick := ticktest.New()
	clk, err := swtimer.NewClock(tick.Now,
		swtimer.WithLogger(eventLogger),
		swtimer.WithViolationHandler(cfg.ViolationHandler(nil)))
	require.NoError(t, err)

	// Full lifecycle: arm, poll below the interval, expire, consume the
	// one-shot edge, and trip one violation on the way.
	var timer swtimer.Timer
	clk.Set(&timer, 100)

	tick.Advance(60)
	assert.False(t, clk.IsExpired(&timer))
	assert.Equal(t, uint32(40), clk.Remaining(&timer))

	tick.Advance(40)
	assert.True(t, clk.IsExpired(&timer))
	assert.True(t, clk.IsExpiredEvaluatedOnce(&timer))
	assert.False(t, clk.IsExpiredEvaluatedOnce(&timer))

	clk.Set(nil, 5) // violation, ignored per policy

	require.NoError(t, closeFn())

	// The trace on disk reflects the lifecycle in order.
	events, err := log.ReadAll(logPath, log.Filter{})
	require.NoError(t, err)
	require.Len(t, events, 4)

	assert.Equal(t, log.CategoryClockBound, events[0].Category)

	assert.Equal(t, log.CategoryTimerArmed, events[1].Category)
	require.NotNil(t, events[1].Timer)
	assert.Equal(t, uint32(100), events[1].Timer.Interval)

	assert.Equal(t, log.CategoryOneShotConsumed, events[2].Category)
	require.NotNil(t, events[2].Timer)
	assert.Equal(t, uint32(100), events[2].Timer.Now)

	assert.Equal(t, log.CategoryViolation, events[3].Category)
	require.NotNil(t, events[3].Violation)
	assert.Equal(t, "Set", events[3].Violation.Op)

	for _, ev := range events {
		assert.Equal(t, clk.ID(), ev.ClockID)
	}

	// Filtered read: only the one-shot consumption.
	cat := log.CategoryOneShotConsumed
	consumed, err := log.ReadAll(logPath, log.Filter{Category: &cat})
	require.NoError(t, err)
	assert.Len(t, consumed, 1)
}
