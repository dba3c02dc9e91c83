package log_test

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rici4kubicek/software-timer/pkg/log"
)

func sampleEvents() []log.Event {
	base := time.Date(2026, 8, 25, 10, 0, 0, 123456789, time.UTC)
	return []log.Event{
		{
			Timestamp: base,
			ClockID:   "clock-a",
			Category:  log.CategoryClockBound,
		},
		{
			Timestamp: base.Add(time.Second),
			ClockID:   "clock-a",
			Category:  log.CategoryTimerArmed,
			Timer:     &log.TimerEvent{Start: 100, Interval: 1000, Now: 100},
		},
		{
			Timestamp: base.Add(2 * time.Second),
			ClockID:   "clock-a",
			Category:  log.CategoryOneShotConsumed,
			Timer:     &log.TimerEvent{Start: 100, Interval: 1000, Now: 1100},
		},
		{
			Timestamp: base.Add(3 * time.Second),
			ClockID:   "clock-b",
			Category:  log.CategoryViolation,
			Violation: &log.ViolationEvent{Op: "Set", Message: "nil timer"},
		},
	}
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timers.tlog")

	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)

	events := sampleEvents()
	for _, ev := range events {
		fl.Log(ev)
	}
	require.NoError(t, fl.Close())

	got, err := log.ReadAll(path, log.Filter{})
	require.NoError(t, err)
	require.Len(t, got, len(events))

	for i, want := range events {
		assert.True(t, got[i].Timestamp.Equal(want.Timestamp),
			"event %d timestamp = %v, want %v", i, got[i].Timestamp, want.Timestamp)
		assert.Equal(t, want.ClockID, got[i].ClockID, "event %d", i)
		assert.Equal(t, want.Category, got[i].Category, "event %d", i)
		assert.Equal(t, want.Timer, got[i].Timer, "event %d", i)
		assert.Equal(t, want.Violation, got[i].Violation, "event %d", i)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timers.tlog")
	events := sampleEvents()

	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)
	fl.Log(events[0])
	require.NoError(t, fl.Close())

	// Re-open: new events append after the existing ones.
	fl, err = log.NewFileLogger(path)
	require.NoError(t, err)
	fl.Log(events[1])
	require.NoError(t, fl.Close())

	got, err := log.ReadAll(path, log.Filter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, log.CategoryClockBound, got[0].Category)
	assert.Equal(t, log.CategoryTimerArmed, got[1].Category)
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timers.tlog")

	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)

	require.NoError(t, fl.Close())
	require.NoError(t, fl.Close())

	// Logging after Close is silently ignored.
	fl.Log(sampleEvents()[0])

	got, err := log.ReadAll(path, log.Filter{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReaderFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timers.tlog")

	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)
	for _, ev := range sampleEvents() {
		fl.Log(ev)
	}
	require.NoError(t, fl.Close())

	t.Run("ByClockID", func(t *testing.T) {
		got, err := log.ReadAll(path, log.Filter{ClockID: "clock-b"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, log.CategoryViolation, got[0].Category)
	})

	t.Run("ByCategory", func(t *testing.T) {
		cat := log.CategoryTimerArmed
		got, err := log.ReadAll(path, log.Filter{Category: &cat})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Timer)
		assert.Equal(t, uint32(1000), got[0].Timer.Interval)
	})

	t.Run("ByTimeRange", func(t *testing.T) {
		start := time.Date(2026, 8, 25, 10, 0, 1, 0, time.UTC)
		end := start.Add(2 * time.Second)
		got, err := log.ReadAll(path, log.Filter{TimeStart: &start, TimeEnd: &end})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("NoMatch", func(t *testing.T) {
		got, err := log.ReadAll(path, log.Filter{ClockID: "no-such-clock"})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestReaderNextEOF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timers.tlog")

	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)
	fl.Log(sampleEvents()[0])
	require.NoError(t, fl.Close())

	r, err := log.NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}
