package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/tourneyclock/internal/schedule"
)

func TestFormatSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{60, "01:00"},
		{900, "15:00"},
		{3599, "59:59"},
		{3600, "60:00"},
		{6000, "100:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatSeconds(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestSnapshotFlags(t *testing.T) {
	t.Parallel()

	base := Snapshot{
		Phase:     Ready,
		Index:     1,
		Levels:    3,
		Level:     schedule.NewBlind(2, 75, 150),
		Remaining: 30,
		Duration:  900,
	}

	assert.True(t, base.CanAdvance())
	assert.True(t, base.CanRetreat())
	assert.True(t, base.CanToggle())
	assert.False(t, base.LowTime(), "low time only shows while running")
	assert.Equal(t, "00:30", base.Clock())
	assert.InDelta(t, 870.0/900.0, base.Progress(), 1e-9)

	running := base
	running.Phase = Running
	assert.True(t, running.LowTime())

	running.Remaining = LowTimeSeconds
	assert.False(t, running.LowTime())

	expired := base
	expired.Remaining = 0
	assert.True(t, expired.Expired())
	assert.False(t, expired.CanToggle())

	var idle Snapshot
	assert.False(t, idle.Open())
	assert.False(t, idle.CanAdvance())
	assert.False(t, idle.CanRetreat())
	assert.Zero(t, idle.Progress())
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
	assert.Equal(t, "level-changed", EventLevelChanged.String())
	assert.Equal(t, "Event(9)", Event(9).String())
}
