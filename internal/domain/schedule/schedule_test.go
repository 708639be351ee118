package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func TestGridTimes_Weekday(t *testing.T) {
	cfg := DefaultConfig()
	tuesday := date(2026, time.September, 1)

	grid := cfg.GridTimes(tuesday)
	require.Len(t, grid, 16)
	assert.Equal(t, "08:00", grid[0])
	assert.Equal(t, "11:30", grid[7])
	assert.Equal(t, "14:00", grid[8])
	assert.Equal(t, "17:30", grid[15])
}

func TestGridTimes_SaturdayMorningOnly(t *testing.T) {
	cfg := DefaultConfig()
	saturday := date(2026, time.September, 5)

	grid := cfg.GridTimes(saturday)
	require.Len(t, grid, 8)
	for _, hm := range grid {
		assert.Less(t, hm, "12:00", "afternoon slot %s offered on Saturday", hm)
	}
}

func TestCandidateTimes_SundayClosed(t *testing.T) {
	cfg := DefaultConfig()
	sunday := date(2026, time.September, 6)
	now := date(2026, time.August, 28)

	assert.Empty(t, cfg.CandidateTimes(sunday, now))
	assert.False(t, cfg.DayEligible(sunday, now))
}

func TestCandidateTimes_PastDate(t *testing.T) {
	cfg := DefaultConfig()
	now := at(date(2026, time.September, 1), 9, 0)

	assert.Empty(t, cfg.CandidateTimes(date(2026, time.August, 31), now))
}

func TestCandidateTimes_SameDayDropsElapsedSlots(t *testing.T) {
	cfg := DefaultConfig()
	day := date(2026, time.September, 1)
	now := at(day, 10, 0)

	times := cfg.CandidateTimes(day, now)
	require.NotEmpty(t, times)
	// 10:00 itself is not strictly after now; 10:30 is the first candidate.
	assert.Equal(t, "10:30", times[0])
	for _, hm := range times {
		assert.Greater(t, hm, "10:00")
	}
}

func TestCandidateTimes_AfterCutoffDayIsClosed(t *testing.T) {
	cfg := DefaultConfig()
	day := date(2026, time.September, 1)

	assert.Empty(t, cfg.CandidateTimes(day, at(day, 19, 0)))
	assert.Empty(t, cfg.CandidateTimes(day, at(day, 18, 30)))
	assert.NotEmpty(t, cfg.CandidateTimes(day, at(day, 18, 29)))
}

func TestCandidateTimes_FutureDateFullGrid(t *testing.T) {
	cfg := DefaultConfig()
	now := at(date(2026, time.August, 28), 19, 0)

	times := cfg.CandidateTimes(date(2026, time.September, 1), now)
	assert.Len(t, times, 16)
}

func TestSlotInstant(t *testing.T) {
	day := date(2026, time.September, 1)

	instant, err := SlotInstant(day, "14:30")
	require.NoError(t, err)
	assert.Equal(t, at(day, 14, 30), instant)

	_, err = SlotInstant(day, "not-a-time")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"malformed cutoff", func(c *Config) { c.DayCutoff = "18h30" }},
		{"malformed morning start", func(c *Config) { c.MorningStart = "eight" }},
		{"zero step", func(c *Config) { c.StepMinutes = 0 }},
		{"negative step", func(c *Config) { c.StepMinutes = -30 }},
		{"inverted morning block", func(c *Config) { c.MorningStart = "11:30"; c.MorningEnd = "08:00" }},
		{"inverted afternoon block", func(c *Config) { c.AfternoonStart = "17:30"; c.AfternoonEnd = "14:00" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigurableRules(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SaturdayMorningOnly = false
	cfg.SundayClosed = false

	saturday := date(2026, time.September, 5)
	sunday := date(2026, time.September, 6)
	now := date(2026, time.August, 28)

	assert.Len(t, cfg.GridTimes(saturday), 16)
	assert.Len(t, cfg.CandidateTimes(sunday, now), 16)
}
