package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "08:00", cfg.Schedule.MorningStart)
	assert.Equal(t, "18:30", cfg.Schedule.DayCutoff)
}

func TestLoad_ScheduleOverrides(t *testing.T) {
	t.Setenv("SLOT_AFTERNOON_END", "19:30")
	t.Setenv("SUNDAY_CLOSED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "19:30", cfg.Schedule.AfternoonEnd)
	assert.False(t, cfg.Schedule.SundayClosed)
}

// A typo'd slot value must fail startup, not silently close the shop.
func TestLoad_MalformedScheduleRejected(t *testing.T) {
	t.Setenv("SLOT_DAY_CUTOFF", "18h30")

	_, err := Load()
	assert.Error(t, err)
}
