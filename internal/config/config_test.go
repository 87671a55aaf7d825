package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 7.0, cfg.Engine.RegularDailyHours)
	assert.Equal(t, 5.0, cfg.Engine.RamadanDailyHours)
	assert.Equal(t, "first_match", cfg.Engine.LeaveTiebreak)
}

func TestLoad_EngineOverrides(t *testing.T) {
	t.Setenv("REGULAR_DAILY_HOURS", "8")
	t.Setenv("RAMADAN_DAILY_HOURS", "6")
	t.Setenv("LEAVE_TIEBREAK", "longest")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Engine.RegularDailyHours)
	assert.Equal(t, 6.0, cfg.Engine.RamadanDailyHours)
	assert.Equal(t, "longest", cfg.Engine.LeaveTiebreak)
}

// An unknown tie-break in the environment is a deployment mistake and must
// fail startup instead of silently falling back.
func TestLoad_RejectsUnknownLeaveTiebreak(t *testing.T) {
	t.Setenv("LEAVE_TIEBREAK", "alphabetical")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LEAVE_TIEBREAK")
}

func TestLoad_RejectsBadQuotas(t *testing.T) {
	cases := []struct {
		key   string
		value string
	}{
		{"REGULAR_DAILY_HOURS", "0"},
		{"REGULAR_DAILY_HOURS", "24"},
		{"RAMADAN_DAILY_HOURS", "-1"},
		{"RAMADAN_DAILY_HOURS", "not-a-number"},
	}
	for _, c := range cases {
		t.Run(c.key+"="+c.value, func(t *testing.T) {
			t.Setenv(c.key, c.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
