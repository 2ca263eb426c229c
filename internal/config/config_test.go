package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/gridiron/internal/config"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TELEGRAM_TOKEN", "CHAT_ID", "SEASON", "USE_LIVE_DATA", "ESPN_SITE_URL",
		"ESPN_FANTASY_URL", "ESPN_TIMEOUT", "PORT", "LOG_LEVEL", "SIMULATIONS",
		"SIMULATION_SEED", "CURRENT_WEEK", "CACHE_TTL", "SCHEDULER_TIMEZONE",
	} {
		os.Unsetenv(key)
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := config.New()

	require.NoError(t, err)
	assert.False(t, cfg.TelegramBot.Enabled())
	assert.Equal(t, 2025, cfg.ESPNAPI.Season)
	assert.False(t, cfg.ESPNAPI.UseLiveData)
	assert.Equal(t, "https://site.api.espn.com/apis", cfg.ESPNAPI.SiteURL)
	assert.Equal(t, 10*time.Second, cfg.ESPNAPI.Timeout)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 1000, cfg.Simulation.Runs)
	assert.Equal(t, int64(0), cfg.Simulation.Seed)
	assert.Equal(t, 10, cfg.Simulation.CurrentWeek)
	assert.Equal(t, time.Hour, cfg.Simulation.CacheTTL)
	assert.Equal(t, "America/Chicago", cfg.Scheduler.Timezone)
}

func TestNew_EnvVarOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		assertFn func(t *testing.T, cfg *config.Config)
	}{
		{
			name:    "telegram enabled",
			envVars: map[string]string{"TELEGRAM_TOKEN": "abc", "CHAT_ID": "-100123"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.True(t, cfg.TelegramBot.Enabled())
				assert.Equal(t, int64(-100123), cfg.TelegramBot.ChatID)
			},
		},
		{
			name:    "live data",
			envVars: map[string]string{"USE_LIVE_DATA": "true", "ESPN_TIMEOUT": "2s"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.True(t, cfg.ESPNAPI.UseLiveData)
				assert.Equal(t, 2*time.Second, cfg.ESPNAPI.Timeout)
			},
		},
		{
			name:    "simulation settings",
			envVars: map[string]string{"SIMULATIONS": "50", "SIMULATION_SEED": "42", "CACHE_TTL": "5m"},
			assertFn: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, 50, cfg.Simulation.Runs)
				assert.Equal(t, int64(42), cfg.Simulation.Seed)
				assert.Equal(t, 5*time.Minute, cfg.Simulation.CacheTTL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := config.New()
			require.NoError(t, err)
			tt.assertFn(t, cfg)
		})
	}
}

func TestNew_InvalidValue(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("SIMULATIONS", "lots")

	_, err := config.New()

	assert.Error(t, err)
}
