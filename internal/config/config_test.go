package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hitsquads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultEncounter(t *testing.T) {
	cfg := DefaultEncounter()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, 500*time.Millisecond, cfg.Loop.TickInterval)
	assert.Equal(t, 2000, cfg.Session.Reward)
	assert.Equal(t, 3*time.Second, cfg.Session.RewardDelay)
	assert.Equal(t, 4, cfg.Session.Population.CeilingMin)
	assert.Equal(t, 12, cfg.Session.Population.CeilingMax)
	assert.Equal(t, []int{80, 50, 32, 18}, cfg.Session.Population.Spawn.PassengerChances)
}

func TestLoadEncounter_Missing(t *testing.T) {
	cfg, err := LoadEncounter(filepath.Join(t.TempDir(), "absent.yaml"))

	require.ErrorIs(t, err, ErrConfigMissing)
	assert.Equal(t, DefaultEncounter(), cfg)
}

func TestLoadEncounter_OverridesKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
metrics_addr: ":9200"
loop:
  tick_interval: 250ms
session:
  reward_delay: 5s
  population:
    foot_cull_distance: 90
    spawn:
      passenger_chances: [100]
world:
  vehicle_seats:
    SPEEDO: 2
`)

	cfg, err := LoadEncounter(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":9200", cfg.MetricsAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.Loop.TickInterval)
	assert.Equal(t, 25*time.Millisecond, cfg.Loop.TaskInterval, "unset keys keep defaults")
	assert.Equal(t, 5*time.Second, cfg.Session.RewardDelay)
	assert.Equal(t, 2000, cfg.Session.Reward)
	assert.InDelta(t, 90, cfg.Session.Population.FootCullDistance, 0)
	assert.InDelta(t, 300, cfg.Session.Population.VehicleCullDistance, 0)
	assert.Equal(t, []int{100}, cfg.Session.Population.Spawn.PassengerChances)
	assert.Equal(t, 400, cfg.Session.Population.Spawn.EliteHealth)
	assert.Equal(t, 2, cfg.World.VehicleSeats["SPEEDO"])
	assert.Equal(t, 0, cfg.World.VehicleSeats["BMX"], "map entries merge")
}

func TestLoadEncounter_ParseError(t *testing.T) {
	path := writeConfig(t, "loop: [not, a, mapping\n")

	cfg, err := LoadEncounter(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), "parsing config")
	assert.Equal(t, DefaultEncounter(), cfg)
}

func TestLoadEncounter_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty ceiling range", "session:\n  population:\n    ceiling_min: 5\n    ceiling_max: 5\n", "ceiling range"},
		{"zero tick", "loop:\n  tick_interval: 0s\n", "tick_interval"},
		{"no passenger chances", "session:\n  population:\n    spawn:\n      passenger_chances: []\n", "passenger_chances"},
		{"negative reward", "session:\n  reward: -1\n", "reward"},
		{"zero cull distance", "session:\n  population:\n    foot_cull_distance: 0\n", "cull distances"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadEncounter(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Equal(t, DefaultEncounter(), cfg)
		})
	}
}

func TestLoadEncounter_SampleFile(t *testing.T) {
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	path := filepath.Join(filepath.Dir(file), "..", "..", "config", "hitsquads.yaml")

	cfg, err := LoadEncounter(path)
	require.NoError(t, err)
	assert.Equal(t, ":9102", cfg.MetricsAddr)
	assert.Equal(t, "HITMEN", cfg.Session.Population.Spawn.GroupName)
	assert.Equal(t, 750*time.Millisecond, cfg.Session.Population.FadeDuration)
}
