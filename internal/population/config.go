package population

import (
	"time"

	"github.com/udisondev/hitsquads/internal/marker"
	"github.com/udisondev/hitsquads/internal/spawn"
)

// Config tunes the population controller. Probabilities are expressed as
// "draw in [0, Roll) below Chance" so both historical balances can be expressed.
type Config struct {
	// Agents further than these from the subject are culled.
	VehicleCullDistance float32 `yaml:"vehicle_cull_distance"`
	FootCullDistance    float32 `yaml:"foot_cull_distance"`

	// A spawn is attempted when a draw in [0, SpawnRoll) is below SpawnChance.
	SpawnRoll   int `yaml:"spawn_roll"`
	SpawnChance int `yaml:"spawn_chance"`

	// VehicleSpawnPercent is the d100 threshold for a vehicle spawn.
	VehicleSpawnPercent int `yaml:"vehicle_spawn_percent"`

	// The ceiling is drawn uniformly from [CeilingMin, CeilingMax).
	CeilingMin int `yaml:"ceiling_min"`
	CeilingMax int `yaml:"ceiling_max"`

	ShowMarkers  bool          `yaml:"show_markers"`
	FadeSteps    int           `yaml:"fade_steps"`
	FadeDuration time.Duration `yaml:"fade_duration"`

	// ShowStatus shows the engageable count and ceiling as a subtitle every tick.
	ShowStatus     bool          `yaml:"show_status"`
	StatusDuration time.Duration `yaml:"status_duration"`

	// Agents not in cover that moved less than StuckThreshold over
	// StuckCheckInterval are flagged stuck. Advisory only.
	StuckCheckInterval time.Duration `yaml:"stuck_check_interval"`
	StuckThreshold     float32       `yaml:"stuck_threshold"`

	Spawn spawn.Config `yaml:"spawn"`
}

// DefaultConfig returns the stock balance.
func DefaultConfig() Config {
	return Config{
		VehicleCullDistance: 300,
		FootCullDistance:    125,
		SpawnRoll:           500000,
		SpawnChance:         42500,
		VehicleSpawnPercent: 25,
		CeilingMin:          4,
		CeilingMax:          12,
		ShowMarkers:         true,
		FadeSteps:           marker.DefaultFadeSteps,
		FadeDuration:        marker.DefaultFadeDuration,
		ShowStatus:          false,
		StatusDuration:      time.Second,
		StuckCheckInterval:  3 * time.Second,
		StuckThreshold:      0.1,
		Spawn:               spawn.DefaultConfig(),
	}
}
