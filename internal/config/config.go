package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/hitsquads/internal/encounter"
	"github.com/udisondev/hitsquads/internal/tick"
	"github.com/udisondev/hitsquads/internal/world"
)

// ErrConfigMissing is returned together with defaults when the config file does not exist.
var ErrConfigMissing = errors.New("config file not found")

// Encounter holds all configuration for the hitsquads process.
type Encounter struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Prometheus endpoint, disabled when empty (e.g. ":9102")
	MetricsAddr string `yaml:"metrics_addr"`

	// Per-tick CSV reports, disabled when empty
	TelemetryDir string `yaml:"telemetry_dir"`

	// Seed for encounter randomness; 0 seeds from the clock
	Seed uint64 `yaml:"seed"`

	Loop    tick.Config      `yaml:"loop"`
	Session encounter.Config `yaml:"session"`
	World   world.SimConfig  `yaml:"world"`
}

// DefaultEncounter returns Encounter config with sensible defaults.
func DefaultEncounter() Encounter {
	return Encounter{
		LogLevel: "info",
		Loop:     tick.DefaultConfig(),
		Session:  encounter.DefaultConfig(),
		World:    world.DefaultSimConfig(),
	}
}

// Validate checks the values the loop and controller cannot recover from.
func (c Encounter) Validate() error {
	pop := c.Session.Population
	switch {
	case c.Loop.TickInterval <= 0:
		return fmt.Errorf("loop.tick_interval must be positive, got %s", c.Loop.TickInterval)
	case c.Loop.TaskInterval <= 0:
		return fmt.Errorf("loop.task_interval must be positive, got %s", c.Loop.TaskInterval)
	case pop.CeilingMin < 0 || pop.CeilingMax <= pop.CeilingMin:
		return fmt.Errorf("ceiling range [%d, %d) is empty", pop.CeilingMin, pop.CeilingMax)
	case pop.SpawnRoll <= 0:
		return fmt.Errorf("spawn_roll must be positive, got %d", pop.SpawnRoll)
	case pop.FootCullDistance <= 0 || pop.VehicleCullDistance <= 0:
		return fmt.Errorf("cull distances must be positive")
	case len(pop.Spawn.PassengerChances) == 0:
		return fmt.Errorf("passenger_chances must not be empty")
	case pop.Spawn.EliteArmorMax <= pop.Spawn.EliteArmorMin:
		return fmt.Errorf("elite armor range [%d, %d) is empty", pop.Spawn.EliteArmorMin, pop.Spawn.EliteArmorMax)
	case pop.Spawn.CashMax <= 0:
		return fmt.Errorf("cash_max must be positive, got %d", pop.Spawn.CashMax)
	case c.Session.Reward < 0:
		return fmt.Errorf("reward must not be negative, got %d", c.Session.Reward)
	case c.Session.RewardDelay < 0:
		return fmt.Errorf("reward_delay must not be negative, got %s", c.Session.RewardDelay)
	}
	return nil
}

// LoadEncounter loads config from a YAML file over the defaults.
// If the file doesn't exist, returns defaults and ErrConfigMissing.
func LoadEncounter(path string) (Encounter, error) {
	cfg := DefaultEncounter()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, fmt.Errorf("%s: %w", path, ErrConfigMissing)
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultEncounter(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return DefaultEncounter(), fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}
