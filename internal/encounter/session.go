// Package encounter maps the user's toggle onto hostile encounters: it picks
// the attacking faction, announces it, and pays out when the encounter ends.
package encounter

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/udisondev/hitsquads/internal/faction"
	"github.com/udisondev/hitsquads/internal/metrics"
	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/population"
	"github.com/udisondev/hitsquads/internal/rng"
	"github.com/udisondev/hitsquads/internal/tick"
	"github.com/udisondev/hitsquads/internal/world"
)

// ErrNotActive is returned by Stop when no encounter is running.
var ErrNotActive = errors.New("no active encounter")

// Config tunes the session.
type Config struct {
	// Reward is granted RewardDelay after an encounter ends.
	Reward      int           `yaml:"reward"`
	RewardDelay time.Duration `yaml:"reward_delay"`

	// NoticeDuration is how long the retreat and reward subtitles stay up.
	NoticeDuration time.Duration `yaml:"notice_duration"`

	Population population.Config `yaml:"population"`
}

// DefaultConfig returns the stock session settings.
func DefaultConfig() Config {
	return Config{
		Reward:         2000,
		RewardDelay:    3 * time.Second,
		NoticeDuration: 3 * time.Second,
		Population:     population.DefaultConfig(),
	}
}

// Session is the single source of truth for whether an encounter is running.
// It owns its population controller. Not safe for concurrent use.
type Session struct {
	engine     world.Engine
	catalog    *faction.Catalog
	src        rng.Source
	sched      population.Scheduler
	cfg        Config
	controller *population.Controller
	metrics    *metrics.Collector

	id        uuid.UUID
	startedAt time.Time
}

// NewSession creates an idle session. sched may be nil: marker fade-ins are
// then skipped and the reward is paid when the encounter stops.
func NewSession(engine world.Engine, catalog *faction.Catalog, src rng.Source, sched population.Scheduler, cfg Config) *Session {
	return &Session{
		engine:     engine,
		catalog:    catalog,
		src:        src,
		sched:      sched,
		cfg:        cfg,
		controller: population.NewController(engine, src, sched, cfg.Population),
	}
}

// SetMetrics attaches a metrics collector to the session and its controller.
func (s *Session) SetMetrics(m *metrics.Collector) {
	s.metrics = m
	s.controller.SetMetrics(m)
}

// State returns the encounter state.
func (s *Session) State() model.EncounterState {
	return s.controller.State()
}

// ID returns the id of the running (or last) encounter.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Controller returns the owned population controller.
func (s *Session) Controller() *population.Controller {
	return s.controller
}

// Toggle starts an encounter when idle and stops it when active.
func (s *Session) Toggle(now time.Time) error {
	if s.State() == model.EncounterActive {
		return s.Stop(now)
	}
	return s.Start(now)
}

// Start picks a random faction, arms the controller and announces the attack.
func (s *Session) Start(now time.Time) error {
	def, err := s.catalog.Get(s.catalog.RandomID(s.src))
	if err != nil {
		return fmt.Errorf("starting encounter: %w", err)
	}
	if err := s.controller.Start(def); err != nil {
		return fmt.Errorf("starting encounter: %w", err)
	}

	s.id = uuid.New()
	s.startedAt = now

	s.engine.Notify(fmt.Sprintf("%s %d active hostiles!", def.Announcement, s.controller.Ceiling()))

	slog.Info("encounter started",
		"encounter", s.id,
		"faction", def.Name,
		"ceiling", s.controller.Ceiling())

	return nil
}

// Stop drains the population, announces the retreat and schedules the reward.
func (s *Session) Stop(now time.Time) error {
	if s.State() != model.EncounterActive {
		return ErrNotActive
	}

	name := s.controller.Faction().Name
	spawned, culled := s.controller.Totals()
	drained := s.controller.Stop()

	s.engine.Subtitle("You've survived the attack. All enemies are retreating.", s.cfg.NoticeDuration)

	reward := s.cfg.Reward
	if reward > 0 {
		pay := func(time.Time) {
			s.engine.GrantCurrency(reward)
			s.engine.Subtitle(RewardText(reward), s.cfg.NoticeDuration)
		}
		// Without a scheduler there is nothing to wait on; pay at once.
		if s.sched == nil {
			pay(now)
		} else {
			s.sched.Enqueue(tick.Delayed(now.Add(s.cfg.RewardDelay), pay))
		}
	}

	slog.Info("encounter stopped",
		"encounter", s.id,
		"faction", name,
		"duration", now.Sub(s.startedAt),
		"spawned", spawned,
		"culled", culled,
		"drained", drained,
		"reward", reward)

	return nil
}

// Tick forwards to the controller while an encounter is running.
func (s *Session) Tick(now time.Time) (population.TickReport, error) {
	if s.State() != model.EncounterActive {
		return population.TickReport{}, nil
	}
	report, err := s.controller.Tick(now)
	if err != nil {
		return report, fmt.Errorf("encounter %s: %w", s.id, err)
	}
	return report, nil
}

// RewardText is the payout notice.
func RewardText(amount int) string {
	return fmt.Sprintf("You've been awarded $%s for surviving the attack.", humanize.Comma(int64(amount)))
}
