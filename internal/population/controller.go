// Package population keeps the hostile population of a running encounter
// between zero and its ceiling: it culls agents that died or left range and
// spawns new ones under a per-tick probability gate.
package population

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/hitsquads/internal/faction"
	"github.com/udisondev/hitsquads/internal/marker"
	"github.com/udisondev/hitsquads/internal/metrics"
	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/placement"
	"github.com/udisondev/hitsquads/internal/rng"
	"github.com/udisondev/hitsquads/internal/spawn"
	"github.com/udisondev/hitsquads/internal/tick"
	"github.com/udisondev/hitsquads/internal/world"
)

var (
	// ErrAlreadyActive is returned by Start while an encounter is running.
	ErrAlreadyActive = errors.New("encounter already active")

	// ErrNoFaction is returned by Start without a faction.
	ErrNoFaction = errors.New("no faction")
)

// Scheduler accepts cooperative tasks. *tick.Manager satisfies it.
type Scheduler interface {
	Enqueue(t tick.Task)
}

// TickReport summarizes one controller tick.
type TickReport struct {
	Tick uint64
	Time time.Time

	Ceiling    int
	Registered int
	Engageable int
	Stuck      int

	CulledDead       int
	CulledOutOfRange int

	SpawnAttempted bool
	SpawnKind      model.SpawnKind
	Spawned        int
	SpawnFailure   string
}

// Culled returns the number of agents culled this tick.
func (r TickReport) Culled() int {
	return r.CulledDead + r.CulledOutOfRange
}

type removal struct {
	slot   Slot
	agent  model.AgentHandle
	reason string
}

// Controller owns the managed agents of one encounter at a time and is their
// only writer. Not safe for concurrent use: drive it from one loop.
type Controller struct {
	engine  world.Engine
	src     rng.Source
	sched   Scheduler
	cfg     Config
	factory *spawn.Factory
	metrics *metrics.Collector

	registry *Registry

	state   model.EncounterState
	faction *faction.Definition
	ceiling int
	ticks   uint64
	spawned int
	culled  int
}

// NewController creates an idle controller. It builds its own agent factory,
// so the hostile relationship group lives as long as the controller.
func NewController(engine world.Engine, src rng.Source, sched Scheduler, cfg Config) *Controller {
	placer := placement.NewPlacer(engine, src)
	return &Controller{
		engine:   engine,
		src:      src,
		sched:    sched,
		cfg:      cfg,
		factory:  spawn.NewFactory(engine, placer, src, cfg.Spawn),
		registry: NewRegistry(),
		state:    model.EncounterIdle,
	}
}

// SetMetrics attaches a metrics collector. Nil disables metrics.
func (c *Controller) SetMetrics(m *metrics.Collector) {
	c.metrics = m
}

// State returns the encounter state.
func (c *Controller) State() model.EncounterState { return c.state }

// Ceiling returns the population ceiling, 0 when idle.
func (c *Controller) Ceiling() int { return c.ceiling }

// Faction returns the active faction, nil when idle.
func (c *Controller) Faction() *faction.Definition { return c.faction }

// Registry exposes the managed agents for inspection.
func (c *Controller) Registry() *Registry { return c.registry }

// Factory returns the agent factory.
func (c *Controller) Factory() *spawn.Factory { return c.factory }

// Totals returns agents spawned and culled since Start.
func (c *Controller) Totals() (spawned, culled int) { return c.spawned, c.culled }

// Start arms the controller for def and rolls the population ceiling.
func (c *Controller) Start(def *faction.Definition) error {
	if c.state == model.EncounterActive {
		return ErrAlreadyActive
	}
	if def == nil {
		return ErrNoFaction
	}
	if err := def.Validate(); err != nil {
		return fmt.Errorf("starting population: %w", err)
	}

	// Leftovers would belong to a previous encounter.
	if n := c.registry.Clear(); n > 0 {
		slog.Warn("registry not empty on start", "agents", n)
	}

	c.faction = def
	c.ceiling = rng.Between(c.src, c.cfg.CeilingMin, c.cfg.CeilingMax)
	c.ticks = 0
	c.spawned = 0
	c.culled = 0
	c.state = model.EncounterActive

	c.metrics.EncounterStarted(c.ceiling)

	slog.Info("population controller started",
		"faction", def.Name,
		"ceiling", c.ceiling)

	return nil
}

// Tick runs one population pass: classify every managed agent, cull the ones
// that are dead or out of range, then maybe spawn. A slot freed this tick is
// refilled on a later tick at the earliest.
//
// Transient spawn failures are reported in TickReport; only programmer errors
// such as an empty weapon table are returned.
func (c *Controller) Tick(now time.Time) (TickReport, error) {
	if c.state != model.EncounterActive {
		return TickReport{}, nil
	}

	c.ticks++
	report := TickReport{Tick: c.ticks, Time: now, Ceiling: c.ceiling}

	removals := c.classify(now, &report)
	c.cleanup(removals)

	if c.cfg.ShowStatus {
		c.engine.Subtitle(fmt.Sprintf("Engageable: %d / Ceiling: %d", report.Engageable, c.ceiling), c.cfg.StatusDuration)
	}

	var err error
	if report.Engageable < c.ceiling {
		err = c.trySpawn(now, &report)
	}

	report.Registered = c.registry.Len()
	c.metrics.SetPopulation(report.Engageable, report.Registered)

	if tick.IsDebugEnabled() {
		slog.Debug("population tick",
			"tick", report.Tick,
			"registered", report.Registered,
			"engageable", report.Engageable,
			"ceiling", report.Ceiling,
			"culled", report.Culled(),
			"spawned", report.Spawned)
	}

	return report, err
}

// classify is the single read pass over the registry. Culled agents lose
// their markers here; their slots are only queued.
func (c *Controller) classify(now time.Time, report *TickReport) []removal {
	subject := c.engine.SubjectPosition()
	var removals []removal
	var orphans map[model.VehicleHandle]model.MarkerHandle

	c.registry.Each(func(s Slot, e *Entry, m *Markers, t *Tracking) {
		alive := c.engine.AgentExists(e.Agent) && c.engine.AgentAlive(e.Agent)
		pos := c.engine.AgentPosition(e.Agent)

		threshold := c.cfg.FootCullDistance
		if c.engine.AgentInVehicle(e.Agent) {
			threshold = c.cfg.VehicleCullDistance
		}

		if !alive || pos.DistanceTo(subject) >= threshold {
			reason := metrics.CullOutOfRange
			if !alive {
				reason = metrics.CullDead
			}
			if m.Vehicle.Valid() && e.Vehicle.Valid() {
				if orphans == nil {
					orphans = make(map[model.VehicleHandle]model.MarkerHandle)
				}
				orphans[e.Vehicle] = m.Vehicle
				m.Vehicle = 0
			}
			c.detachMarkers(m)
			removals = append(removals, removal{slot: s, agent: e.Agent, reason: reason})
			return
		}

		report.Engageable++
		if c.track(now, e, t, pos) {
			report.Stuck++
		}
	})

	if len(orphans) > 0 {
		c.handOverVehicleMarkers(orphans, removals)
	}

	for _, r := range removals {
		if r.reason == metrics.CullDead {
			report.CulledDead++
		} else {
			report.CulledOutOfRange++
		}
	}
	return removals
}

// handOverVehicleMarkers moves the vehicle marker of a culled carrier to a
// crew member still seated in that vehicle. Markers with no such member are deleted.
func (c *Controller) handOverVehicleMarkers(orphans map[model.VehicleHandle]model.MarkerHandle, removals []removal) {
	culled := make(map[Slot]bool, len(removals))
	for _, r := range removals {
		culled[r.slot] = true
	}

	c.registry.Each(func(s Slot, e *Entry, m *Markers, _ *Tracking) {
		mk, ok := orphans[e.Vehicle]
		if !ok || culled[s] || m.Vehicle.Valid() || !c.engine.AgentInVehicle(e.Agent) {
			return
		}
		m.Vehicle = mk
		delete(orphans, e.Vehicle)
	})

	for _, mk := range orphans {
		c.engine.DeleteMarker(mk)
	}
}

// track refreshes the stuck flag once per StuckCheckInterval.
func (c *Controller) track(now time.Time, e *Entry, t *Tracking, pos model.Position) bool {
	if c.cfg.StuckCheckInterval <= 0 {
		return false
	}
	if t.LastCheck.IsZero() {
		t.LastPosition = pos
		t.LastCheck = now
		return false
	}
	if now.Sub(t.LastCheck) < c.cfg.StuckCheckInterval {
		return t.Stuck
	}

	t.LastCheck = now
	if c.engine.AgentInCover(e.Agent) {
		t.Stuck = false
		return false
	}

	t.Stuck = pos.DistanceTo(t.LastPosition) < c.cfg.StuckThreshold
	t.LastPosition = pos
	if t.Stuck && tick.IsDebugEnabled() {
		slog.Debug("agent not moving", "agent", e.Agent, "position", pos)
	}
	return t.Stuck
}

// cleanup is the second removal phase: hand culled agents back to the engine.
func (c *Controller) cleanup(removals []removal) {
	for _, r := range removals {
		if c.engine.AgentExists(r.agent) {
			c.engine.ReleaseAgent(r.agent)
		}
		c.registry.Remove(r.slot)
		c.metrics.Culled(r.reason, 1)
		c.culled++
	}
}

func (c *Controller) detachMarkers(m *Markers) {
	if m.Agent.Valid() {
		c.engine.DeleteMarker(m.Agent)
		m.Agent = 0
	}
	if m.Vehicle.Valid() {
		c.engine.DeleteMarker(m.Vehicle)
		m.Vehicle = 0
	}
}

// trySpawn runs the compound spawn gate and, when it passes, one spawn.
func (c *Controller) trySpawn(now time.Time, report *TickReport) error {
	if c.src.IntN(c.cfg.SpawnRoll) >= c.cfg.SpawnChance {
		return nil
	}

	report.SpawnAttempted = true
	report.SpawnKind = model.SpawnOnFoot
	if rng.Percent(c.src, c.cfg.VehicleSpawnPercent) {
		report.SpawnKind = model.SpawnVehicle
	}

	var err error
	if report.SpawnKind == model.SpawnVehicle {
		var squad *spawn.Squad
		squad, err = c.factory.SpawnVehicleAgent(c.faction, model.TierRegular)
		if err == nil {
			c.registerSquad(now, squad)
			report.Spawned = len(squad.Members)
		}
	} else {
		var recruit spawn.Recruit
		recruit, err = c.factory.SpawnFootAgent(c.faction, model.TierRegular)
		if err == nil {
			c.registerRecruit(now, recruit, model.SpawnOnFoot, 0)
			report.Spawned = 1
		}
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, spawn.ErrSpawnAborted):
		report.SpawnFailure = metrics.FailureAborted
		slog.Debug("spawn aborted", "kind", report.SpawnKind, "error", err)
	case errors.Is(err, world.ErrInvalidModel):
		report.SpawnFailure = metrics.FailureInvalidModel
		slog.Warn("spawn skipped", "kind", report.SpawnKind, "faction", c.faction.Name, "error", err)
	default:
		report.SpawnFailure = metrics.FailureOther
		c.metrics.SpawnFailed(report.SpawnFailure)
		return fmt.Errorf("spawning %s agent: %w", report.SpawnKind, err)
	}
	c.metrics.SpawnFailed(report.SpawnFailure)
	return nil
}

func (c *Controller) registerSquad(now time.Time, squad *spawn.Squad) {
	var vehicleMarker model.MarkerHandle
	if c.cfg.ShowMarkers {
		if m, ok := c.engine.AttachVehicleMarker(squad.Vehicle); ok {
			c.showMarker(m, marker.StyleFor(model.SpawnVehicle, squad.Tier))
			vehicleMarker = m
		}
	}

	for i, r := range squad.Members {
		var vm model.MarkerHandle
		if i == 0 {
			vm = vehicleMarker
		}
		c.registerRecruit(now, r, model.SpawnVehicle, vm)
	}
}

// registerRecruit attaches the agent marker and records the agent.
func (c *Controller) registerRecruit(now time.Time, r spawn.Recruit, kind model.SpawnKind, vehicleMarker model.MarkerHandle) Slot {
	markers := Markers{Vehicle: vehicleMarker}
	if c.cfg.ShowMarkers {
		if m, ok := c.engine.AttachAgentMarker(r.Agent); ok {
			c.showMarker(m, marker.StyleFor(model.SpawnOnFoot, r.Tier))
			markers.Agent = m
		}
	}

	slot := c.registry.Add(
		Entry{Agent: r.Agent, Tier: r.Tier, Kind: kind, Vehicle: r.Vehicle},
		markers,
		Tracking{LastPosition: c.engine.AgentPosition(r.Agent), LastCheck: now},
	)

	c.spawned++
	c.metrics.Spawned(kind.String(), r.Tier.String())
	return slot
}

func (c *Controller) showMarker(m model.MarkerHandle, style marker.Style) {
	marker.Apply(c.engine, m, style)
	if c.sched == nil {
		return
	}
	c.engine.SetMarkerAlpha(m, 0)
	c.sched.Enqueue(marker.NewFadeIn(c.engine, m, c.cfg.FadeSteps, c.cfg.FadeDuration))
}

// Stop drains every managed agent: disarmed, set to flee, released to the
// engine and stripped of markers. Returns the number of agents drained.
func (c *Controller) Stop() int {
	if c.state != model.EncounterActive {
		return 0
	}

	drained := 0
	c.registry.Each(func(_ Slot, e *Entry, m *Markers, _ *Tracking) {
		if c.engine.AgentExists(e.Agent) {
			c.engine.RemoveWeapons(e.Agent)
			c.engine.SetCombatAttribute(e.Agent, world.AttrCanFightArmedWhenUnarmed, false)
			c.engine.SetCombatAttribute(e.Agent, world.AttrAlwaysFight, false)
			c.engine.AssignTask(e.Agent, world.Task{Kind: world.TaskFleeSubject})
			c.engine.ReleaseAgent(e.Agent)
		}
		c.detachMarkers(m)
		drained++
	})
	c.registry.Clear()

	c.engine.ClearAlertLevel()

	slog.Info("population controller stopped",
		"faction", c.faction.Name,
		"drained", drained,
		"spawned", c.spawned,
		"culled", c.culled,
		"ticks", c.ticks)

	c.state = model.EncounterIdle
	c.ceiling = 0
	c.faction = nil
	c.metrics.EncounterStopped()

	return drained
}
