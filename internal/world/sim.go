package world

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/udisondev/hitsquads/internal/model"
)

// Wheel mod category, counted separately from the other mod types.
const WheelModType = 23

// SimConfig tunes the in-memory engine.
type SimConfig struct {
	Seed int64 `yaml:"seed"`

	// Subject movement (units per second)
	SubjectWalkSpeed  float32 `yaml:"subject_walk_speed"`
	SubjectDriveSpeed float32 `yaml:"subject_drive_speed"`

	// Agent movement (units per second)
	AgentSpeed   float32 `yaml:"agent_speed"`
	VehicleSpeed float32 `yaml:"vehicle_speed"`

	// Agents within KillRange of the subject die with KillChance per second.
	KillRange  float32 `yaml:"kill_range"`
	KillChance float64 `yaml:"kill_chance"`

	// Released entities further than DespawnRange are removed from the world.
	DespawnRange float32 `yaml:"despawn_range"`

	// Passenger seats per vehicle model (upper case); DefaultPassengerSeats otherwise.
	VehicleSeats          map[string]int `yaml:"vehicle_seats"`
	DefaultPassengerSeats int            `yaml:"default_passenger_seats"`
}

// DefaultSimConfig returns SimConfig with sensible defaults.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Seed:              42,
		SubjectWalkSpeed:  5,
		SubjectDriveSpeed: 22,
		AgentSpeed:        6,
		VehicleSpeed:      24,
		KillRange:         35,
		KillChance:        0.08,
		DespawnRange:      450,
		VehicleSeats: map[string]int{
			"BMX":     0,
			"BATI":    1,
			"PCJ":     1,
			"NEMESIS": 1,
			"RUFFIAN": 1,
			"THRUST":  1,
			"POLICEB": 0,
			"SPEEDO":  5,
			"RIOT":    7,
			"POLICET": 7,
		},
		DefaultPassengerSeats: 3,
	}
}

type simAgent struct {
	modelID   string
	pos       model.Position
	alive     bool
	inCover   bool
	maxHealth int
	health    int
	armor     int
	cash      int
	stats     CombatStats
	weapons   []model.WeaponID
	equipped  model.WeaponID
	ammo      int
	attrs     map[CombatAttribute]bool
	flags     map[ConfigFlag]bool
	group     model.GroupHandle
	task      Task
	vehicle   model.VehicleHandle
	seat      model.Seat
	styled    int
	released  bool
}

type simVehicle struct {
	modelID   string
	pos       model.Position
	heading   float32
	primary   int
	secondary int
	mods      map[int]int
	wheelType int
	capacity  int
	seats     map[model.Seat]model.AgentHandle
	released  bool
}

type simMarker struct {
	agent   model.AgentHandle
	vehicle model.VehicleHandle
	color   MarkerColor
	scale   float32
	name    string
	alpha   int
}

// Sim is an in-memory Engine. It is not safe for concurrent use; the host
// drives it from the same goroutine as the encounter tick.
type Sim struct {
	cfg     SimConfig
	rng     *rand.Rand
	noise   opensimplex.Noise
	handles *HandleGenerator

	elapsed         float64
	subjectPos      model.Position
	subjectMobile   bool
	subjectPinned   bool
	subjectGroup    model.GroupHandle
	alertLevel      int
	balance         int
	notifications   []string
	subtitle        string
	groups          map[model.GroupHandle]string
	relationships   map[[2]model.GroupHandle]Relationship
	invalidModels   map[string]bool
	failCreateAfter int

	agents   map[model.AgentHandle]*simAgent
	vehicles map[model.VehicleHandle]*simVehicle
	markers  map[model.MarkerHandle]*simMarker
}

var _ Engine = (*Sim)(nil)

// NewSim creates a simulated world with the subject at the origin.
func NewSim(cfg SimConfig) *Sim {
	s := &Sim{
		cfg:             cfg,
		rng:             rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)+1)),
		noise:           opensimplex.NewNormalized(cfg.Seed),
		handles:         NewHandleGenerator(),
		groups:          make(map[model.GroupHandle]string),
		relationships:   make(map[[2]model.GroupHandle]Relationship),
		invalidModels:   make(map[string]bool),
		failCreateAfter: -1,
		agents:          make(map[model.AgentHandle]*simAgent),
		vehicles:        make(map[model.VehicleHandle]*simVehicle),
		markers:         make(map[model.MarkerHandle]*simMarker),
	}
	s.subjectGroup = s.AddRelationshipGroup("PLAYER")
	return s
}

// ── Navigator ─────────────────────────────────────────────────────────

// Around returns a point at radius from center in a random direction.
func (s *Sim) Around(center model.Position, radius float32) model.Position {
	return center.Around(radius, s.rng.Float64()*2*math.Pi)
}

// ResolveToWalkable snaps p onto the nearest sidewalk.
func (s *Sim) ResolveToWalkable(p model.Position) model.Position {
	return SnapToSidewalk(p)
}

// ResolveToRoad snaps p onto the nearest road with its traffic heading.
func (s *Sim) ResolveToRoad(p model.Position) (model.Position, float32) {
	return SnapToRoad(p)
}

// ── Subject ───────────────────────────────────────────────────────────

// SubjectPosition returns the subject's position.
func (s *Sim) SubjectPosition() model.Position { return s.subjectPos }

// SubjectInVehicle reports whether the subject is driving.
func (s *Sim) SubjectInVehicle() bool { return s.subjectMobile }

// SubjectGroup returns the subject's relationship group.
func (s *Sim) SubjectGroup() model.GroupHandle { return s.subjectGroup }

// ClearAlertLevel resets the wanted level.
func (s *Sim) ClearAlertLevel() { s.alertLevel = 0 }

// SetSubject places the subject and pins it there (Advance stops wandering it).
func (s *Sim) SetSubject(pos model.Position, inVehicle bool) {
	s.subjectPos = pos
	s.subjectMobile = inVehicle
	s.subjectPinned = true
}

// SetAlertLevel sets the wanted level.
func (s *Sim) SetAlertLevel(level int) { s.alertLevel = level }

// AlertLevel returns the wanted level.
func (s *Sim) AlertLevel() int { return s.alertLevel }

// ── Agents ────────────────────────────────────────────────────────────

func (s *Sim) knownModel(modelID string) error {
	if strings.TrimSpace(modelID) == "" || s.invalidModels[strings.ToUpper(modelID)] {
		return fmt.Errorf("model %q: %w", modelID, ErrInvalidModel)
	}
	return nil
}

// materialize reports whether the next entity creation succeeds.
func (s *Sim) materialize() bool {
	if s.failCreateAfter < 0 {
		return true
	}
	if s.failCreateAfter == 0 {
		return false
	}
	s.failCreateAfter--
	return true
}

// CreateAgent spawns an agent of modelID at pos.
func (s *Sim) CreateAgent(modelID string, pos model.Position) (model.AgentHandle, error) {
	if err := s.knownModel(modelID); err != nil {
		return 0, err
	}
	if !s.materialize() {
		return 0, nil
	}

	h := model.AgentHandle(s.handles.NextAgent())
	s.agents[h] = &simAgent{
		modelID:   modelID,
		pos:       pos,
		alive:     true,
		maxHealth: 100,
		health:    100,
		attrs:     make(map[CombatAttribute]bool),
		flags:     make(map[ConfigFlag]bool),
		seat:      model.SeatDriver,
	}
	return h, nil
}

// AgentExists reports whether the agent is still in the world.
func (s *Sim) AgentExists(a model.AgentHandle) bool {
	_, ok := s.agents[a]
	return ok
}

// AgentAlive reports whether the agent exists and is alive.
func (s *Sim) AgentAlive(a model.AgentHandle) bool {
	ag, ok := s.agents[a]
	return ok && ag.alive
}

// AgentPosition returns the agent's position (its vehicle's when seated).
func (s *Sim) AgentPosition(a model.AgentHandle) model.Position {
	ag, ok := s.agents[a]
	if !ok {
		return model.Position{}
	}
	if v, ok := s.vehicles[ag.vehicle]; ok {
		return v.pos
	}
	return ag.pos
}

// AgentInVehicle reports whether the agent is seated in a vehicle.
func (s *Sim) AgentInVehicle(a model.AgentHandle) bool {
	ag, ok := s.agents[a]
	return ok && ag.vehicle != 0
}

// AgentInCover reports whether the agent is using cover.
func (s *Sim) AgentInCover(a model.AgentHandle) bool {
	ag, ok := s.agents[a]
	return ok && ag.inCover
}

func (s *Sim) withAgent(a model.AgentHandle, fn func(*simAgent)) {
	if ag, ok := s.agents[a]; ok {
		fn(ag)
	}
}

// SetHealth sets health ceiling and current health.
func (s *Sim) SetHealth(a model.AgentHandle, max, current int) {
	s.withAgent(a, func(ag *simAgent) { ag.maxHealth, ag.health = max, current })
}

// SetArmor sets armor.
func (s *Sim) SetArmor(a model.AgentHandle, armor int) {
	s.withAgent(a, func(ag *simAgent) { ag.armor = armor })
}

// SetCombatStats sets accuracy, fire rate and weapon switching.
func (s *Sim) SetCombatStats(a model.AgentHandle, stats CombatStats) {
	s.withAgent(a, func(ag *simAgent) { ag.stats = stats })
}

// SetCash sets cash on hand.
func (s *Sim) SetCash(a model.AgentHandle, cash int) {
	s.withAgent(a, func(ag *simAgent) { ag.cash = cash })
}

// GiveWeapon adds a weapon to the inventory.
func (s *Sim) GiveWeapon(a model.AgentHandle, weapon model.WeaponID, ammo int, equip bool) {
	s.withAgent(a, func(ag *simAgent) {
		if !slices.Contains(ag.weapons, weapon) {
			ag.weapons = append(ag.weapons, weapon)
		}
		ag.ammo = ammo
		if equip {
			ag.equipped = weapon
		}
	})
}

// RemoveWeapons empties the inventory.
func (s *Sim) RemoveWeapons(a model.AgentHandle) {
	s.withAgent(a, func(ag *simAgent) {
		ag.weapons = nil
		ag.equipped = ""
		ag.ammo = 0
	})
}

// RandomizeAppearance picks a random outfit variation.
func (s *Sim) RandomizeAppearance(a model.AgentHandle) {
	s.withAgent(a, func(ag *simAgent) { ag.styled = 1 + s.rng.IntN(64) })
}

// SetCombatAttribute toggles a combat attribute.
func (s *Sim) SetCombatAttribute(a model.AgentHandle, attr CombatAttribute, enabled bool) {
	s.withAgent(a, func(ag *simAgent) { ag.attrs[attr] = enabled })
}

// SetConfigFlag toggles a config flag.
func (s *Sim) SetConfigFlag(a model.AgentHandle, flag ConfigFlag, enabled bool) {
	s.withAgent(a, func(ag *simAgent) { ag.flags[flag] = enabled })
}

// SetRelationshipGroup moves the agent into group g.
func (s *Sim) SetRelationshipGroup(a model.AgentHandle, g model.GroupHandle) {
	s.withAgent(a, func(ag *simAgent) { ag.group = g })
}

// ClearTasks drops the agent's current directive.
func (s *Sim) ClearTasks(a model.AgentHandle) {
	s.withAgent(a, func(ag *simAgent) { ag.task = Task{} })
}

// AssignTask sets the agent's directive.
func (s *Sim) AssignTask(a model.AgentHandle, task Task) {
	s.withAgent(a, func(ag *simAgent) { ag.task = task })
}

// ReleaseAgent marks the agent no longer needed.
func (s *Sim) ReleaseAgent(a model.AgentHandle) {
	s.withAgent(a, func(ag *simAgent) { ag.released = true })
}

// ── Relationships ────────────────────────────────────────────────────

// AddRelationshipGroup registers a new relationship group.
func (s *Sim) AddRelationshipGroup(name string) model.GroupHandle {
	g := model.GroupHandle(s.handles.NextGroup())
	s.groups[g] = name
	return g
}

// SetRelationship sets the disposition of from toward to.
func (s *Sim) SetRelationship(r Relationship, from, to model.GroupHandle) {
	s.relationships[[2]model.GroupHandle{from, to}] = r
}

// RelationshipBetween returns the disposition of from toward to.
func (s *Sim) RelationshipBetween(from, to model.GroupHandle) (Relationship, bool) {
	r, ok := s.relationships[[2]model.GroupHandle{from, to}]
	return r, ok
}

// GroupCount returns the number of relationship groups.
func (s *Sim) GroupCount() int { return len(s.groups) }

// ── Vehicles ─────────────────────────────────────────────────────────

// CreateVehicle spawns a vehicle of modelID at pos.
func (s *Sim) CreateVehicle(modelID string, pos model.Position) (model.VehicleHandle, error) {
	if err := s.knownModel(modelID); err != nil {
		return 0, err
	}
	if !s.materialize() {
		return 0, nil
	}

	capacity, ok := s.cfg.VehicleSeats[strings.ToUpper(modelID)]
	if !ok {
		capacity = s.cfg.DefaultPassengerSeats
	}

	h := model.VehicleHandle(s.handles.NextVehicle())
	s.vehicles[h] = &simVehicle{
		modelID:   modelID,
		pos:       pos,
		primary:   0,
		secondary: 0,
		mods:      make(map[int]int),
		capacity:  capacity,
		seats:     make(map[model.Seat]model.AgentHandle),
	}
	return h, nil
}

// VehicleExists reports whether the vehicle is still in the world.
func (s *Sim) VehicleExists(v model.VehicleHandle) bool {
	_, ok := s.vehicles[v]
	return ok
}

// VehiclePosition returns the vehicle's position.
func (s *Sim) VehiclePosition(v model.VehicleHandle) model.Position {
	if veh, ok := s.vehicles[v]; ok {
		return veh.pos
	}
	return model.Position{}
}

// PlaceVehicle moves the vehicle and sets its heading.
func (s *Sim) PlaceVehicle(v model.VehicleHandle, pos model.Position, heading float32) {
	if veh, ok := s.vehicles[v]; ok {
		veh.pos, veh.heading = pos, heading
	}
}

// SetVehicleColors paints the vehicle; -1 keeps a channel.
func (s *Sim) SetVehicleColors(v model.VehicleHandle, primary, secondary int) {
	veh, ok := s.vehicles[v]
	if !ok {
		return
	}
	if primary >= 0 {
		veh.primary = primary
	}
	if secondary >= 0 {
		veh.secondary = secondary
	}
}

// VehicleModCount returns the number of options for a mod category.
func (s *Sim) VehicleModCount(v model.VehicleHandle, modType int) int {
	if _, ok := s.vehicles[v]; !ok {
		return 0
	}
	switch {
	case modType == WheelModType:
		return 12
	case modType < 16:
		return modType % 5
	default:
		return 0
	}
}

// SetVehicleMod installs option index of a mod category.
func (s *Sim) SetVehicleMod(v model.VehicleHandle, modType, index int) {
	if veh, ok := s.vehicles[v]; ok {
		veh.mods[modType] = index
	}
}

// SetWheelType sets the wheel family.
func (s *Sim) SetWheelType(v model.VehicleHandle, wheelType int) {
	if veh, ok := s.vehicles[v]; ok {
		veh.wheelType = wheelType
	}
}

// SeatIsFree reports whether seat exists on the vehicle and is unoccupied.
func (s *Sim) SeatIsFree(v model.VehicleHandle, seat model.Seat) bool {
	veh, ok := s.vehicles[v]
	if !ok || seat < model.SeatDriver || int(seat) >= veh.capacity {
		return false
	}
	occupant, taken := veh.seats[seat]
	return !taken || !s.AgentExists(occupant)
}

// WarpIntoSeat puts the agent into the vehicle seat.
func (s *Sim) WarpIntoSeat(a model.AgentHandle, v model.VehicleHandle, seat model.Seat) {
	ag, ok := s.agents[a]
	if !ok {
		return
	}
	veh, ok := s.vehicles[v]
	if !ok {
		return
	}
	veh.seats[seat] = a
	ag.vehicle = v
	ag.seat = seat
	ag.pos = veh.pos
}

// ReleaseVehicle marks the vehicle no longer needed.
func (s *Sim) ReleaseVehicle(v model.VehicleHandle) {
	if veh, ok := s.vehicles[v]; ok {
		veh.released = true
	}
}

// ── Markers ──────────────────────────────────────────────────────────

// AttachAgentMarker creates a marker following the agent.
func (s *Sim) AttachAgentMarker(a model.AgentHandle) (model.MarkerHandle, bool) {
	if !s.AgentExists(a) {
		return 0, false
	}
	m := model.MarkerHandle(s.handles.NextMarker())
	s.markers[m] = &simMarker{agent: a, scale: 1, alpha: 255}
	return m, true
}

// AttachVehicleMarker creates a marker following the vehicle.
func (s *Sim) AttachVehicleMarker(v model.VehicleHandle) (model.MarkerHandle, bool) {
	if !s.VehicleExists(v) {
		return 0, false
	}
	m := model.MarkerHandle(s.handles.NextMarker())
	s.markers[m] = &simMarker{vehicle: v, scale: 1, alpha: 255}
	return m, true
}

// MarkerExists reports whether the marker is still shown.
func (s *Sim) MarkerExists(m model.MarkerHandle) bool {
	_, ok := s.markers[m]
	return ok
}

// SetMarkerColor tints the marker.
func (s *Sim) SetMarkerColor(m model.MarkerHandle, c MarkerColor) {
	if mk, ok := s.markers[m]; ok {
		mk.color = c
	}
}

// SetMarkerScale scales the marker.
func (s *Sim) SetMarkerScale(m model.MarkerHandle, scale float32) {
	if mk, ok := s.markers[m]; ok {
		mk.scale = scale
	}
}

// SetMarkerName labels the marker.
func (s *Sim) SetMarkerName(m model.MarkerHandle, name string) {
	if mk, ok := s.markers[m]; ok {
		mk.name = name
	}
}

// SetMarkerAlpha sets marker opacity in [0, 255]. Missing markers are ignored.
func (s *Sim) SetMarkerAlpha(m model.MarkerHandle, alpha int) {
	if mk, ok := s.markers[m]; ok {
		mk.alpha = max(0, min(255, alpha))
	}
}

// DeleteMarker removes the marker. Missing markers are ignored.
func (s *Sim) DeleteMarker(m model.MarkerHandle) {
	delete(s.markers, m)
}

// ── Notifier / Wallet ────────────────────────────────────────────────

// Notify records a notification and logs it.
func (s *Sim) Notify(text string) {
	s.notifications = append(s.notifications, text)
	slog.Info("notification", "text", text)
}

// Subtitle records the latest subtitle.
func (s *Sim) Subtitle(text string, _ time.Duration) {
	s.subtitle = text
}

// GrantCurrency credits the subject.
func (s *Sim) GrantCurrency(amount int) {
	s.balance += amount
}
