package world

import (
	"maps"
	"slices"
	"strings"

	"github.com/udisondev/hitsquads/internal/model"
)

// AgentState is a read-only snapshot of a simulated agent.
type AgentState struct {
	Model     string
	Position  model.Position
	Alive     bool
	MaxHealth int
	Health    int
	Armor     int
	Cash      int
	Stats     CombatStats
	Weapons   []model.WeaponID
	Equipped  model.WeaponID
	Ammo      int
	Attrs     map[CombatAttribute]bool
	Flags     map[ConfigFlag]bool
	Group     model.GroupHandle
	Task      Task
	Vehicle   model.VehicleHandle
	Seat      model.Seat
	Styled    bool
	Released  bool
}

// VehicleState is a read-only snapshot of a simulated vehicle.
type VehicleState struct {
	Model     string
	Position  model.Position
	Heading   float32
	Primary   int
	Secondary int
	Mods      map[int]int
	WheelType int
	Occupants map[model.Seat]model.AgentHandle
	Released  bool
}

// MarkerState is a read-only snapshot of a simulated marker.
type MarkerState struct {
	Agent   model.AgentHandle
	Vehicle model.VehicleHandle
	Color   MarkerColor
	Scale   float32
	Name    string
	Alpha   int
}

// Agent returns a snapshot of the agent.
func (s *Sim) Agent(a model.AgentHandle) (AgentState, bool) {
	ag, ok := s.agents[a]
	if !ok {
		return AgentState{}, false
	}
	return AgentState{
		Model:     ag.modelID,
		Position:  s.AgentPosition(a),
		Alive:     ag.alive,
		MaxHealth: ag.maxHealth,
		Health:    ag.health,
		Armor:     ag.armor,
		Cash:      ag.cash,
		Stats:     ag.stats,
		Weapons:   slices.Clone(ag.weapons),
		Equipped:  ag.equipped,
		Ammo:      ag.ammo,
		Attrs:     maps.Clone(ag.attrs),
		Flags:     maps.Clone(ag.flags),
		Group:     ag.group,
		Task:      ag.task,
		Vehicle:   ag.vehicle,
		Seat:      ag.seat,
		Styled:    ag.styled != 0,
		Released:  ag.released,
	}, true
}

// Vehicle returns a snapshot of the vehicle.
func (s *Sim) Vehicle(v model.VehicleHandle) (VehicleState, bool) {
	veh, ok := s.vehicles[v]
	if !ok {
		return VehicleState{}, false
	}
	return VehicleState{
		Model:     veh.modelID,
		Position:  veh.pos,
		Heading:   veh.heading,
		Primary:   veh.primary,
		Secondary: veh.secondary,
		Mods:      maps.Clone(veh.mods),
		WheelType: veh.wheelType,
		Occupants: maps.Clone(veh.seats),
		Released:  veh.released,
	}, true
}

// Marker returns a snapshot of the marker.
func (s *Sim) Marker(m model.MarkerHandle) (MarkerState, bool) {
	mk, ok := s.markers[m]
	if !ok {
		return MarkerState{}, false
	}
	return MarkerState{
		Agent:   mk.agent,
		Vehicle: mk.vehicle,
		Color:   mk.color,
		Scale:   mk.scale,
		Name:    mk.name,
		Alpha:   mk.alpha,
	}, true
}

// AgentHandles returns every agent handle in the world, sorted.
func (s *Sim) AgentHandles() []model.AgentHandle {
	return slices.Sorted(maps.Keys(s.agents))
}

// VehicleHandles returns every vehicle handle in the world, sorted.
func (s *Sim) VehicleHandles() []model.VehicleHandle {
	return slices.Sorted(maps.Keys(s.vehicles))
}

// AgentCount returns the number of agents in the world.
func (s *Sim) AgentCount() int { return len(s.agents) }

// VehicleCount returns the number of vehicles in the world.
func (s *Sim) VehicleCount() int { return len(s.vehicles) }

// MarkerCount returns the number of markers shown.
func (s *Sim) MarkerCount() int { return len(s.markers) }

// Notifications returns every notification shown so far.
func (s *Sim) Notifications() []string { return slices.Clone(s.notifications) }

// LastSubtitle returns the most recent subtitle.
func (s *Sim) LastSubtitle() string { return s.subtitle }

// Balance returns the subject's currency.
func (s *Sim) Balance() int { return s.balance }

// Config returns the engine settings.
func (s *Sim) Config() SimConfig { return s.cfg }

// Elapsed returns simulated seconds since creation.
func (s *Sim) Elapsed() float64 { return s.elapsed }

// RejectModel makes CreateAgent/CreateVehicle fail with ErrInvalidModel for modelID.
func (s *Sim) RejectModel(modelID string) {
	s.invalidModels[strings.ToUpper(modelID)] = true
}

// FailCreationsAfter lets n more creations succeed, then every creation
// returns a null handle. Negative n disables the failure.
func (s *Sim) FailCreationsAfter(n int) {
	s.failCreateAfter = n
}

// Kill sets the agent's health to zero.
func (s *Sim) Kill(a model.AgentHandle) {
	s.withAgent(a, func(ag *simAgent) {
		ag.alive = false
		ag.health = 0
	})
}

// MoveAgent teleports an agent, pulling it out of any vehicle.
func (s *Sim) MoveAgent(a model.AgentHandle, pos model.Position) {
	s.withAgent(a, func(ag *simAgent) {
		s.leaveVehicle(a, ag)
		ag.pos = pos
	})
}

// SetInCover toggles whether the agent counts as using cover.
func (s *Sim) SetInCover(a model.AgentHandle, inCover bool) {
	s.withAgent(a, func(ag *simAgent) { ag.inCover = inCover })
}

// Despawn removes an agent from the world together with its markers.
func (s *Sim) Despawn(a model.AgentHandle) {
	ag, ok := s.agents[a]
	if !ok {
		return
	}
	s.leaveVehicle(a, ag)
	delete(s.agents, a)
	for m, mk := range s.markers {
		if mk.agent == a {
			delete(s.markers, m)
		}
	}
}

func (s *Sim) leaveVehicle(a model.AgentHandle, ag *simAgent) {
	veh, ok := s.vehicles[ag.vehicle]
	if ok {
		ag.pos = veh.pos
		if veh.seats[ag.seat] == a {
			delete(veh.seats, ag.seat)
		}
	}
	ag.vehicle = 0
	ag.seat = model.SeatDriver
}
