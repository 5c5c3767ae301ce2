package world

import (
	"errors"
	"time"

	"github.com/udisondev/hitsquads/internal/model"
)

// ErrInvalidModel is returned when the engine does not know a requested model id.
var ErrInvalidModel = errors.New("invalid model")

// Navigator answers placement queries against the map.
type Navigator interface {
	// Around returns a point at radius from center in an engine-chosen direction.
	Around(center model.Position, radius float32) model.Position

	// ResolveToWalkable moves p onto the nearest walkable surface.
	ResolveToWalkable(p model.Position) model.Position

	// ResolveToRoad moves p onto the nearest road node and returns the traffic heading (degrees).
	ResolveToRoad(p model.Position) (model.Position, float32)
}

// Subject exposes the player-controlled subject the encounter revolves around.
type Subject interface {
	SubjectPosition() model.Position
	SubjectInVehicle() bool
	SubjectGroup() model.GroupHandle

	// ClearAlertLevel resets the subject's wanted/alert level.
	ClearAlertLevel()
}

// Agents creates and configures agents (pedestrians).
type Agents interface {
	// CreateAgent returns ErrInvalidModel for unknown models. A zero handle
	// with a nil error means the engine failed to materialize the entity.
	CreateAgent(modelID string, pos model.Position) (model.AgentHandle, error)

	AgentExists(a model.AgentHandle) bool
	AgentAlive(a model.AgentHandle) bool
	AgentPosition(a model.AgentHandle) model.Position
	AgentInVehicle(a model.AgentHandle) bool
	AgentInCover(a model.AgentHandle) bool

	SetHealth(a model.AgentHandle, max, current int)
	SetArmor(a model.AgentHandle, armor int)
	SetCombatStats(a model.AgentHandle, stats CombatStats)
	SetCash(a model.AgentHandle, cash int)
	GiveWeapon(a model.AgentHandle, weapon model.WeaponID, ammo int, equip bool)
	RemoveWeapons(a model.AgentHandle)
	RandomizeAppearance(a model.AgentHandle)
	SetCombatAttribute(a model.AgentHandle, attr CombatAttribute, enabled bool)
	SetConfigFlag(a model.AgentHandle, flag ConfigFlag, enabled bool)
	SetRelationshipGroup(a model.AgentHandle, g model.GroupHandle)
	ClearTasks(a model.AgentHandle)
	AssignTask(a model.AgentHandle, task Task)

	// ReleaseAgent hands the agent back to the engine's own cleanup.
	ReleaseAgent(a model.AgentHandle)
}

// Relationships manages relationship groups and their dispositions.
type Relationships interface {
	AddRelationshipGroup(name string) model.GroupHandle
	SetRelationship(r Relationship, from, to model.GroupHandle)
}

// Vehicles creates and configures vehicles.
type Vehicles interface {
	// CreateVehicle follows the same contract as Agents.CreateAgent.
	CreateVehicle(modelID string, pos model.Position) (model.VehicleHandle, error)

	VehicleExists(v model.VehicleHandle) bool
	VehiclePosition(v model.VehicleHandle) model.Position
	PlaceVehicle(v model.VehicleHandle, pos model.Position, heading float32)

	// SetVehicleColors applies paint colors; -1 leaves a channel unchanged.
	SetVehicleColors(v model.VehicleHandle, primary, secondary int)
	VehicleModCount(v model.VehicleHandle, modType int) int
	SetVehicleMod(v model.VehicleHandle, modType, index int)
	SetWheelType(v model.VehicleHandle, wheelType int)

	SeatIsFree(v model.VehicleHandle, seat model.Seat) bool
	WarpIntoSeat(a model.AgentHandle, v model.VehicleHandle, seat model.Seat)

	// ReleaseVehicle marks the vehicle eligible for engine cleanup once unoccupied.
	ReleaseVehicle(v model.VehicleHandle)
}

// Markers manages on-screen world markers.
type Markers interface {
	AttachAgentMarker(a model.AgentHandle) (model.MarkerHandle, bool)
	AttachVehicleMarker(v model.VehicleHandle) (model.MarkerHandle, bool)
	MarkerExists(m model.MarkerHandle) bool
	SetMarkerColor(m model.MarkerHandle, c MarkerColor)
	SetMarkerScale(m model.MarkerHandle, scale float32)
	SetMarkerName(m model.MarkerHandle, name string)
	SetMarkerAlpha(m model.MarkerHandle, alpha int)
	DeleteMarker(m model.MarkerHandle)
}

// Notifier shows text to the user.
type Notifier interface {
	Notify(text string)
	Subtitle(text string, d time.Duration)
}

// Wallet grants in-game currency to the subject.
type Wallet interface {
	GrantCurrency(amount int)
}

// Engine is the full set of collaborators the encounter core consumes.
type Engine interface {
	Navigator
	Subject
	Agents
	Relationships
	Vehicles
	Markers
	Notifier
	Wallet
}
