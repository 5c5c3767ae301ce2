package world

import "github.com/udisondev/hitsquads/internal/model"

// CombatStats are the fixed combat numbers applied to every spawned agent.
type CombatStats struct {
	Accuracy         int
	FireRate         int
	CanSwitchWeapons bool
}

// CombatAttribute is an engine combat behaviour switch. Values match the engine codes.
type CombatAttribute int32

const (
	AttrCanUseCover              CombatAttribute = 0
	AttrAlwaysFight              CombatAttribute = 5
	AttrCanFightArmedWhenUnarmed CombatAttribute = 46
	AttrDisableReactToBuddyShot  CombatAttribute = 68
)

// ConfigFlag is an engine per-agent config flag. Values match the engine codes.
type ConfigFlag int32

const (
	FlagDontRagdollFromBulletImpact ConfigFlag = 107
	FlagForceRagdollOnDeath         ConfigFlag = 227
)

// Relationship is a disposition between two relationship groups.
type Relationship int32

const (
	RelationshipRespect Relationship = 0
	RelationshipLike    Relationship = 1
	RelationshipNeutral Relationship = 3
	RelationshipDislike Relationship = 4
	RelationshipHate    Relationship = 5
)

// TaskKind identifies a behaviour directive.
type TaskKind int32

const (
	TaskNone TaskKind = iota
	// TaskEngageSubject - persistent combat against the subject
	TaskEngageSubject
	// TaskDriveToSubject - drive the vehicle toward the subject's position
	TaskDriveToSubject
	// TaskFleeSubject - run away from the subject
	TaskFleeSubject
)

// String returns human-readable task name
func (k TaskKind) String() string {
	switch k {
	case TaskNone:
		return "NONE"
	case TaskEngageSubject:
		return "ENGAGE_SUBJECT"
	case TaskDriveToSubject:
		return "DRIVE_TO_SUBJECT"
	case TaskFleeSubject:
		return "FLEE_SUBJECT"
	default:
		return "UNKNOWN"
	}
}

// Task is a behaviour directive for an agent.
type Task struct {
	Kind        TaskKind
	Vehicle     model.VehicleHandle // TaskDriveToSubject only
	Destination model.Position      // TaskDriveToSubject only
	Speed       float32             // TaskDriveToSubject only
}

// MarkerColor is a marker tint.
type MarkerColor int32

const (
	MarkerWhite  MarkerColor = 0
	MarkerRed    MarkerColor = 1
	MarkerYellow MarkerColor = 5
)

// String returns human-readable color name
func (c MarkerColor) String() string {
	switch c {
	case MarkerWhite:
		return "WHITE"
	case MarkerRed:
		return "RED"
	case MarkerYellow:
		return "YELLOW"
	default:
		return "UNKNOWN"
	}
}
