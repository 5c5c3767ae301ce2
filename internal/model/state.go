package model

// EncounterState is the state of the encounter state machine.
type EncounterState int32

const (
	// EncounterIdle - no encounter running, nothing spawns
	EncounterIdle EncounterState = iota
	// EncounterActive - encounter running, ticks spawn and cull agents
	EncounterActive
)

// String returns human-readable state name
func (s EncounterState) String() string {
	switch s {
	case EncounterIdle:
		return "IDLE"
	case EncounterActive:
		return "ACTIVE"
	default:
		return "UNKNOWN"
	}
}
