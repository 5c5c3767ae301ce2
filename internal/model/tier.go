package model

// Tier classifies a spawned agent as elite or regular.
// Elite agents use the faction's Hi pools, regular ones the Lo pools.
type Tier int32

const (
	// TierRegular - default tier, Lo pools, 200 health
	TierRegular Tier = iota
	// TierElite - Hi pools, 400 health, chance of armor
	TierElite
)

// String returns human-readable tier name
func (t Tier) String() string {
	switch t {
	case TierRegular:
		return "REGULAR"
	case TierElite:
		return "ELITE"
	default:
		return "UNKNOWN"
	}
}

// IsElite reports whether t is TierElite.
func (t Tier) IsElite() bool {
	return t == TierElite
}

// SpawnKind selects how a spawn attempt places its agents.
type SpawnKind int32

const (
	// SpawnOnFoot - single agent placed on a walkable surface
	SpawnOnFoot SpawnKind = iota
	// SpawnVehicle - vehicle with driver and passengers placed on a road
	SpawnVehicle
)

// String returns human-readable spawn kind name
func (k SpawnKind) String() string {
	switch k {
	case SpawnOnFoot:
		return "ON_FOOT"
	case SpawnVehicle:
		return "VEHICLE"
	default:
		return "UNKNOWN"
	}
}
