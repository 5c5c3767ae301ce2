package model

// WeaponID identifies a weapon type known to the world engine.
type WeaponID string

// WeaponWeight is one entry of a weighted weapon table.
// Weight must be positive.
type WeaponWeight struct {
	Weapon WeaponID
	Weight int
}
