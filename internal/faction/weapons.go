package faction

import "github.com/udisondev/hitsquads/internal/model"

// Weapon ids understood by the world engine.
const (
	Pistol            model.WeaponID = "PISTOL"
	PistolMk2         model.WeaponID = "PISTOL_MK2"
	MicroSMG          model.WeaponID = "MICRO_SMG"
	MachinePistol     model.WeaponID = "MACHINE_PISTOL"
	SMG               model.WeaponID = "SMG"
	CombatPDW         model.WeaponID = "COMBAT_PDW"
	PumpShotgun       model.WeaponID = "PUMP_SHOTGUN"
	SawnOffShotgun    model.WeaponID = "SAWNOFF_SHOTGUN"
	AssaultShotgun    model.WeaponID = "ASSAULT_SHOTGUN"
	BullpupShotgun    model.WeaponID = "BULLPUP_SHOTGUN"
	AssaultRifle      model.WeaponID = "ASSAULT_RIFLE"
	CarbineRifle      model.WeaponID = "CARBINE_RIFLE"
	CarbineRifleMk2   model.WeaponID = "CARBINE_RIFLE_MK2"
	CompactRifle      model.WeaponID = "COMPACT_RIFLE"
	SpecialCarbine    model.WeaponID = "SPECIAL_CARBINE"
	SpecialCarbineMk2 model.WeaponID = "SPECIAL_CARBINE_MK2"
	BullpupRifle      model.WeaponID = "BULLPUP_RIFLE"
	MG                model.WeaponID = "MG"
	CombatMG          model.WeaponID = "COMBAT_MG"
	SniperRifle       model.WeaponID = "SNIPER_RIFLE"
	Knife             model.WeaponID = "KNIFE"
	Bat               model.WeaponID = "BAT"
	Nightstick        model.WeaponID = "NIGHTSTICK"
)
