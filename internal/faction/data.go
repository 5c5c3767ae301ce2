package faction

import "github.com/udisondev/hitsquads/internal/model"

// Built-in faction ids, in catalog order.
const (
	Families ID = iota
	Ballas
	Vagos
	StateGovernment
	DugganFamily
)

func color(c int) *int { return &c }

// builtin returns the static faction tables.
// Regular weapon tables keep the pistol at 75; elite tables favour rifles.
func builtin() []Definition {
	return []Definition{
		{
			Name:            "Grove Street Families",
			VehiclesElite:   []string{"CAVALCADE", "BALLER", "BALLER3", "BALLER8", "PEYOTE3", "VOODOO", "PRIMO2", "TORNADO5", "MANANA2", "NEMESIS"},
			VehiclesRegular: []string{"EMPEROR", "MANANA", "TORNADO", "TORNADO5", "BUCCANEER", "PEYOTE", "PEYOTE3", "VOODOO", "PRIMO2", "BMX", "NEMESIS", "BALLER3"},
			AgentsElite:     []string{"IG_VERNON", "A_M_M_OG_BOSS_01", "IG_STRETCH", "IG_LAMARDAVIS", "G_M_Y_FAMCA_01", "G_M_Y_FAMDNF_01"},
			AgentsRegular:   []string{"G_F_Y_FAMILIES_01", "G_M_Y_FAMCA_01", "G_M_Y_FAMDNF_01", "G_M_Y_FAMFOR_01"},
			WeaponsElite: []model.WeaponWeight{
				{Weapon: AssaultRifle, Weight: 60},
				{Weapon: PumpShotgun, Weight: 50},
				{Weapon: SMG, Weight: 40},
				{Weapon: Pistol, Weight: 30},
			},
			WeaponsRegular: []model.WeaponWeight{
				{Weapon: Pistol, Weight: 75},
				{Weapon: MicroSMG, Weight: 50},
				{Weapon: SMG, Weight: 30},
				{Weapon: PumpShotgun, Weight: 25},
				{Weapon: AssaultRifle, Weight: 10},
				{Weapon: Knife, Weight: 10},
			},
			PrimaryColor:   color(53),
			SecondaryColor: color(53),
			Announcement:   "Grove Street Families are out for you.",
		},
		{
			Name:            "Ballas",
			VehiclesElite:   []string{"PEYOTE3", "JACKAL", "TORNADO5", "BALLER3", "ORACLE", "BUCCANEER2", "PRIMO2", "ORACLE", "BATI", "THRUST", "SULTAN", "VOODOO", "CHINO2", "VIRGO3"},
			VehiclesRegular: []string{"BMX", "BUCCANEER2", "BUFFALO", "EMPEROR", "MANANA", "FELON", "PEYOTE", "JACKAL", "TORNADO5", "BALLER3", "ORACLE", "PRIMO2", "RUFFIAN", "BATI", "SPEEDO", "VOODOO", "SABREGT", "CHINO2", "VIRGO3"},
			AgentsElite:     []string{"IG_JOHNNY_GUNS", "IG_BALLAS_LEADER", "G_M_Y_BALLAORIG_01", "G_M_Y_BALLAORIG_01"},
			AgentsRegular:   []string{"G_M_Y_BALLASOUT_01", "G_M_Y_BALLAEAST_01", "G_M_Y_STRPUNK_02", "G_F_Y_BALLAS_01", "G_M_Y_BALLAORIG_01"},
			WeaponsElite: []model.WeaponWeight{
				{Weapon: CarbineRifle, Weight: 45},
				{Weapon: AssaultRifle, Weight: 45},
				{Weapon: CompactRifle, Weight: 45},
				{Weapon: MachinePistol, Weight: 35},
				{Weapon: SMG, Weight: 30},
				{Weapon: Pistol, Weight: 30},
				{Weapon: SawnOffShotgun, Weight: 25},
				{Weapon: PumpShotgun, Weight: 25},
				{Weapon: AssaultShotgun, Weight: 10},
				{Weapon: MG, Weight: 10},
				{Weapon: CombatMG, Weight: 10},
			},
			WeaponsRegular: []model.WeaponWeight{
				{Weapon: Pistol, Weight: 75},
				{Weapon: MicroSMG, Weight: 30},
				{Weapon: PumpShotgun, Weight: 25},
				{Weapon: SMG, Weight: 20},
				{Weapon: MachinePistol, Weight: 20},
				{Weapon: SawnOffShotgun, Weight: 20},
				{Weapon: AssaultRifle, Weight: 15},
				{Weapon: CompactRifle, Weight: 15},
				{Weapon: Knife, Weight: 10},
			},
			PrimaryColor:   color(145),
			SecondaryColor: color(153),
			Announcement:   "Ballas are out balling to hunt you down!",
		},
		{
			Name:            "Vagos",
			VehiclesElite:   []string{"TORNADO5", "EMPEROR", "BAGGER", "BALLER4", "BALLER3", "BUCCANEER2", "CAVALCADE", "PRIMO2", "PEYOTE3", "SABREGT2", "VIRGO2", "LANDSTALKER2", "FACTION2", "CONTENDER", "VOODOO", "HUNTLEY", "TAMPA3", "PCJ", "BALLER7"},
			VehiclesRegular: []string{"TORNADO5", "EMPEROR", "BALLER3", "BMX", "BUCCANEER2", "CAVALCADE", "MANANA", "PRIMO2", "PEYOTE", "PEYOTE3", "VIGERO", "SABREGT2", "FACTION2", "PHOENIX", "GRANGER", "VOODOO", "PCJ", "BALLER7"},
			AgentsElite:     []string{"G_M_M_MEXBOSS_01", "IG_VAGOS_LEADER", "G_M_M_MEXBOSS_02", "IG_VAGSPEAK", "MP_M_G_VAGFUN_01", "G_M_Y_MEXGOON_02", "G_M_Y_MEXGOON_02"},
			AgentsRegular:   []string{"G_M_Y_MEXGOON_01", "G_F_Y_VAGOS_01", "G_M_Y_MEXGOON_02", "G_M_Y_MEXGOON_03", "A_M_Y_MEXTHUG_01"},
			WeaponsElite: []model.WeaponWeight{
				{Weapon: AssaultRifle, Weight: 50},
				{Weapon: CarbineRifle, Weight: 50},
				{Weapon: SpecialCarbine, Weight: 45},
				{Weapon: Pistol, Weight: 40},
				{Weapon: SMG, Weight: 40},
				{Weapon: PumpShotgun, Weight: 30},
				{Weapon: AssaultShotgun, Weight: 25},
				{Weapon: MachinePistol, Weight: 25},
				{Weapon: CombatMG, Weight: 15},
				{Weapon: MG, Weight: 10},
				{Weapon: CombatMG, Weight: 10},
			},
			WeaponsRegular: []model.WeaponWeight{
				{Weapon: Pistol, Weight: 75},
				{Weapon: MicroSMG, Weight: 40},
				{Weapon: PumpShotgun, Weight: 25},
				{Weapon: SMG, Weight: 25},
				{Weapon: MachinePistol, Weight: 20},
				{Weapon: AssaultRifle, Weight: 15},
				{Weapon: Knife, Weight: 10},
				{Weapon: Bat, Weight: 10},
				{Weapon: CombatMG, Weight: 5},
			},
			PrimaryColor:   color(88),
			SecondaryColor: color(88),
			Announcement:   "The Vagos tailed you and want you dead!",
		},
		{
			Name:            "LSPD",
			VehiclesElite:   []string{"POLICE", "POLICE3", "POLICE2", "POLICET", "RIOT", "POLICE4", "POLICE5", "SHERIFF", "SHERIFF2", "POLTERMINUS", "POLCOQUETTE4", "POLDORADO", "POLGAUNTLET", "POLIMPALER5", "FBI", "FBI2"},
			VehiclesRegular: []string{"POLICE", "POLICE3", "POLICE2", "POLICEB", "POLICE5", "SHERIFF", "SHERIFF2", "POLFACTION2", "POLTERMINUS", "POLGREENWOOD", "POLIMPALER6", "POLIMPALER5"},
			AgentsElite:     []string{"S_M_Y_SWAT_01", "S_M_Y_COP_01", "S_M_Y_SHERIFF_01", "S_M_Y_COP_01", "S_M_Y_SHERIFF_01", "S_M_Y_MARINE_03", "S_M_M_CIASEC_01", "S_M_M_FIBSEC_01", "S_M_M_FIBOFFICE_01", "IG_FBISUIT_01"},
			AgentsRegular:   []string{"S_F_Y_COP_01", "S_M_Y_COP_01", "S_M_Y_HWAYCOP_01", "S_M_Y_SHERIFF_01", "S_F_Y_SHERIFF_01"},
			WeaponsElite: []model.WeaponWeight{
				{Weapon: SpecialCarbine, Weight: 45},
				{Weapon: Pistol, Weight: 40},
				{Weapon: PistolMk2, Weight: 40},
				{Weapon: SpecialCarbineMk2, Weight: 30},
				{Weapon: SMG, Weight: 30},
				{Weapon: CarbineRifleMk2, Weight: 30},
				{Weapon: BullpupShotgun, Weight: 25},
				{Weapon: SniperRifle, Weight: 20},
			},
			WeaponsRegular: []model.WeaponWeight{
				{Weapon: Pistol, Weight: 75},
				{Weapon: PumpShotgun, Weight: 30},
				{Weapon: CarbineRifle, Weight: 15},
				{Weapon: Nightstick, Weight: 5},
			},
			Announcement: "The LSPD are coming for you!",
		},
		{
			Name:            "Duggan Crime Family",
			VehiclesElite:   []string{"CARACARA2", "CAVALCADE3", "MENACER"},
			VehiclesRegular: []string{"KAMACHO", "CARACARA", "CAVALCADE3"},
			AgentsElite:     []string{"S_M_Y_WESTSEC_01", "S_M_Y_WESTSEC_02", "S_M_M_HIGHSEC_05", "S_M_M_HIGHSEC_04"},
			AgentsRegular:   []string{"S_M_Y_WESTSEC_01", "S_M_Y_WESTSEC_02", "S_M_M_HIGHSEC_05", "S_M_M_HIGHSEC_04"},
			WeaponsElite: []model.WeaponWeight{
				{Weapon: SpecialCarbine, Weight: 45},
				{Weapon: Pistol, Weight: 40},
				{Weapon: MicroSMG, Weight: 40},
				{Weapon: SpecialCarbineMk2, Weight: 30},
				{Weapon: CarbineRifleMk2, Weight: 30},
				{Weapon: BullpupRifle, Weight: 25},
				{Weapon: BullpupShotgun, Weight: 25},
				{Weapon: SniperRifle, Weight: 20},
			},
			WeaponsRegular: []model.WeaponWeight{
				{Weapon: Pistol, Weight: 75},
				{Weapon: SMG, Weight: 40},
				{Weapon: MicroSMG, Weight: 40},
				{Weapon: CombatPDW, Weight: 35},
				{Weapon: CarbineRifle, Weight: 30},
				{Weapon: BullpupShotgun, Weight: 25},
				{Weapon: PumpShotgun, Weight: 15},
			},
			Announcement: "The Duggans are coming for you!",
		},
	}
}
