package spawn

// Config holds the tunable numbers of agent and vehicle creation.
type Config struct {
	// EliteChancePercent is the d100 threshold for an elite roll, re-rolled per agent.
	EliteChancePercent int `yaml:"elite_chance_percent"`

	EliteHealth   int `yaml:"elite_health"`
	RegularHealth int `yaml:"regular_health"`

	Accuracy int `yaml:"accuracy"`
	FireRate int `yaml:"fire_rate"`

	// Elite agents get armor in [EliteArmorMin, EliteArmorMax) with this chance.
	EliteArmorChancePercent int `yaml:"elite_armor_chance_percent"`
	EliteArmorMin           int `yaml:"elite_armor_min"`
	EliteArmorMax           int `yaml:"elite_armor_max"`

	// CashMax is the exclusive upper bound of cash on hand.
	CashMax int `yaml:"cash_max"`

	WeaponAmmo int `yaml:"weapon_ammo"`

	// PassengerChances is cycled over the free passenger seats of a vehicle.
	PassengerChances []int `yaml:"passenger_chances"`

	// Number of vehicle mod categories to randomize and wheel families to choose from.
	ModTypes   int `yaml:"mod_types"`
	WheelTypes int `yaml:"wheel_types"`

	DriveSpeed float32 `yaml:"drive_speed"`

	// GroupName names the hostile relationship group.
	GroupName string `yaml:"group_name"`
}

// DefaultConfig returns the stock values.
func DefaultConfig() Config {
	return Config{
		EliteChancePercent:      25,
		EliteHealth:             400,
		RegularHealth:           200,
		Accuracy:                50,
		FireRate:                100,
		EliteArmorChancePercent: 25,
		EliteArmorMin:           25,
		EliteArmorMax:           50,
		CashMax:                 40,
		WeaponAmmo:              9999,
		PassengerChances:        []int{80, 50, 32, 18},
		ModTypes:                50,
		WheelTypes:              7,
		DriveSpeed:              90,
		GroupName:               "HITMEN",
	}
}
