package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/hitsquads/internal/faction"
	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/placement"
	"github.com/udisondev/hitsquads/internal/rng"
	"github.com/udisondev/hitsquads/internal/testutil"
	"github.com/udisondev/hitsquads/internal/world"
)

func testDefinition() *faction.Definition {
	primary := 53
	return &faction.Definition{
		Name:            "Test Crew",
		VehiclesElite:   []string{"VAN_HI"},
		VehiclesRegular: []string{"VAN_LO"},
		AgentsElite:     []string{"HI_PED"},
		AgentsRegular:   []string{"LO_PED"},
		WeaponsElite: []model.WeaponWeight{
			{Weapon: faction.AssaultRifle, Weight: 60},
			{Weapon: faction.CarbineRifle, Weight: 40},
		},
		WeaponsRegular: []model.WeaponWeight{
			{Weapon: faction.Pistol, Weight: 75},
			{Weapon: faction.Knife, Weight: 25},
		},
		PrimaryColor: &primary,
	}
}

func newTestFactory(t *testing.T, cfg Config, draws ...int) (*Factory, *world.Sim, *testutil.ScriptedSource) {
	t.Helper()
	sim := world.NewSim(world.DefaultSimConfig())
	sim.SetSubject(model.NewPosition(0, 0, 0), false)
	src := testutil.NewScriptedSource(t, draws...)
	f := NewFactory(sim, placement.NewPlacer(sim, src), src, cfg)
	return f, sim, src
}

func TestFactory_SpawnFootAgent_Elite(t *testing.T) {
	// tier 10 (<25 elite), model 0, radius 0, armor roll 99 (none), cash 7, weapon 70 (carbine)
	f, sim, src := newTestFactory(t, DefaultConfig(), 10, 0, 0, 99, 7, 70)
	def := testDefinition()

	r, err := f.SpawnFootAgent(def, model.TierRegular)
	require.NoError(t, err)
	assert.Equal(t, 0, src.Remaining())
	assert.Len(t, src.Calls(), 6)

	assert.Equal(t, model.TierElite, r.Tier)
	assert.False(t, r.Vehicle.Valid())

	st, ok := sim.Agent(r.Agent)
	require.True(t, ok)
	assert.Equal(t, "HI_PED", st.Model)
	assert.Equal(t, 400, st.MaxHealth)
	assert.Equal(t, 400, st.Health)
	assert.Equal(t, 0, st.Armor)
	assert.Equal(t, 7, st.Cash)
	assert.Equal(t, faction.CarbineRifle, st.Equipped)
	assert.Equal(t, 9999, st.Ammo)
	assert.Equal(t, world.CombatStats{Accuracy: 50, FireRate: 100, CanSwitchWeapons: true}, st.Stats)
	assert.True(t, st.Styled)

	assert.True(t, st.Attrs[world.AttrCanUseCover])
	assert.True(t, st.Attrs[world.AttrCanFightArmedWhenUnarmed])
	assert.True(t, st.Attrs[world.AttrAlwaysFight])
	assert.False(t, st.Attrs[world.AttrDisableReactToBuddyShot])
	assert.False(t, st.Flags[world.FlagDontRagdollFromBulletImpact])
	assert.True(t, st.Flags[world.FlagForceRagdollOnDeath])

	assert.Equal(t, world.TaskEngageSubject, st.Task.Kind)
	assert.Equal(t, f.Group(), st.Group)

	dist := st.Position.DistanceTo(model.NewPosition(0, 0, 0))
	assert.InDelta(t, 25, dist, world.RoadSpacing, "foot agent spawns near the envelope radius")
}

func TestFactory_SpawnFootAgent_Regular(t *testing.T) {
	// tier 80 (regular), model 0, radius 35, cash 39, weapon 10 (pistol)
	f, sim, src := newTestFactory(t, DefaultConfig(), 80, 0, 35, 39, 10)

	r, err := f.SpawnFootAgent(testDefinition(), model.TierElite)
	require.NoError(t, err)
	assert.Equal(t, 0, src.Remaining())

	st, ok := sim.Agent(r.Agent)
	require.True(t, ok)
	assert.Equal(t, model.TierRegular, r.Tier)
	assert.Equal(t, "LO_PED", st.Model)
	assert.Equal(t, 200, st.MaxHealth)
	assert.Equal(t, 200, st.Health)
	assert.Equal(t, 0, st.Armor)
	assert.Equal(t, 39, st.Cash)
	assert.Equal(t, faction.Pistol, st.Equipped)
}

func TestFactory_EliteArmor(t *testing.T) {
	// tier 0, model 0, radius 0, armor roll 5 (<25), armor 10 -> 35, cash 0, weapon 0
	f, sim, src := newTestFactory(t, DefaultConfig(), 0, 0, 0, 5, 10, 0, 0)

	r, err := f.SpawnFootAgent(testDefinition(), model.TierRegular)
	require.NoError(t, err)
	assert.Equal(t, 0, src.Remaining())

	st, _ := sim.Agent(r.Agent)
	assert.Equal(t, 35, st.Armor)
	assert.Equal(t, faction.AssaultRifle, st.Equipped)
}

func TestFactory_WeaponMatchesTier(t *testing.T) {
	f, sim, _ := newTestFactory(t, DefaultConfig())
	def := testDefinition()

	elite := map[model.WeaponID]bool{faction.AssaultRifle: true, faction.CarbineRifle: true}
	regular := map[model.WeaponID]bool{faction.Pistol: true, faction.Knife: true}

	var elites, regulars int
	for range 500 {
		r, err := f.SpawnFootAgent(def, model.TierRegular)
		require.NoError(t, err)
		st, _ := sim.Agent(r.Agent)

		if r.Tier.IsElite() {
			elites++
			assert.True(t, elite[st.Equipped], "elite agent got %s", st.Equipped)
			assert.Equal(t, 400, st.Health)
			assert.GreaterOrEqual(t, st.Armor, 0)
			assert.Less(t, st.Armor, 50)
		} else {
			regulars++
			assert.True(t, regular[st.Equipped], "regular agent got %s", st.Equipped)
			assert.Equal(t, 200, st.Health)
			assert.Equal(t, 0, st.Armor)
		}
	}
	assert.InDelta(t, 125, elites, 40)
	assert.Equal(t, 500, elites+regulars)
}

func TestFactory_HostileGroupCreatedOnce(t *testing.T) {
	f, sim, _ := newTestFactory(t, DefaultConfig())
	def := testDefinition()
	assert.False(t, f.Group().Valid())

	for range 5 {
		_, err := f.SpawnFootAgent(def, model.TierRegular)
		require.NoError(t, err)
	}

	g := f.Group()
	require.True(t, g.Valid())
	assert.Equal(t, 2, sim.GroupCount(), "subject group plus one hostile group")

	rel, ok := sim.RelationshipBetween(g, sim.SubjectGroup())
	require.True(t, ok)
	assert.Equal(t, world.RelationshipHate, rel)
	rel, ok = sim.RelationshipBetween(sim.SubjectGroup(), g)
	require.True(t, ok)
	assert.Equal(t, world.RelationshipHate, rel)
	rel, ok = sim.RelationshipBetween(g, g)
	require.True(t, ok)
	assert.Equal(t, world.RelationshipLike, rel)
}

func TestFactory_SpawnFootAgent_InvalidModel(t *testing.T) {
	f, sim, _ := newTestFactory(t, DefaultConfig(), 99, 0, 0)
	sim.RejectModel("LO_PED")

	_, err := f.SpawnFootAgent(testDefinition(), model.TierRegular)
	require.ErrorIs(t, err, world.ErrInvalidModel)
	assert.Equal(t, 0, sim.AgentCount())
	assert.Equal(t, []string{"Invalid agent model: LO_PED"}, sim.Notifications())
}

func TestFactory_SpawnFootAgent_NullHandle(t *testing.T) {
	f, sim, _ := newTestFactory(t, DefaultConfig())
	sim.FailCreationsAfter(0)

	_, err := f.SpawnFootAgent(testDefinition(), model.TierRegular)
	require.ErrorIs(t, err, ErrSpawnAborted)
	assert.Equal(t, 0, sim.AgentCount())
	assert.Empty(t, sim.Notifications())
}

func TestFactory_SpawnVehicleAgent_PassengerDraws(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModTypes = 0
	cfg.PassengerChances = []int{80, 50, 32}

	draws := []int{
		0,  // radius
		99, // tier: regular
		0,  // vehicle model
		0,  // driver model
		3,  // wheel type
		5,  // wheel mod
		0,  // driver cash
		0,  // driver weapon
		90, // seat 0: 90 >= 80, empty
		10, // seat 1: 10 < 50, passenger
		99, 0, 0, 0,
		31, // seat 2: 31 < 32, passenger
		99, 0, 0, 0,
	}
	f, sim, src := newTestFactory(t, cfg, draws...)

	squad, err := f.SpawnVehicleAgent(testDefinition(), model.TierRegular)
	require.NoError(t, err)
	require.NotNil(t, squad)

	assert.Equal(t, 0, src.Remaining())
	assert.Len(t, src.Calls(), len(draws), "three free seats take exactly three chance draws")

	require.Len(t, squad.Members, 3)
	assert.Equal(t, model.SeatDriver, squad.Driver().Seat)
	passengers := squad.Passengers()
	assert.Equal(t, model.Seat(1), passengers[0].Seat)
	assert.Equal(t, model.Seat(2), passengers[1].Seat)

	vs, ok := sim.Vehicle(squad.Vehicle)
	require.True(t, ok)
	assert.Equal(t, "VAN_LO", vs.Model)
	assert.Equal(t, 53, vs.Primary)
	assert.Equal(t, 0, vs.Secondary, "unset channel is left unchanged")
	assert.Equal(t, 3, vs.WheelType)
	assert.Equal(t, 5, vs.Mods[world.WheelModType])
	assert.True(t, vs.Released)
	assert.Len(t, vs.Occupants, 3)

	road, _ := world.SnapToRoad(vs.Position)
	assert.Equal(t, road, vs.Position)

	driver, _ := sim.Agent(squad.Driver().Agent)
	assert.Equal(t, world.TaskDriveToSubject, driver.Task.Kind)
	assert.Equal(t, squad.Vehicle, driver.Task.Vehicle)
	assert.InDelta(t, 90, driver.Task.Speed, 0.001)

	for _, p := range passengers {
		st, _ := sim.Agent(p.Agent)
		assert.Equal(t, world.TaskEngageSubject, st.Task.Kind)
		assert.Equal(t, squad.Vehicle, st.Vehicle)
	}
}

func TestFactory_SpawnVehicleAgent_FillsEverySeat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PassengerChances = []int{100}
	f, sim, _ := newTestFactory(t, cfg)

	squad, err := f.SpawnVehicleAgent(testDefinition(), model.TierRegular)
	require.NoError(t, err)

	assert.Len(t, squad.Passengers(), sim.Config().DefaultPassengerSeats)
	for _, m := range squad.Members {
		assert.Equal(t, squad.Vehicle, m.Vehicle)
	}
}

func TestFactory_SpawnVehicleAgent_NoPassengerSeats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PassengerChances = []int{100}
	f, _, _ := newTestFactory(t, cfg)

	def := testDefinition()
	def.VehiclesElite = []string{"BMX"}
	def.VehiclesRegular = []string{"BMX"}

	squad, err := f.SpawnVehicleAgent(def, model.TierRegular)
	require.NoError(t, err)
	assert.Len(t, squad.Members, 1)
	assert.Empty(t, squad.Passengers())
}

func TestFactory_SpawnVehicleAgent_InvalidVehicle(t *testing.T) {
	f, sim, _ := newTestFactory(t, DefaultConfig())
	sim.RejectModel("VAN_HI")
	sim.RejectModel("VAN_LO")

	squad, err := f.SpawnVehicleAgent(testDefinition(), model.TierRegular)
	require.ErrorIs(t, err, world.ErrInvalidModel)
	assert.Nil(t, squad)
	assert.Equal(t, 0, sim.VehicleCount())
	assert.Equal(t, 0, sim.AgentCount())
	require.Len(t, sim.Notifications(), 1)
	assert.Contains(t, sim.Notifications()[0], "Invalid vehicle model: VAN_")
}

func TestFactory_SpawnVehicleAgent_InvalidDriver(t *testing.T) {
	f, sim, _ := newTestFactory(t, DefaultConfig())
	sim.RejectModel("HI_PED")
	sim.RejectModel("LO_PED")

	squad, err := f.SpawnVehicleAgent(testDefinition(), model.TierRegular)
	require.ErrorIs(t, err, world.ErrInvalidModel)
	assert.Nil(t, squad)
	assert.Equal(t, 0, sim.AgentCount())

	handles := sim.VehicleHandles()
	require.Len(t, handles, 1)
	vs, _ := sim.Vehicle(handles[0])
	assert.True(t, vs.Released, "orphaned vehicle is handed to engine cleanup")
}

func TestFactory_SpawnVehicleAgent_NullVehicle(t *testing.T) {
	f, sim, _ := newTestFactory(t, DefaultConfig())
	sim.FailCreationsAfter(0)

	squad, err := f.SpawnVehicleAgent(testDefinition(), model.TierRegular)
	require.ErrorIs(t, err, ErrSpawnAborted)
	assert.Nil(t, squad)
	assert.Empty(t, sim.Notifications())
}

func TestFactory_SpawnFootAgent_ConfigureFailureReleasesAgent(t *testing.T) {
	// tier 0 (elite), model 0, radius 0, armor roll 99 (none), cash 0; elite weapon table is empty
	f, sim, _ := newTestFactory(t, DefaultConfig(), 0, 0, 0, 99, 0)
	def := testDefinition()
	def.WeaponsElite = nil

	_, err := f.SpawnFootAgent(def, model.TierRegular)
	require.ErrorIs(t, err, rng.ErrEmptyTable)

	handles := sim.AgentHandles()
	require.Len(t, handles, 1)
	st, _ := sim.Agent(handles[0])
	assert.True(t, st.Released, "half-configured agent is handed back to the engine")
}

func TestFactory_SpawnVehicleAgent_PassengerFailurePropagates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ModTypes = 0
	cfg.PassengerChances = []int{100}

	draws := []int{
		0,  // radius
		99, // tier: regular
		0,  // vehicle model
		0,  // driver model
		3,  // wheel type
		5,  // wheel mod
		0,  // driver cash
		0,  // driver weapon
		0,  // seat 0: passenger
		0,  // passenger tier: elite
		0,  // passenger model
		99, // passenger armor roll: none
		0,  // passenger cash, then the empty elite table
	}
	f, sim, src := newTestFactory(t, cfg, draws...)
	def := testDefinition()
	def.WeaponsElite = nil

	squad, err := f.SpawnVehicleAgent(def, model.TierRegular)
	require.ErrorIs(t, err, rng.ErrEmptyTable)
	assert.Nil(t, squad)
	assert.Equal(t, 0, src.Remaining())

	require.Len(t, sim.AgentHandles(), 2)
	for _, a := range sim.AgentHandles() {
		st, _ := sim.Agent(a)
		assert.True(t, st.Released, "agent %d", a)
	}
	for _, v := range sim.VehicleHandles() {
		vs, _ := sim.Vehicle(v)
		assert.True(t, vs.Released)
	}
}

func TestFactory_SpawnVehicleAgent_AbortedPassengerSkipped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PassengerChances = []int{100}
	f, sim, _ := newTestFactory(t, cfg)
	sim.FailCreationsAfter(2) // vehicle and driver only

	squad, err := f.SpawnVehicleAgent(testDefinition(), model.TierRegular)
	require.NoError(t, err)
	assert.Empty(t, squad.Passengers())
	assert.Len(t, sim.AgentHandles(), 1)
}
