// Package spawn creates and configures hostile agents and their vehicles.
package spawn

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/hitsquads/internal/faction"
	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/placement"
	"github.com/udisondev/hitsquads/internal/rng"
	"github.com/udisondev/hitsquads/internal/world"
)

// ErrSpawnAborted is returned when the engine accepted a model but did not
// materialize the entity. Callers skip the attempt without notifying.
var ErrSpawnAborted = errors.New("spawn aborted")

// Recruit is one freshly configured agent.
type Recruit struct {
	Agent   model.AgentHandle
	Tier    model.Tier
	Vehicle model.VehicleHandle // zero for on-foot agents
	Seat    model.Seat
}

// Squad is a vehicle with its crew. Members[0] is the driver.
type Squad struct {
	Vehicle model.VehicleHandle
	Tier    model.Tier
	Members []Recruit
}

// Driver returns the squad driver.
func (s *Squad) Driver() Recruit {
	return s.Members[0]
}

// Passengers returns the crew without the driver.
func (s *Squad) Passengers() []Recruit {
	return s.Members[1:]
}

// Factory creates hostile agents. Not safe for concurrent use: it is driven
// from the population controller's tick only.
type Factory struct {
	engine world.Engine
	placer *placement.Placer
	src    rng.Source
	cfg    Config

	// hostile relationship group, created on first use
	group model.GroupHandle
}

// NewFactory creates a factory.
func NewFactory(engine world.Engine, placer *placement.Placer, src rng.Source, cfg Config) *Factory {
	return &Factory{
		engine: engine,
		placer: placer,
		src:    src,
		cfg:    cfg,
	}
}

// Group returns the hostile relationship group, zero before the first spawn.
func (f *Factory) Group() model.GroupHandle {
	return f.group
}

// RollTier draws elite vs regular.
func (f *Factory) RollTier() model.Tier {
	if rng.Percent(f.src, f.cfg.EliteChancePercent) {
		return model.TierElite
	}
	return model.TierRegular
}

// SpawnFootAgent creates one configured agent on a walkable point near the subject.
// hint is advisory only; the tier is always re-rolled.
func (f *Factory) SpawnFootAgent(def *faction.Definition, hint model.Tier) (Recruit, error) {
	tier := f.RollTier()
	modelID := rng.Pick(f.src, def.Agents(tier))
	pos := f.placer.ProposeLocation(model.SpawnOnFoot, f.engine.SubjectPosition(), f.engine.SubjectInVehicle())

	a, err := f.createAgent(modelID, pos)
	if err != nil {
		return Recruit{}, err
	}
	if err := f.configure(a, def, tier); err != nil {
		f.engine.ReleaseAgent(a)
		return Recruit{}, err
	}

	slog.Debug("foot agent spawned",
		"agent", a,
		"faction", def.Name,
		"model", modelID,
		"tier", tier,
		"hint", hint,
		"position", pos)

	return Recruit{Agent: a, Tier: tier, Seat: model.SeatDriver}, nil
}

// SpawnVehicleAgent creates a vehicle on the road near the subject with a
// driver heading for the subject and a random number of passengers.
func (f *Factory) SpawnVehicleAgent(def *faction.Definition, hint model.Tier) (*Squad, error) {
	pos := f.placer.ProposeLocation(model.SpawnVehicle, f.engine.SubjectPosition(), f.engine.SubjectInVehicle())

	tier := f.RollTier()
	vehicleModel := rng.Pick(f.src, def.Vehicles(tier))
	driverModel := rng.Pick(f.src, def.Agents(tier))

	v, err := f.engine.CreateVehicle(vehicleModel, pos)
	if err != nil {
		f.engine.Notify(fmt.Sprintf("Invalid vehicle model: %s", vehicleModel))
		return nil, fmt.Errorf("creating vehicle %s: %w", vehicleModel, err)
	}
	if !v.Valid() || !f.engine.VehicleExists(v) {
		return nil, fmt.Errorf("creating vehicle %s: %w", vehicleModel, ErrSpawnAborted)
	}

	roadPos, heading := f.engine.ResolveToRoad(pos)
	f.engine.PlaceVehicle(v, roadPos, heading)

	if def.HasColors() {
		primary, secondary := def.Colors()
		f.engine.SetVehicleColors(v, primary, secondary)
	}
	f.randomizeMods(v)

	driver, err := f.seatAgent(v, def, driverModel, tier, model.SeatDriver)
	if err != nil {
		f.engine.ReleaseVehicle(v)
		return nil, err
	}
	f.engine.AssignTask(driver.Agent, world.Task{
		Kind:        world.TaskDriveToSubject,
		Vehicle:     v,
		Destination: f.engine.SubjectPosition(),
		Speed:       f.cfg.DriveSpeed,
	})

	squad := &Squad{Vehicle: v, Tier: tier, Members: []Recruit{driver}}
	if err := f.fillPassengers(squad, def); err != nil {
		for _, m := range squad.Members {
			f.engine.ReleaseAgent(m.Agent)
		}
		f.engine.ReleaseVehicle(v)
		return nil, err
	}

	f.engine.ReleaseVehicle(v)

	slog.Debug("vehicle squad spawned",
		"vehicle", v,
		"faction", def.Name,
		"model", vehicleModel,
		"tier", tier,
		"hint", hint,
		"crew", len(squad.Members),
		"position", roadPos)

	return squad, nil
}

// fillPassengers walks the passenger seats once. Every free seat costs one
// chance draw, taken from PassengerChances in cycling order. A passenger the
// engine could not create is skipped; any other failure ends the walk.
func (f *Factory) fillPassengers(squad *Squad, def *faction.Definition) error {
	chances := f.cfg.PassengerChances
	if len(chances) == 0 {
		return nil
	}

	available := f.freePassengerSeats(squad.Vehicle)
	passengers := 0
	attempt := 0
	for seat := model.Seat(0); seat < model.MaxPassengerSeats && passengers < available; seat++ {
		if !f.engine.SeatIsFree(squad.Vehicle, seat) {
			continue
		}
		chance := chances[attempt%len(chances)]
		attempt++
		if !rng.Percent(f.src, chance) {
			continue
		}

		tier := f.RollTier()
		modelID := rng.Pick(f.src, def.Agents(tier))
		r, err := f.seatAgent(squad.Vehicle, def, modelID, tier, seat)
		switch {
		case err == nil:
			squad.Members = append(squad.Members, r)
			passengers++
		case errors.Is(err, ErrSpawnAborted), errors.Is(err, world.ErrInvalidModel):
			slog.Debug("passenger skipped", "vehicle", squad.Vehicle, "seat", seat, "error", err)
		default:
			return fmt.Errorf("seating passenger %d: %w", seat, err)
		}
	}
	return nil
}

func (f *Factory) freePassengerSeats(v model.VehicleHandle) int {
	n := 0
	for seat := model.Seat(0); seat < model.MaxPassengerSeats; seat++ {
		if f.engine.SeatIsFree(v, seat) {
			n++
		}
	}
	return n
}

func (f *Factory) seatAgent(v model.VehicleHandle, def *faction.Definition, modelID string, tier model.Tier, seat model.Seat) (Recruit, error) {
	a, err := f.createAgent(modelID, f.engine.VehiclePosition(v))
	if err != nil {
		return Recruit{}, err
	}
	f.engine.WarpIntoSeat(a, v, seat)
	if err := f.configure(a, def, tier); err != nil {
		f.engine.ReleaseAgent(a)
		return Recruit{}, err
	}
	return Recruit{Agent: a, Tier: tier, Vehicle: v, Seat: seat}, nil
}

func (f *Factory) createAgent(modelID string, pos model.Position) (model.AgentHandle, error) {
	a, err := f.engine.CreateAgent(modelID, pos)
	if err != nil {
		f.engine.Notify(fmt.Sprintf("Invalid agent model: %s", modelID))
		return 0, fmt.Errorf("creating agent %s: %w", modelID, err)
	}
	if !a.Valid() {
		return 0, fmt.Errorf("creating agent %s: %w", modelID, ErrSpawnAborted)
	}
	return a, nil
}

// configure applies the fixed agent setup. Every step is safe to re-apply.
func (f *Factory) configure(a model.AgentHandle, def *faction.Definition, tier model.Tier) error {
	if !f.engine.AgentExists(a) {
		return fmt.Errorf("configuring agent %d: %w", a, ErrSpawnAborted)
	}

	health := f.cfg.RegularHealth
	if tier.IsElite() {
		health = f.cfg.EliteHealth
	}
	f.engine.SetHealth(a, health, health)

	f.engine.SetCombatStats(a, world.CombatStats{
		Accuracy:         f.cfg.Accuracy,
		FireRate:         f.cfg.FireRate,
		CanSwitchWeapons: true,
	})

	armor := 0
	if tier.IsElite() && rng.Percent(f.src, f.cfg.EliteArmorChancePercent) {
		armor = rng.Between(f.src, f.cfg.EliteArmorMin, f.cfg.EliteArmorMax)
	}
	f.engine.SetArmor(a, armor)

	f.engine.SetCash(a, rng.Between(f.src, 0, f.cfg.CashMax))

	weapon, err := rng.Select(f.src, def.Weapons(tier))
	if err != nil {
		return fmt.Errorf("choosing weapon for faction %q: %w", def.Name, err)
	}
	f.engine.GiveWeapon(a, weapon, f.cfg.WeaponAmmo, true)

	f.engine.RandomizeAppearance(a)

	f.engine.SetCombatAttribute(a, world.AttrCanUseCover, true)
	f.engine.SetCombatAttribute(a, world.AttrCanFightArmedWhenUnarmed, true)
	f.engine.SetCombatAttribute(a, world.AttrAlwaysFight, true)
	f.engine.SetCombatAttribute(a, world.AttrDisableReactToBuddyShot, false)
	f.engine.SetConfigFlag(a, world.FlagDontRagdollFromBulletImpact, false)
	f.engine.SetConfigFlag(a, world.FlagForceRagdollOnDeath, true)

	f.engine.SetRelationshipGroup(a, f.hostileGroup())

	f.engine.ClearTasks(a)
	f.engine.AssignTask(a, world.Task{Kind: world.TaskEngageSubject})

	return nil
}

// hostileGroup creates the hostile group once and wires its dispositions:
// mutual hate with the subject, like within the group.
func (f *Factory) hostileGroup() model.GroupHandle {
	if f.group.Valid() {
		return f.group
	}

	g := f.engine.AddRelationshipGroup(f.cfg.GroupName)
	subject := f.engine.SubjectGroup()
	f.engine.SetRelationship(world.RelationshipHate, g, subject)
	f.engine.SetRelationship(world.RelationshipHate, subject, g)
	f.engine.SetRelationship(world.RelationshipLike, g, g)
	f.group = g

	slog.Debug("hostile relationship group created", "group", g, "name", f.cfg.GroupName)
	return g
}

func (f *Factory) randomizeMods(v model.VehicleHandle) {
	for modType := range f.cfg.ModTypes {
		if n := f.engine.VehicleModCount(v, modType); n > 0 {
			f.engine.SetVehicleMod(v, modType, f.src.IntN(n))
		}
	}

	if f.cfg.WheelTypes > 0 {
		f.engine.SetWheelType(v, f.src.IntN(f.cfg.WheelTypes))
	}
	if n := f.engine.VehicleModCount(v, world.WheelModType); n > 0 {
		f.engine.SetVehicleMod(v, world.WheelModType, f.src.IntN(n))
	}
}
