// Package faction holds the static registry of hostile factions.
package faction

import (
	"errors"
	"fmt"

	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/rng"
)

var (
	// ErrUnknownFaction is returned for an id outside the catalog.
	ErrUnknownFaction = errors.New("unknown faction")

	// ErrInvalidDefinition is returned for a selectable faction with an empty pool
	// or a weapon table without positive weight.
	ErrInvalidDefinition = errors.New("invalid faction definition")
)

// ID identifies a faction inside a Catalog. IDs are dense, starting at 0.
type ID int

// Definition is one hostile archetype: spawn pools, weapon weighting and presentation.
// Immutable once added to a Catalog.
type Definition struct {
	ID   ID
	Name string

	VehiclesElite   []string
	VehiclesRegular []string
	AgentsElite     []string
	AgentsRegular   []string
	WeaponsElite    []model.WeaponWeight
	WeaponsRegular  []model.WeaponWeight

	// Vehicle paint; nil leaves the channel unchanged.
	PrimaryColor   *int
	SecondaryColor *int

	Announcement string
}

// Vehicles returns the vehicle pool for tier.
func (d *Definition) Vehicles(tier model.Tier) []string {
	if tier.IsElite() {
		return d.VehiclesElite
	}
	return d.VehiclesRegular
}

// Agents returns the agent model pool for tier.
func (d *Definition) Agents(tier model.Tier) []string {
	if tier.IsElite() {
		return d.AgentsElite
	}
	return d.AgentsRegular
}

// Weapons returns the weapon table for tier in selector form.
func (d *Definition) Weapons(tier model.Tier) []rng.Weighted[model.WeaponID] {
	table := d.WeaponsRegular
	if tier.IsElite() {
		table = d.WeaponsElite
	}

	entries := make([]rng.Weighted[model.WeaponID], len(table))
	for i, w := range table {
		entries[i] = rng.Weighted[model.WeaponID]{Item: w.Weapon, Weight: w.Weight}
	}
	return entries
}

// HasColors reports whether any paint channel is set.
func (d *Definition) HasColors() bool {
	return d.PrimaryColor != nil || d.SecondaryColor != nil
}

// Colors returns the paint pair with -1 for unset channels.
func (d *Definition) Colors() (primary, secondary int) {
	primary, secondary = -1, -1
	if d.PrimaryColor != nil {
		primary = *d.PrimaryColor
	}
	if d.SecondaryColor != nil {
		secondary = *d.SecondaryColor
	}
	return primary, secondary
}

// Validate checks the selectable-faction invariants.
func (d *Definition) Validate() error {
	pools := []struct {
		name string
		pool []string
	}{
		{"elite vehicles", d.VehiclesElite},
		{"regular vehicles", d.VehiclesRegular},
		{"elite agents", d.AgentsElite},
		{"regular agents", d.AgentsRegular},
	}
	for _, p := range pools {
		if len(p.pool) == 0 {
			return fmt.Errorf("faction %q: %s pool is empty: %w", d.Name, p.name, ErrInvalidDefinition)
		}
	}

	tables := []struct {
		name  string
		table []model.WeaponWeight
	}{
		{"elite weapons", d.WeaponsElite},
		{"regular weapons", d.WeaponsRegular},
	}
	for _, tbl := range tables {
		if len(tbl.table) == 0 {
			return fmt.Errorf("faction %q: %s table is empty: %w", d.Name, tbl.name, ErrInvalidDefinition)
		}
		for _, w := range tbl.table {
			if w.Weight <= 0 {
				return fmt.Errorf("faction %q: %s entry %s has weight %d: %w",
					d.Name, tbl.name, w.Weapon, w.Weight, ErrInvalidDefinition)
			}
		}
	}

	return nil
}
