package faction

import (
	"fmt"

	"github.com/udisondev/hitsquads/internal/rng"
)

// Catalog is the read-only registry of factions. Safe for concurrent reads.
type Catalog struct {
	defs []*Definition
}

// NewCatalog validates defs and builds a catalog. IDs are reassigned densely
// in the given order.
func NewCatalog(defs []Definition) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("building catalog: no factions: %w", ErrInvalidDefinition)
	}

	c := &Catalog{defs: make([]*Definition, 0, len(defs))}
	for i := range defs {
		def := defs[i]
		def.ID = ID(i)
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("building catalog: %w", err)
		}
		c.defs = append(c.defs, &def)
	}
	return c, nil
}

// Default returns the catalog of built-in factions.
func Default() *Catalog {
	c, err := NewCatalog(builtin())
	if err != nil {
		panic(fmt.Sprintf("built-in factions are invalid: %v", err))
	}
	return c
}

// Get returns the faction with id.
func (c *Catalog) Get(id ID) (*Definition, error) {
	if id < 0 || int(id) >= len(c.defs) {
		return nil, fmt.Errorf("faction %d: %w", id, ErrUnknownFaction)
	}
	return c.defs[id], nil
}

// RandomID draws a faction id uniformly over [0, Count).
func (c *Catalog) RandomID(src rng.Source) ID {
	return ID(src.IntN(len(c.defs)))
}

// Count returns the number of factions.
func (c *Catalog) Count() int {
	return len(c.defs)
}
