// Package placement decides where new hostiles appear relative to the subject.
package placement

import (
	"github.com/udisondev/hitsquads/internal/model"
	"github.com/udisondev/hitsquads/internal/rng"
	"github.com/udisondev/hitsquads/internal/world"
)

// Distance envelopes, in world units.
const (
	FootMinDistance = 25
	FootMaxDistance = 60

	VehicleMinDistance = 100
	VehicleMaxDistance = 150

	MobileVehicleMinDistance = 175
	MobileVehicleMaxDistance = 200
)

// Envelope returns the inclusive radius range for a spawn of kind.
// subjectMobile only matters for vehicle spawns.
func Envelope(kind model.SpawnKind, subjectMobile bool) (minDist, maxDist int) {
	if kind != model.SpawnVehicle {
		return FootMinDistance, FootMaxDistance
	}
	if subjectMobile {
		return MobileVehicleMinDistance, MobileVehicleMaxDistance
	}
	return VehicleMinDistance, VehicleMaxDistance
}

// Placer proposes spawn locations. Geometry is delegated to the navigator;
// the placer only draws the radius.
type Placer struct {
	nav world.Navigator
	src rng.Source
}

// NewPlacer creates a placer.
func NewPlacer(nav world.Navigator, src rng.Source) *Placer {
	return &Placer{nav: nav, src: src}
}

// Radius draws a uniform integer radius in the envelope for kind.
func (p *Placer) Radius(kind model.SpawnKind, subjectMobile bool) int {
	lo, hi := Envelope(kind, subjectMobile)
	return rng.Between(p.src, lo, hi+1)
}

// ProposeLocation returns a resolved spawn point around subject.
// On-foot points are resolved onto a walkable surface, vehicle points onto a road;
// the road heading is discarded here and re-derived when the vehicle is placed.
func (p *Placer) ProposeLocation(kind model.SpawnKind, subject model.Position, subjectMobile bool) model.Position {
	radius := p.Radius(kind, subjectMobile)
	raw := p.nav.Around(subject, float32(radius))

	if kind == model.SpawnVehicle {
		pos, _ := p.nav.ResolveToRoad(raw)
		return pos
	}
	return p.nav.ResolveToWalkable(raw)
}
