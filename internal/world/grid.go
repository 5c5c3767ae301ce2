package world

import (
	"math"

	"github.com/udisondev/hitsquads/internal/model"
)

// Road lattice of the simulated map: roads run along every multiple of
// RoadSpacing on both axes, sidewalks sit SidewalkOffset off the centre line.
const (
	// ShiftBy - shift by N bits for 2^N units between parallel roads (2^6 = 64)
	ShiftBy = 6

	// RoadSpacing in world units
	RoadSpacing = 1 << ShiftBy

	// SidewalkOffset from the road centre line
	SidewalkOffset = 6

	// Headings (degrees) of traffic along the lattice
	HeadingNorth float32 = 0
	HeadingEast  float32 = 90
)

// nearestLine returns the closest multiple of RoadSpacing to v.
func nearestLine(v float32) float32 {
	return float32(math.Round(float64(v)/RoadSpacing) * RoadSpacing)
}

// SnapToRoad moves p onto the closest road centre line of the lattice and
// returns the traffic heading along that road.
func SnapToRoad(p model.Position) (model.Position, float32) {
	lx := nearestLine(p.X)
	ly := nearestLine(p.Y)

	// Vertical road x = lx runs north; horizontal road y = ly runs east.
	if math.Abs(float64(p.X-lx)) <= math.Abs(float64(p.Y-ly)) {
		return model.Position{X: lx, Y: p.Y, Z: p.Z}, HeadingNorth
	}
	return model.Position{X: p.X, Y: ly, Z: p.Z}, HeadingEast
}

// SnapToSidewalk moves p onto the sidewalk beside its closest road.
func SnapToSidewalk(p model.Position) model.Position {
	road, heading := SnapToRoad(p)

	side := float32(SidewalkOffset)
	if heading == HeadingNorth {
		if p.X < road.X {
			side = -side
		}
		return road.Add(side, 0, 0)
	}
	if p.Y < road.Y {
		side = -side
	}
	return road.Add(0, side, 0)
}
