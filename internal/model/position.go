package model

import "math"

// Position is a point in world space.
// Value type, passed by value.
type Position struct {
	X float32
	Y float32
	Z float32
}

// NewPosition creates a Position with the given coordinates.
func NewPosition(x, y, z float32) Position {
	return Position{X: x, Y: y, Z: z}
}

// WithZ returns a copy of the position with a new height.
func (p Position) WithZ(z float32) Position {
	p.Z = z
	return p
}

// Add returns p offset by (dx, dy, dz).
func (p Position) Add(dx, dy, dz float32) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Z: p.Z + dz}
}

// DistanceSquared returns the squared distance to other (no sqrt).
func (p Position) DistanceSquared(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	dz := float64(p.Z - other.Z)
	return dx*dx + dy*dy + dz*dz
}

// DistanceTo returns the euclidean distance to other.
func (p Position) DistanceTo(other Position) float32 {
	return float32(math.Sqrt(p.DistanceSquared(other)))
}

// Around returns the point at radius from p in direction angle (radians), same height.
func (p Position) Around(radius float32, angle float64) Position {
	return Position{
		X: p.X + radius*float32(math.Cos(angle)),
		Y: p.Y + radius*float32(math.Sin(angle)),
		Z: p.Z,
	}
}
