package world

import "sync/atomic"

// HandleGenerator hands out engine handles for simulated entities.
//
// Handle ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = null handle)
//	0x10000000 - 0x1FFFFFFF: Relationship groups
//	0x20000000 - 0x2FFFFFFF: Agents
//	0x30000000 - 0x3FFFFFFF: Vehicles
//	0x40000000 - 0x4FFFFFFF: Markers
//
// Handles are never recycled, so a stale handle can only miss, never alias.
type HandleGenerator struct {
	nextGroup   atomic.Uint32
	nextAgent   atomic.Uint32
	nextVehicle atomic.Uint32
	nextMarker  atomic.Uint32
}

// NewHandleGenerator creates a generator positioned at the start of every range.
func NewHandleGenerator() *HandleGenerator {
	gen := &HandleGenerator{}
	gen.nextGroup.Store(0x10000000)
	gen.nextAgent.Store(0x20000000)
	gen.nextVehicle.Store(0x30000000)
	gen.nextMarker.Store(0x40000000)
	return gen
}

// NextGroup returns the next relationship group handle.
func (g *HandleGenerator) NextGroup() uint32 {
	return g.nextGroup.Add(1)
}

// NextAgent returns the next agent handle.
func (g *HandleGenerator) NextAgent() uint32 {
	return g.nextAgent.Add(1)
}

// NextVehicle returns the next vehicle handle.
func (g *HandleGenerator) NextVehicle() uint32 {
	return g.nextVehicle.Add(1)
}

// NextMarker returns the next marker handle.
func (g *HandleGenerator) NextMarker() uint32 {
	return g.nextMarker.Add(1)
}
