package population

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/udisondev/hitsquads/internal/model"
)

// Slot is the stable registry key of a managed agent. Slots are generational:
// a removed slot never aliases a later agent even when the engine recycles handles.
type Slot = ecs.Entity

// Entry identifies the engine agent behind a slot.
type Entry struct {
	Agent   model.AgentHandle
	Tier    model.Tier
	Kind    model.SpawnKind
	Vehicle model.VehicleHandle // vehicle the agent arrived in, zero on foot
}

// Markers are the on-screen markers owned for a slot. A vehicle marker is held
// by one crew slot at a time: the driver's, then a seated survivor's once the
// holder is culled.
type Markers struct {
	Agent   model.MarkerHandle
	Vehicle model.MarkerHandle
}

// Tracking is the advisory movement history used for stuck detection.
type Tracking struct {
	LastPosition model.Position
	LastCheck    time.Time
	Stuck        bool
}

// Registry is the arena of managed agents. Not safe for concurrent use.
type Registry struct {
	world  *ecs.World
	mapper *ecs.Map3[Entry, Markers, Tracking]
	filter *ecs.Filter3[Entry, Markers, Tracking]
	count  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	w := ecs.NewWorld()
	return &Registry{
		world:  w,
		mapper: ecs.NewMap3[Entry, Markers, Tracking](w),
		filter: ecs.NewFilter3[Entry, Markers, Tracking](w),
	}
}

// Add registers an agent and returns its slot.
func (r *Registry) Add(e Entry, m Markers, t Tracking) Slot {
	r.count++
	return r.mapper.NewEntity(&e, &m, &t)
}

// Get returns the components of slot.
func (r *Registry) Get(s Slot) (*Entry, *Markers, *Tracking, bool) {
	if !r.world.Alive(s) {
		return nil, nil, nil, false
	}
	e, m, t := r.mapper.Get(s)
	return e, m, t, true
}

// Contains reports whether slot is registered.
func (r *Registry) Contains(s Slot) bool {
	return r.world.Alive(s)
}

// Each calls fn for every registered agent. fn may modify the components
// but must not add or remove slots.
func (r *Registry) Each(fn func(s Slot, e *Entry, m *Markers, t *Tracking)) {
	query := r.filter.Query()
	for query.Next() {
		e, m, t := query.Get()
		fn(query.Entity(), e, m, t)
	}
}

// Slots returns a snapshot of every registered slot.
func (r *Registry) Slots() []Slot {
	slots := make([]Slot, 0, r.count)
	query := r.filter.Query()
	for query.Next() {
		slots = append(slots, query.Entity())
	}
	return slots
}

// Remove unregisters slot. Removing an unknown or stale slot is a no-op.
func (r *Registry) Remove(s Slot) bool {
	if !r.world.Alive(s) {
		return false
	}
	r.world.RemoveEntity(s)
	r.count--
	return true
}

// Clear unregisters every slot and returns how many were removed.
func (r *Registry) Clear() int {
	n := 0
	for _, s := range r.Slots() {
		if r.Remove(s) {
			n++
		}
	}
	return n
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	return r.count
}
