package ecs

// System updates a world each simulation tick.
type System interface {
	Update(w *World, dt float64)
}

// World owns entities, component storage, and system order.
type World struct {
	entities entityStore
	systems  []System

	transforms *SparseSet
	movers     *SparseSet
	scripts    *SparseSet
	vehicles   *SparseSet
	rigRefs    *SparseSet
	markers    *SparseSet

	arena *Arena
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops its components. It reports
// whether the handle was alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range []*SparseSet{w.transforms, w.movers, w.scripts, w.vehicles, w.rigRefs, w.markers} {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is current.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entity handles.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.alive()
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once with the frame's time step.
func (w *World) Update(dt float64) {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w, dt)
		}
	}
}

// SetArena attaches a physics arena to this world.
func (w *World) SetArena(a *Arena) {
	if w == nil {
		return
	}
	w.arena = a
}

// Arena returns the attached physics arena, if any.
func (w *World) Arena() *Arena {
	if w == nil {
		return nil
	}
	return w.arena
}
