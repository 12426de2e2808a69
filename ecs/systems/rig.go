package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
	"github.com/milk9111/camrig/rig"
)

// entityTarget adapts an entity's transform to the rig target contract.
// Rigs reseed their damping state when the target they are handed
// changes identity, so the system hands out one stable adapter per
// entity instead of allocating fresh ones each frame.
type entityTarget struct {
	w *ecs.World
	e ecs.Entity
}

func (t *entityTarget) Transform() (mgl64.Vec3, mgl64.Quat) {
	tr, ok := ecs.Get[*components.Transform](t.w.Transforms(), t.e)
	if !ok {
		return mgl64.Vec3{}, mgl64.QuatIdent()
	}
	return tr.Position, tr.Rotation
}

// RigSystem points every camera rig at its followed entities and ticks
// it. The body/aim pipeline runs here, once per rig per frame.
type RigSystem struct {
	targets map[ecs.Entity]*entityTarget
}

// NewRigSystem creates a RigSystem.
func NewRigSystem() *RigSystem {
	return &RigSystem{targets: make(map[ecs.Entity]*entityTarget)}
}

func (s *RigSystem) target(w *ecs.World, e ecs.Entity) rig.Target {
	if !w.IsAlive(e) {
		delete(s.targets, e)
		return nil
	}
	t, ok := s.targets[e]
	if !ok {
		t = &entityTarget{w: w, e: e}
		s.targets[e] = t
	}
	return t
}

// Update runs every rig once with the frame's time step.
func (s *RigSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s == nil {
		return
	}
	for _, e := range w.RigRefs().Entities() {
		ref, ok := ecs.Get[*components.RigRef](w.RigRefs(), e)
		if !ok || ref.Rig == nil {
			continue
		}
		ref.Rig.SetFollow(s.target(w, ecs.Entity(ref.Follow)))
		ref.Rig.SetLookAt(s.target(w, ecs.Entity(ref.LookAt)))
		ref.Rig.Update(dt)
	}
}
