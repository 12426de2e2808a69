package systems

import (
	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
)

// MoverSystem integrates plain velocities into transforms.
type MoverSystem struct{}

// NewMoverSystem creates a MoverSystem.
func NewMoverSystem() *MoverSystem {
	return &MoverSystem{}
}

// Update advances every mover by one step.
func (s *MoverSystem) Update(w *ecs.World, dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	for _, e := range ecs.IntersectEntities(w.Movers(), w.Transforms()) {
		m, ok := ecs.Get[*components.Mover](w.Movers(), e)
		if !ok {
			continue
		}
		tr, ok := ecs.Get[*components.Transform](w.Transforms(), e)
		if !ok {
			continue
		}
		tr.Position = tr.Position.Add(m.Velocity.Mul(dt))
		if m.YawRate != 0 {
			tr.Rotation = common.YawQuat(m.YawRate * dt).Mul(tr.Rotation).Normalize()
		}
	}
}
