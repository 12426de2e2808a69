package systems

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
)

const (
	// minHeadingSpeed is the ground speed below which a vehicle keeps
	// its previous heading.
	minHeadingSpeed  = 0.05
	defaultKickEvery = 2.5
	vehicleDrag      = 0.4
)

// PhysicsSystem steps the arena space and mirrors body poses back into
// transforms: ground-plane x/z from chipmunk, yaw from the velocity
// heading. It also applies the periodic impulse that keeps vehicles
// bouncing around the arena.
type PhysicsSystem struct{}

// NewPhysicsSystem creates a PhysicsSystem.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Update kicks due vehicles, steps the space, and syncs transforms.
func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	arena := w.Arena()
	if arena == nil {
		return
	}

	vehicles := ecs.IntersectEntities(w.Vehicles(), w.Transforms())

	for _, e := range vehicles {
		b, ok := ecs.Get[*components.Body2D](w.Vehicles(), e)
		if !ok || b.Body == nil {
			continue
		}
		b.KickIn -= dt
		if b.KickIn <= 0 {
			every := b.KickEvery
			if every <= 0 {
				every = defaultKickEvery
			}
			b.KickIn = every
			angle := rand.Float64() * 2 * math.Pi
			b.Body.ApplyImpulseAtWorldPoint(
				cp.Vector{X: math.Cos(angle) * b.Impulse, Y: math.Sin(angle) * b.Impulse},
				b.Body.Position(),
			)
		}
		// bleed speed between kicks
		vel := b.Body.Velocity()
		k := 1 - vehicleDrag*dt
		if k < 0 {
			k = 0
		}
		b.Body.SetVelocityVector(cp.Vector{X: vel.X * k, Y: vel.Y * k})
	}

	arena.Step(dt)

	for _, e := range vehicles {
		b, ok := ecs.Get[*components.Body2D](w.Vehicles(), e)
		if !ok || b.Body == nil {
			continue
		}
		tr, ok := ecs.Get[*components.Transform](w.Transforms(), e)
		if !ok {
			continue
		}
		pos := b.Body.Position()
		tr.Position = mgl64.Vec3{pos.X, b.Height, pos.Y}
		vel := b.Body.Velocity()
		if math.Hypot(vel.X, vel.Y) > minHeadingSpeed {
			tr.Rotation = common.YawQuat(math.Atan2(-vel.X, -vel.Y))
		}
	}
}
