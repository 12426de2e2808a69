package ecs

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/camrig/prefabs"
)

const (
	collisionTypeWall cp.CollisionType = iota + 1
	collisionTypeVehicle
)

const (
	vehicleMass   = 1.0
	vehicleSize   = 1.2
	wallThickness = 0.2
	maxArenaStep  = 0.1
)

// Arena owns the chipmunk space for ground-plane vehicles. The space is
// two dimensional: cp x maps to world x and cp y to world z, and bodies
// keep whatever height they spawned at. Walls are four static segments
// enclosing a width-by-depth rectangle centered on the origin.
type Arena struct {
	space *cp.Space
	spec  prefabs.ArenaSpec
}

// NewArena builds a space with static walls from an arena spec.
func NewArena(spec prefabs.ArenaSpec) *Arena {
	if spec.Width <= 0 {
		spec.Width = 40
	}
	if spec.Depth <= 0 {
		spec.Depth = 40
	}

	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	a := &Arena{space: space, spec: spec}
	a.buildWalls()
	return a
}

func (a *Arena) buildWalls() {
	hw := a.spec.Width / 2
	hd := a.spec.Depth / 2
	corners := []cp.Vector{
		{X: -hw, Y: -hd},
		{X: hw, Y: -hd},
		{X: hw, Y: hd},
		{X: -hw, Y: hd},
	}
	for i := range corners {
		from := corners[i]
		to := corners[(i+1)%len(corners)]
		shape := cp.NewSegment(a.space.StaticBody, from, to, wallThickness)
		shape.SetElasticity(a.spec.Elasticity)
		shape.SetFriction(a.spec.Friction)
		shape.SetCollisionType(collisionTypeWall)
		a.space.AddShape(shape)
	}
}

// AddVehicle creates a dynamic body at the given world position. Only x
// and z reach the space; the caller keeps the height.
func (a *Arena) AddVehicle(position mgl64.Vec3) *cp.Body {
	if a == nil || a.space == nil {
		return nil
	}
	moment := cp.MomentForBox(vehicleMass, vehicleSize, vehicleSize)
	body := cp.NewBody(vehicleMass, moment)
	body.SetPosition(cp.Vector{X: position.X(), Y: position.Z()})

	shape := cp.NewBox(body, vehicleSize, vehicleSize, 0)
	shape.SetElasticity(a.spec.Elasticity)
	shape.SetFriction(a.spec.Friction)
	shape.SetCollisionType(collisionTypeVehicle)

	a.space.AddBody(body)
	a.space.AddShape(shape)
	return body
}

// Step advances the space. Oversized steps are clamped so a stalled
// frame cannot tunnel bodies through the walls.
func (a *Arena) Step(dt float64) {
	if a == nil || a.space == nil || dt <= 0 {
		return
	}
	if dt > maxArenaStep {
		dt = maxArenaStep
	}
	a.space.Step(dt)
}

// Space returns the underlying chipmunk space.
func (a *Arena) Space() *cp.Space {
	if a == nil {
		return nil
	}
	return a.space
}

// Spec returns the arena dimensions used to build the walls.
func (a *Arena) Spec() prefabs.ArenaSpec {
	if a == nil {
		return prefabs.ArenaSpec{}
	}
	return a.spec
}
