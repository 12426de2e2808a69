package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
	"github.com/milk9111/camrig/prefabs"
)

func newVehicleWorld(t *testing.T) (*ecs.World, ecs.Entity, *components.Body2D) {
	t.Helper()
	w := ecs.NewWorld()
	w.SetArena(ecs.NewArena(prefabs.ArenaSpec{
		Width:      20,
		Depth:      20,
		Elasticity: 0.8,
		Friction:   0.2,
	}))

	start := mgl64.Vec3{2, 0.8, 3}
	e := w.CreateEntity()
	b := &components.Body2D{
		Body:    w.Arena().AddVehicle(start),
		Height:  0.8,
		Impulse: 6,
	}
	w.Transforms().Set(e, components.NewTransform(start))
	w.Vehicles().Set(e, b)
	return w, e, b
}

func TestPhysicsSystemKicksAndSyncs(t *testing.T) {
	w, e, b := newVehicleWorld(t)
	sys := NewPhysicsSystem()

	const dt = 1.0 / 60.0
	sys.Update(w, dt)

	vel := b.Body.Velocity()
	if math.Hypot(vel.X, vel.Y) == 0 {
		t.Fatalf("first update must kick the vehicle")
	}
	if b.KickIn <= 0 {
		t.Fatalf("kick timer must rearm, got %g", b.KickIn)
	}

	tr, _ := ecs.Get[*components.Transform](w.Transforms(), e)
	if tr.Position[1] != 0.8 {
		t.Fatalf("vehicle height must hold at 0.8, got %g", tr.Position[1])
	}

	pos := b.Body.Position()
	if tr.Position[0] != pos.X || tr.Position[2] != pos.Y {
		t.Fatalf("transform out of sync with body: %v vs (%g,%g)", tr.Position, pos.X, pos.Y)
	}
}

func TestPhysicsSystemHeadingFollowsVelocity(t *testing.T) {
	w, e, b := newVehicleWorld(t)
	sys := NewPhysicsSystem()
	sys.Update(w, 1.0/60.0)

	vel := b.Body.Velocity()
	speed := math.Hypot(vel.X, vel.Y)
	if speed == 0 {
		t.Fatalf("expected motion after the kick")
	}

	tr, _ := ecs.Get[*components.Transform](w.Transforms(), e)
	fwd := tr.Rotation.Rotate(common.Forward)
	dot := (fwd[0]*vel.X + fwd[2]*vel.Y) / speed
	if dot < 0.999 {
		t.Fatalf("heading must align with velocity, alignment %g", dot)
	}
}

func TestPhysicsSystemKeepsVehicleInArena(t *testing.T) {
	w, e, _ := newVehicleWorld(t)
	sys := NewPhysicsSystem()

	const dt = 1.0 / 60.0
	for i := 0; i < 600; i++ {
		sys.Update(w, dt)
		tr, _ := ecs.Get[*components.Transform](w.Transforms(), e)
		if math.Abs(tr.Position[0]) > 11 || math.Abs(tr.Position[2]) > 11 {
			t.Fatalf("vehicle escaped the arena at frame %d: %v", i, tr.Position)
		}
		if tr.Position[1] != 0.8 {
			t.Fatalf("height drifted at frame %d: %g", i, tr.Position[1])
		}
	}
}

func TestPhysicsSystemNeedsArena(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	w.Transforms().Set(e, components.NewTransform(mgl64.Vec3{}))

	sys := NewPhysicsSystem()
	sys.Update(w, 1.0/60.0) // must not panic without an arena

	tr, _ := ecs.Get[*components.Transform](w.Transforms(), e)
	if !vecNear(tr.Position, mgl64.Vec3{}, 0) {
		t.Fatalf("no arena means no motion, got %v", tr.Position)
	}
}
