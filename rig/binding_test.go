package rig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

func TestParseBindingMode(t *testing.T) {
	for mode, name := range bindingNames {
		got, err := ParseBindingMode(name)
		if err != nil {
			t.Fatalf("ParseBindingMode(%q) returned error: %v", name, err)
		}
		if got != mode {
			t.Errorf("ParseBindingMode(%q) = %v, want %v", name, got, mode)
		}
	}

	if _, err := ParseBindingMode("sideways"); err == nil {
		t.Error("ParseBindingMode(\"sideways\") did not return an error")
	}
}

func TestResolveReferenceFrame(t *testing.T) {
	targetRot := common.QuatFromPitchYawRoll(0.4, 1.0, 0.2)
	onAssign := common.QuatFromPitchYawRoll(0, 0.25, 0)

	t.Run("world space is identity", func(t *testing.T) {
		got := resolveReferenceFrame(WorldSpace, targetRot, common.Up, onAssign)
		quatNear(t, got, mgl64.QuatIdent(), 1e-12)
	})

	t.Run("on assign returns captured frame", func(t *testing.T) {
		got := resolveReferenceFrame(LockToTargetOnAssign, targetRot, common.Up, onAssign)
		quatNear(t, got, onAssign, 1e-12)
	})

	t.Run("lock to target returns full rotation", func(t *testing.T) {
		got := resolveReferenceFrame(LockToTarget, targetRot, common.Up, onAssign)
		quatNear(t, got, targetRot, 1e-12)
	})

	t.Run("with world up keeps yaw only", func(t *testing.T) {
		got := resolveReferenceFrame(LockToTargetWithWorldUp, targetRot, common.Up, onAssign)
		p, y, r := common.PitchYawRoll(got)
		if math.Abs(p) > 1e-9 || math.Abs(r) > 1e-9 {
			t.Errorf("frame has pitch %v roll %v, want both 0", p, r)
		}
		if math.Abs(y-1.0) > 1e-9 {
			t.Errorf("frame yaw = %v, want 1.0", y)
		}
		vecNear(t, got.Rotate(common.Up), common.Up, 1e-9)
	})

	t.Run("no roll keeps forward and levels right axis", func(t *testing.T) {
		got := resolveReferenceFrame(LockToTargetNoRoll, targetRot, common.Up, onAssign)
		vecNear(t, got.Rotate(common.Forward), targetRot.Rotate(common.Forward), 1e-9)
		if ry := got.Rotate(common.Right)[1]; math.Abs(ry) > 1e-9 {
			t.Errorf("right axis has vertical component %v, want 0", ry)
		}
	})

	t.Run("with world up falls back when target looks straight down", func(t *testing.T) {
		down := common.QuatFromPitchYawRoll(-math.Pi/2, 0, 0)
		got := resolveReferenceFrame(LockToTargetWithWorldUp, down, common.Up, onAssign)
		// The target's up axis points at -Z, so heading falls back to it.
		vecNear(t, got.Rotate(common.Forward), mgl64.Vec3{0, 0, -1}, 1e-9)
	})
}

func TestMaskAngularDelta(t *testing.T) {
	in := mgl64.Vec3{1, 2, 3}
	tests := []struct {
		name string
		mode BindingMode
		want mgl64.Vec3
	}{
		{name: "on assign freezes all", mode: LockToTargetOnAssign, want: mgl64.Vec3{}},
		{name: "world space freezes all", mode: WorldSpace, want: mgl64.Vec3{}},
		{name: "with world up keeps yaw", mode: LockToTargetWithWorldUp, want: mgl64.Vec3{0, 2, 0}},
		{name: "no roll keeps pitch and yaw", mode: LockToTargetNoRoll, want: mgl64.Vec3{1, 2, 0}},
		{name: "lock to target keeps all", mode: LockToTarget, want: mgl64.Vec3{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maskAngularDelta(tt.mode, in); got != tt.want {
				t.Errorf("maskAngularDelta(%v, %v) = %v, want %v", tt.mode, in, got, tt.want)
			}
		})
	}
}
