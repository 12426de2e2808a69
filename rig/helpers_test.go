package rig

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

type stubTarget struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

func newStubTarget(pos mgl64.Vec3, rot mgl64.Quat) *stubTarget {
	return &stubTarget{pos: pos, rot: rot}
}

func (s *stubTarget) Transform() (mgl64.Vec3, mgl64.Quat) {
	return s.pos, s.rot
}

func vecNear(t *testing.T, got, want mgl64.Vec3, tol float64) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Errorf("vector = %v, want %v (tol %v)", got, want, tol)
	}
}

// quatNear treats q and -q as the same rotation.
func quatNear(t *testing.T, got, want mgl64.Quat, tol float64) {
	t.Helper()
	if math.Abs(got.Dot(want)) < 1-tol {
		t.Errorf("quaternion = %v, want %v (tol %v)", got, want, tol)
	}
}

func yawOf(q mgl64.Quat) float64 {
	_, y, _ := common.PitchYawRoll(q)
	return y
}
