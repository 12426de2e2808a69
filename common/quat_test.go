package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func anglesClose(t *testing.T, gotP, gotY, gotR, wantP, wantY, wantR float64) {
	t.Helper()
	if math.Abs(WrapAngle(gotP-wantP)) > 1e-9 ||
		math.Abs(WrapAngle(gotY-wantY)) > 1e-9 ||
		math.Abs(WrapAngle(gotR-wantR)) > 1e-9 {
		t.Errorf("angles = (%v, %v, %v), want (%v, %v, %v)", gotP, gotY, gotR, wantP, wantY, wantR)
	}
}

func vecClose(t *testing.T, got, want mgl64.Vec3, tol float64) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Errorf("vector = %v, want %v", got, want)
	}
}

func TestPitchYawRollRoundTrip(t *testing.T) {
	tests := []struct {
		name             string
		pitch, yaw, roll float64
	}{
		{name: "identity", pitch: 0, yaw: 0, roll: 0},
		{name: "pure yaw", pitch: 0, yaw: 1.2, roll: 0},
		{name: "pure pitch", pitch: -0.7, yaw: 0, roll: 0},
		{name: "pure roll", pitch: 0, yaw: 0, roll: 0.4},
		{name: "combined", pitch: 0.3, yaw: -2.1, roll: 0.9},
		{name: "near yaw wrap", pitch: 0.1, yaw: math.Pi - 0.01, roll: -0.2},
		{name: "negative everything", pitch: -0.5, yaw: -1.4, roll: -1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromPitchYawRoll(tt.pitch, tt.yaw, tt.roll)
			p, y, r := PitchYawRoll(q)
			anglesClose(t, p, y, r, tt.pitch, tt.yaw, tt.roll)
		})
	}
}

func TestQuatFromPitchYawRollAxes(t *testing.T) {
	// Positive yaw swings forward from -Z toward -X.
	fwd := QuatFromPitchYawRoll(0, math.Pi/2, 0).Rotate(Forward)
	vecClose(t, fwd, mgl64.Vec3{-1, 0, 0}, 1e-9)

	// Positive pitch tilts forward upward.
	fwd = QuatFromPitchYawRoll(math.Pi/4, 0, 0).Rotate(Forward)
	vecClose(t, fwd, mgl64.Vec3{0, math.Sqrt2 / 2, -math.Sqrt2 / 2}, 1e-9)

	// Roll leaves forward alone and banks the up axis.
	q := QuatFromPitchYawRoll(0, 0, math.Pi/2)
	vecClose(t, q.Rotate(Forward), Forward, 1e-9)
	vecClose(t, q.Rotate(Up), mgl64.Vec3{-1, 0, 0}, 1e-9)
}

func TestPitchYawRollGimbal(t *testing.T) {
	q := QuatFromPitchYawRoll(math.Pi/2, 0.8, 0)
	p, _, r := PitchYawRoll(q)
	if math.Abs(p-math.Pi/2) > 1e-6 {
		t.Errorf("pitch = %v, want %v", p, math.Pi/2)
	}
	if r != 0 {
		t.Errorf("roll at pole = %v, want 0", r)
	}
	// The recomposed orientation must match even if yaw/roll split differs.
	p2, y2, r2 := PitchYawRoll(q)
	q2 := QuatFromPitchYawRoll(p2, y2, r2)
	vecClose(t, q2.Rotate(Forward), q.Rotate(Forward), 1e-6)
	vecClose(t, q2.Rotate(Up), q.Rotate(Up), 1e-6)
}

func TestLookRotation(t *testing.T) {
	tests := []struct {
		name string
		dir  mgl64.Vec3
		up   mgl64.Vec3
	}{
		{name: "forward", dir: mgl64.Vec3{0, 0, -1}, up: Up},
		{name: "behind", dir: mgl64.Vec3{0, 0, 1}, up: Up},
		{name: "left", dir: mgl64.Vec3{-1, 0, 0}, up: Up},
		{name: "diagonal", dir: mgl64.Vec3{1, 0.5, -2}, up: Up},
		{name: "unnormalized", dir: mgl64.Vec3{0, 0, -42}, up: Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := LookRotation(tt.dir, tt.up)
			vecClose(t, q.Rotate(Forward), tt.dir.Normalize(), 1e-9)
			if q.Rotate(Up).Dot(tt.up) < 0 {
				t.Errorf("up axis %v points away from %v", q.Rotate(Up), tt.up)
			}
		})
	}
}

func TestLookRotationIdentity(t *testing.T) {
	q := LookRotation(Forward, Up)
	ident := mgl64.QuatIdent()
	if math.Abs(q.Dot(ident)) < 1-1e-9 {
		t.Errorf("LookRotation(Forward, Up) = %v, want identity", q)
	}
}

func TestLookRotationDegenerate(t *testing.T) {
	// Looking straight down the up axis still yields a usable rotation.
	q := LookRotation(mgl64.Vec3{0, 1, 0}, Up)
	got := q.Rotate(Forward)
	vecClose(t, got, mgl64.Vec3{0, 1, 0}, 1e-9)
	if l := q.Rotate(Right).Len(); math.Abs(l-1) > 1e-9 {
		t.Errorf("right axis length = %v, want 1", l)
	}

	// Zero direction falls back to identity rather than NaN.
	q = LookRotation(mgl64.Vec3{}, Up)
	if q != mgl64.QuatIdent() {
		t.Errorf("LookRotation(zero) = %v, want identity", q)
	}
}
