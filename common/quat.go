package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Coordinate conventions used across the module: right-handed, +Y is up,
// and an identity orientation looks down -Z.
var (
	Right   = mgl64.Vec3{1, 0, 0}
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, -1}
)

const epsilon = 1e-9

// QuatFromPitchYawRoll composes yaw about Y, then pitch about X, then roll
// about Z (q = Qy * Qx * Qz). Angles are radians.
func QuatFromPitchYawRoll(pitch, yaw, roll float64) mgl64.Quat {
	qy := mgl64.QuatRotate(yaw, Up)
	qx := mgl64.QuatRotate(pitch, Right)
	qz := mgl64.QuatRotate(roll, mgl64.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// PitchYawRoll decomposes q into the angles QuatFromPitchYawRoll composes.
// Each angle comes back in (-pi, pi]; at the pitch poles roll collapses to 0.
func PitchYawRoll(q mgl64.Quat) (pitch, yaw, roll float64) {
	m := q.Normalize().Mat4()
	sp := Clamp(-m.At(1, 2), -1, 1)
	pitch = math.Asin(sp)
	if math.Abs(sp) > 1-1e-7 {
		yaw = math.Atan2(-m.At(2, 0), m.At(0, 0))
		roll = 0
		return pitch, yaw, roll
	}
	yaw = math.Atan2(m.At(0, 2), m.At(2, 2))
	roll = math.Atan2(m.At(1, 0), m.At(1, 1))
	return pitch, yaw, roll
}

// LookRotation builds the orientation whose forward axis points along dir
// with its up axis matched to up as closely as possible. Degenerate inputs
// (dir parallel to up, or near zero) fall back to stable axes instead of
// producing NaNs.
func LookRotation(dir, up mgl64.Vec3) mgl64.Quat {
	if dir.Len() < epsilon {
		return mgl64.QuatIdent()
	}
	back := dir.Normalize().Mul(-1)
	right := up.Cross(back)
	if right.Len() < epsilon {
		right = Up.Cross(back)
	}
	if right.Len() < epsilon {
		right = Right
	}
	right = right.Normalize()
	newUp := back.Cross(right)
	m := mgl64.Mat4{
		right[0], right[1], right[2], 0,
		newUp[0], newUp[1], newUp[2], 0,
		back[0], back[1], back[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m).Normalize()
}

// YawQuat is the orientation facing yaw radians around the world up axis.
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}
