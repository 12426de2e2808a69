package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

func vecNear(got, want mgl64.Vec3, tol float64) bool {
	return got.Sub(want).Len() <= tol
}

// yawOf extracts the yaw channel of a rotation.
func yawOf(q mgl64.Quat) float64 {
	_, yaw, _ := common.PitchYawRoll(q)
	return yaw
}

func angNear(got, want, tol float64) bool {
	return math.Abs(common.WrapAngle(got-want)) <= tol
}
