package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

// orientationTracker damps the reference frame across updates. It reseeds
// from raw values on the first update, when the bound target identity
// changes, or when dt < 0, so damping never blends across a discontinuity.
type orientationTracker struct {
	prevFrame   mgl64.Quat
	onAssign    mgl64.Quat
	boundTarget Target
	initialized bool
}

// update returns the damped frame, the raw frame it is converging toward,
// and whether the tracker reseeded this call.
func (o *orientationTracker) update(target Target, targetRot mgl64.Quat, worldUp mgl64.Vec3, mode BindingMode, smoothing mgl64.Vec3, dt float64) (frame, raw mgl64.Quat, reseeded bool) {
	if !o.initialized || target != o.boundTarget || dt < 0 {
		o.boundTarget = target
		o.onAssign = targetRot
		o.prevFrame = resolveReferenceFrame(mode, targetRot, worldUp, o.onAssign)
		o.initialized = true
		return o.prevFrame, o.prevFrame, true
	}

	raw = resolveReferenceFrame(mode, targetRot, worldUp, o.onAssign)
	// The quaternion delta is inherently the shortest arc, so a 179 to -179
	// degree yaw flip reads as 2 degrees, and PitchYawRoll keeps every
	// channel inside (-pi, pi].
	delta := o.prevFrame.Inverse().Mul(raw)
	p, y, r := common.PitchYawRoll(delta)
	damped := Damp(maskAngularDelta(mode, mgl64.Vec3{p, y, r}), smoothing, dt)
	step := common.QuatFromPitchYawRoll(damped[0], damped[1], damped[2])
	o.prevFrame = o.prevFrame.Mul(step).Normalize()
	return o.prevFrame, raw, false
}

func (o *orientationTracker) reset() {
	o.initialized = false
}
