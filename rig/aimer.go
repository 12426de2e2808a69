package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

const minAimDistance = 1e-6

// Aimer is an aim stage that turns the camera toward its look-at target with
// per-channel damping. It reseeds the same way the transposer's trackers do:
// on first update, on look-at identity change, and on dt < 0.
type Aimer struct {
	Smoothing mgl64.Vec3

	prevOrient  mgl64.Quat
	boundTarget Target
	initialized bool
}

func NewAimer(smoothing mgl64.Vec3) *Aimer {
	return &Aimer{Smoothing: smoothing}
}

func (a *Aimer) Kind() StageKind { return StageAim }

// Snap clears damping history; the next update faces the target directly.
func (a *Aimer) Snap() {
	a.initialized = false
}

func (a *Aimer) MutateState(ctx StageContext, state *CameraState, dt float64) {
	target := ctx.LookAt
	if target == nil {
		return
	}
	targetPos, _ := target.Transform()
	dir := targetPos.Sub(state.RawPosition)
	if dir.Len() < minAimDistance {
		// Coincident with the target: hold the previous orientation.
		if a.initialized {
			state.RawOrientation = a.prevOrient
		}
		return
	}

	raw := common.LookRotation(dir, safeUp(state.ReferenceUp))
	if !a.initialized || target != a.boundTarget || dt < 0 {
		a.boundTarget = target
		a.prevOrient = raw
		a.initialized = true
		state.RawOrientation = raw
		return
	}

	delta := a.prevOrient.Inverse().Mul(raw)
	p, y, r := common.PitchYawRoll(delta)
	damped := Damp(mgl64.Vec3{p, y, r}, a.Smoothing, dt)
	a.prevOrient = a.prevOrient.Mul(common.QuatFromPitchYawRoll(damped[0], damped[1], damped[2])).Normalize()
	state.RawOrientation = a.prevOrient
}
