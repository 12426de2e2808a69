package rig

import "github.com/go-gl/mathgl/mgl64"

// positionTracker damps the tracked point the follow offset hangs from. The
// previously tracked position is first rotated rigidly with the reference
// frame so a pure target spin is not misread as translation to chase.
type positionTracker struct {
	prevTracked mgl64.Vec3
	initialized bool
}

// track returns the new tracked position. newFrame and oldFrame are the
// damped reference orientations after and before this update; rawFrame is
// the undamped frame whose local axes the position damping runs in. dt < 0
// snaps straight to targetPos.
func (p *positionTracker) track(targetPos mgl64.Vec3, newFrame, oldFrame, rawFrame mgl64.Quat, smoothing mgl64.Vec3, dt float64) mgl64.Vec3 {
	if !p.initialized || dt < 0 {
		p.prevTracked = targetPos
		p.initialized = true
		return targetPos
	}

	spin := newFrame.Mul(oldFrame.Inverse())
	rotatedPrev := spin.Rotate(p.prevTracked.Sub(targetPos)).Add(targetPos)
	worldOffset := targetPos.Sub(rotatedPrev)

	local := rawFrame.Inverse().Rotate(worldOffset)
	local = Damp(local, smoothing, dt)

	p.prevTracked = rotatedPrev.Add(rawFrame.Rotate(local))
	return p.prevTracked
}

func (p *positionTracker) reset() {
	p.initialized = false
}
