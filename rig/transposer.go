package rig

import "github.com/go-gl/mathgl/mgl64"

// Damping holds smoothing time constants in seconds. Position components
// damp along the reference frame's local x, y, z axes; Angular components
// damp the frame's pitch, yaw, roll. Zero means instantaneous; larger is
// slower. Negative values are treated as zero.
type Damping struct {
	Position mgl64.Vec3
	Angular  mgl64.Vec3
}

// Transposer is a body stage that keeps the camera at FollowOffset from its
// follow target, expressed in the reference frame the binding mode resolves,
// with per-axis damping of both the frame and the tracked position.
type Transposer struct {
	FollowOffset mgl64.Vec3
	Damping      Damping
	Binding      BindingMode

	orient orientationTracker
	pos    positionTracker
}

func NewTransposer(offset mgl64.Vec3, damping Damping, binding BindingMode) *Transposer {
	return &Transposer{FollowOffset: offset, Damping: damping, Binding: binding}
}

func (t *Transposer) Kind() StageKind { return StageBody }

// Snap clears damping history; the next update lands on the raw pose.
func (t *Transposer) Snap() {
	t.orient.reset()
	t.pos.reset()
}

// MutateState writes the camera position and reference up for this update.
// With no follow target it marks the state invalid and leaves the rest
// untouched.
func (t *Transposer) MutateState(ctx StageContext, state *CameraState, dt float64) {
	target := ctx.Follow
	if target == nil {
		state.Valid = false
		return
	}
	targetPos, targetRot := target.Transform()
	up := safeUp(ctx.WorldUp)

	oldFrame := t.orient.prevFrame
	frame, raw, reseeded := t.orient.update(target, targetRot, up, t.Binding, t.Damping.Angular, dt)
	if reseeded {
		oldFrame = frame
		dt = -1
	}
	tracked := t.pos.track(targetPos, frame, oldFrame, raw, t.Damping.Position, dt)

	state.RawPosition = tracked.Add(frame.Rotate(t.FollowOffset))
	state.ReferenceUp = frame.Rotate(up)
	state.Valid = true
}

// Frame reports the damped reference orientation from the last update, for
// diagnostic overlays. The bool is false before the first tracked update.
func (t *Transposer) Frame() (mgl64.Quat, bool) {
	if !t.orient.initialized {
		return mgl64.QuatIdent(), false
	}
	return t.orient.prevFrame, true
}
