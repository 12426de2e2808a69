package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

// Rig owns one camera's stage pipeline and the state it produces. Update runs
// the body stage before the aim stage; position must be settled before the
// aimer reads it. Rigs are not safe for concurrent use.
type Rig struct {
	Name string

	follow      Target
	lookAt      Target
	worldUp     mgl64.Vec3
	body        Stage
	aim         Stage
	state       CameraState
	pendingSnap bool
}

func New(name string) *Rig {
	return &Rig{
		Name:    name,
		worldUp: common.Up,
		state: CameraState{
			RawOrientation: mgl64.QuatIdent(),
			ReferenceUp:    common.Up,
		},
	}
}

// SetStage slots a stage by its kind, replacing any stage already there.
func (r *Rig) SetStage(s Stage) {
	if s == nil {
		return
	}
	switch s.Kind() {
	case StageBody:
		r.body = s
	case StageAim:
		r.aim = s
	}
}

func (r *Rig) Body() Stage { return r.body }
func (r *Rig) Aim() Stage  { return r.aim }

func (r *Rig) SetFollow(t Target) { r.follow = t }
func (r *Rig) Follow() Target     { return r.follow }

func (r *Rig) SetLookAt(t Target) { r.lookAt = t }
func (r *Rig) LookAt() Target     { return r.lookAt }

func (r *Rig) SetWorldUp(up mgl64.Vec3) { r.worldUp = safeUp(up) }
func (r *Rig) WorldUp() mgl64.Vec3      { return r.worldUp }

// Snap makes the next Update land on the raw pose with no damping.
func (r *Rig) Snap() {
	r.pendingSnap = true
}

// Update advances the pipeline by dt seconds. dt < 0 snaps.
func (r *Rig) Update(dt float64) {
	if r.pendingSnap {
		r.pendingSnap = false
		dt = -1
	}
	ctx := StageContext{Follow: r.follow, LookAt: r.lookAt, WorldUp: r.worldUp}
	if r.body != nil {
		r.body.MutateState(ctx, &r.state, dt)
	}
	if r.aim != nil {
		r.aim.MutateState(ctx, &r.state, dt)
	}
}

// State returns the pose committed by the last Update.
func (r *Rig) State() CameraState { return r.state }

// Valid reports whether the last Update had a follow target to place against.
func (r *Rig) Valid() bool { return r.state.Valid }
