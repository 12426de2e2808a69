package rig

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

type recordingStage struct {
	kind  StageKind
	calls []float64
	log   *[]StageKind
}

func (s *recordingStage) Kind() StageKind { return s.kind }

func (s *recordingStage) MutateState(ctx StageContext, state *CameraState, dt float64) {
	s.calls = append(s.calls, dt)
	if s.log != nil {
		*s.log = append(*s.log, s.kind)
	}
}

func TestRigRunsBodyBeforeAim(t *testing.T) {
	var order []StageKind
	body := &recordingStage{kind: StageBody, log: &order}
	aim := &recordingStage{kind: StageAim, log: &order}

	r := New("test")
	r.SetStage(aim)
	r.SetStage(body)
	r.Update(0.016)

	if len(order) != 2 || order[0] != StageBody || order[1] != StageAim {
		t.Errorf("stage order = %v, want [Body Aim]", order)
	}
}

func TestRigSnapForwardsNegativeDtOnce(t *testing.T) {
	body := &recordingStage{kind: StageBody}
	r := New("test")
	r.SetStage(body)

	r.Update(0.016)
	r.Snap()
	r.Update(0.016)
	r.Update(0.016)

	want := []float64{0.016, -1, 0.016}
	if len(body.calls) != len(want) {
		t.Fatalf("stage saw %d updates, want %d", len(body.calls), len(want))
	}
	for i, dt := range want {
		if body.calls[i] != dt {
			t.Errorf("update %d: dt = %v, want %v", i, body.calls[i], dt)
		}
	}
}

func TestRigSetStageReplacesSlot(t *testing.T) {
	first := &recordingStage{kind: StageBody}
	second := &recordingStage{kind: StageBody}

	r := New("test")
	r.SetStage(first)
	r.SetStage(second)
	r.Update(0.016)

	if len(first.calls) != 0 {
		t.Error("replaced stage still ran")
	}
	if len(second.calls) != 1 {
		t.Error("replacement stage did not run")
	}
}

func TestRigNoStagesIsInvalid(t *testing.T) {
	r := New("empty")
	r.Update(0.016)
	if r.Valid() {
		t.Error("rig with no stages reported valid")
	}
}

func TestRigFollowAndAimPipeline(t *testing.T) {
	target := newStubTarget(mgl64.Vec3{}, mgl64.QuatIdent())

	r := New("chase")
	r.SetStage(NewTransposer(mgl64.Vec3{0, 2, -10}, Damping{}, LockToTarget))
	r.SetStage(NewAimer(mgl64.Vec3{}))
	r.SetFollow(target)
	r.SetLookAt(target)

	r.Update(0.016)
	if !r.Valid() {
		t.Fatal("rig invalid with a bound target")
	}
	state := r.State()
	vecNear(t, state.RawPosition, mgl64.Vec3{0, 2, -10}, 1e-12)

	wantDir := target.pos.Sub(state.RawPosition).Normalize()
	vecNear(t, state.RawOrientation.Rotate(common.Forward), wantDir, 1e-9)

	target.pos = mgl64.Vec3{10, 0, 0}
	r.Update(0.016)
	state = r.State()
	vecNear(t, state.RawPosition, mgl64.Vec3{10, 2, -10}, 1e-12)
	wantDir = target.pos.Sub(state.RawPosition).Normalize()
	vecNear(t, state.RawOrientation.Rotate(common.Forward), wantDir, 1e-9)
}

func TestRigClearFollowInvalidates(t *testing.T) {
	target := newStubTarget(mgl64.Vec3{}, mgl64.QuatIdent())
	r := New("chase")
	r.SetStage(NewTransposer(mgl64.Vec3{0, 0, 5}, Damping{}, WorldSpace))
	r.SetFollow(target)

	r.Update(0.016)
	if !r.Valid() {
		t.Fatal("rig invalid with a bound target")
	}

	r.SetFollow(nil)
	r.Update(0.016)
	if r.Valid() {
		t.Error("rig still valid after follow target cleared")
	}
}

func TestRigWorldUpDefaultsWhenDegenerate(t *testing.T) {
	r := New("test")
	r.SetWorldUp(mgl64.Vec3{})
	if r.WorldUp() != common.Up {
		t.Errorf("world up = %v, want %v", r.WorldUp(), common.Up)
	}

	r.SetWorldUp(mgl64.Vec3{0, 0, 2})
	vecNear(t, r.WorldUp(), mgl64.Vec3{0, 0, 1}, 1e-12)
}
