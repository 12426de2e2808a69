package prefabs

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/rig"
)

type stageBuildFn func(raw any) (rig.Stage, error)

var stageRegistry = map[string]stageBuildFn{
	"transposer": buildTransposerStage,
	"aimer":      buildAimerStage,
}

// Body stages must be in place before aim stages read their output.
var stageBuildOrder = []string{
	"transposer",
	"aimer",
}

// BuildRig assembles a rig from its spec. Unknown stage names are an error
// rather than silently dropped config.
func BuildRig(spec RigSpec) (*rig.Rig, error) {
	for name := range spec.Stages {
		if _, ok := stageRegistry[name]; !ok {
			return nil, fmt.Errorf("prefabs: rig %q: unknown stage %q", spec.Name, name)
		}
	}

	r := rig.New(spec.Name)
	if spec.WorldUp != nil {
		r.SetWorldUp(spec.WorldUp.Vec3())
	}
	for _, name := range stageBuildOrder {
		raw, ok := spec.Stages[name]
		if !ok {
			continue
		}
		stage, err := stageRegistry[name](raw)
		if err != nil {
			return nil, fmt.Errorf("prefabs: rig %q: stage %q: %w", spec.Name, name, err)
		}
		r.SetStage(stage)
	}
	return r, nil
}

// LoadRig loads and builds a rig spec in one step.
func LoadRig(filename string) (*rig.Rig, error) {
	spec, err := LoadRigSpec(filename)
	if err != nil {
		return nil, err
	}
	return BuildRig(spec)
}

// DecodeStageSpec re-marshals a raw stage payload into its typed spec.
func DecodeStageSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

func buildTransposerStage(raw any) (rig.Stage, error) {
	spec, err := DecodeStageSpec[TransposerStageSpec](raw)
	if err != nil {
		return nil, err
	}
	mode := rig.LockToTargetWithWorldUp
	if spec.Binding != "" {
		if mode, err = rig.ParseBindingMode(spec.Binding); err != nil {
			return nil, err
		}
	}
	damping := rig.Damping{
		Position: nonNegative(spec.PositionSmoothing.Vec3()),
		Angular:  nonNegative(spec.AngularSmoothing.Vec3()),
	}
	return rig.NewTransposer(spec.FollowOffset.Vec3(), damping, mode), nil
}

func buildAimerStage(raw any) (rig.Stage, error) {
	spec, err := DecodeStageSpec[AimerStageSpec](raw)
	if err != nil {
		return nil, err
	}
	return rig.NewAimer(nonNegative(spec.Smoothing.Vec3())), nil
}

// Negative smoothing times are clamped here so the solver never sees them.
func nonNegative(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(0, v[0]), math.Max(0, v[1]), math.Max(0, v[2])}
}

// SpecFromRig captures a live rig back into a spec, so values tuned at
// runtime can be written out as yaml.
func SpecFromRig(r *rig.Rig) RigSpec {
	spec := RigSpec{Name: r.Name, Stages: map[string]any{}}
	if up := r.WorldUp(); up != common.Up {
		spec.WorldUp = &Vec3Spec{X: up[0], Y: up[1], Z: up[2]}
	}
	if tp, ok := r.Body().(*rig.Transposer); ok {
		spec.Stages["transposer"] = TransposerStageSpec{
			Binding:           tp.Binding.String(),
			FollowOffset:      vec3Spec(tp.FollowOffset),
			PositionSmoothing: vec3Spec(tp.Damping.Position),
			AngularSmoothing:  angularSpec(tp.Damping.Angular),
		}
	}
	if am, ok := r.Aim().(*rig.Aimer); ok {
		spec.Stages["aimer"] = AimerStageSpec{Smoothing: angularSpec(am.Smoothing)}
	}
	return spec
}

func vec3Spec(v mgl64.Vec3) Vec3Spec {
	return Vec3Spec{X: v[0], Y: v[1], Z: v[2]}
}

func angularSpec(v mgl64.Vec3) AngularSpec {
	return AngularSpec{Pitch: v[0], Yaw: v[1], Roll: v[2]}
}
