package entity

import (
	"fmt"
	"image/color"
	"math"

	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
	"github.com/milk9111/camrig/prefabs"
)

var defaultMarkerColor = color.NRGBA{R: 0xcf, G: 0xcf, B: 0xcf, A: 0xff}

// NewTarget spawns a scene target from its spec. Scripted targets run a
// path script, vehicles get a chipmunk body in the world's arena, and
// static targets stand at start, spinning in place when spin is set.
func NewTarget(w *ecs.World, spec prefabs.TargetSpec) (ecs.Entity, error) {
	switch spec.Kind {
	case "scripted":
		return newScriptedTarget(w, spec)
	case "vehicle":
		return newVehicleTarget(w, spec)
	case "", "static":
		return newStaticTarget(w, spec)
	default:
		return 0, fmt.Errorf("target %s: unknown kind %q", spec.Name, spec.Kind)
	}
}

func newScriptedTarget(w *ecs.World, spec prefabs.TargetSpec) (ecs.Entity, error) {
	script, err := prefabs.NewPathScript(spec.Script, spec.Speed, spec.Height)
	if err != nil {
		return 0, fmt.Errorf("target %s: %w", spec.Name, err)
	}
	pose, err := script.Eval(0)
	if err != nil {
		return 0, fmt.Errorf("target %s: %w", spec.Name, err)
	}

	e := w.CreateEntity()
	tr := components.NewTransform(pose.Position)
	if pose.HasYaw {
		tr.Rotation = common.YawQuat(pose.Yaw)
	}
	w.Transforms().Set(e, tr)
	w.PathScripts().Set(e, &components.PathScript{Script: script})
	w.Markers().Set(e, markerFor(spec))
	return e, nil
}

func newVehicleTarget(w *ecs.World, spec prefabs.TargetSpec) (ecs.Entity, error) {
	arena := w.Arena()
	if arena == nil {
		return 0, fmt.Errorf("target %s: vehicle needs an arena", spec.Name)
	}
	start := spec.Start.Vec3()
	body := arena.AddVehicle(start)

	e := w.CreateEntity()
	w.Transforms().Set(e, components.NewTransform(start))
	w.Vehicles().Set(e, &components.Body2D{
		Body:    body,
		Height:  start[1],
		Impulse: spec.Impulse,
	})
	w.Markers().Set(e, markerFor(spec))
	return e, nil
}

func newStaticTarget(w *ecs.World, spec prefabs.TargetSpec) (ecs.Entity, error) {
	e := w.CreateEntity()
	w.Transforms().Set(e, components.NewTransform(spec.Start.Vec3()))
	if spec.Spin != 0 {
		w.Movers().Set(e, &components.Mover{YawRate: spec.Spin * math.Pi / 180})
	}
	w.Markers().Set(e, markerFor(spec))
	return e, nil
}

func markerFor(spec prefabs.TargetSpec) *components.Marker {
	m := &components.Marker{Name: spec.Name, Color: defaultMarkerColor}
	if spec.Color != nil && spec.Color.Color != nil {
		m.Color = spec.Color.Color
	}
	return m
}
