package entity

import (
	"fmt"

	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
	"github.com/milk9111/camrig/prefabs"
)

// NewCameraRig loads a rig spec and attaches the built rig to the world,
// bound to targets by name. look_at falls back to the follow target.
func NewCameraRig(w *ecs.World, ref prefabs.RigRefSpec, targets map[string]ecs.Entity) (ecs.Entity, error) {
	r, err := prefabs.LoadRig(ref.Spec)
	if err != nil {
		return 0, fmt.Errorf("camera rig %s: %w", ref.Spec, err)
	}

	follow, ok := targets[ref.Follow]
	if !ok {
		return 0, fmt.Errorf("camera rig %s: unknown follow target %q", ref.Spec, ref.Follow)
	}
	lookAt := follow
	if ref.LookAt != "" {
		if lookAt, ok = targets[ref.LookAt]; !ok {
			return 0, fmt.Errorf("camera rig %s: unknown look_at target %q", ref.Spec, ref.LookAt)
		}
	}

	e := w.CreateEntity()
	w.RigRefs().Set(e, &components.RigRef{
		Rig:    r,
		Follow: follow.Raw(),
		LookAt: lookAt.Raw(),
	})
	return e, nil
}

// NewScene builds the arena, every target, and every rig of a scene
// spec. It returns the rig entities in spec order.
func NewScene(w *ecs.World, scene prefabs.SceneSpec) ([]ecs.Entity, error) {
	w.SetArena(ecs.NewArena(scene.Arena))

	targets := make(map[string]ecs.Entity, len(scene.Targets))
	for _, ts := range scene.Targets {
		e, err := NewTarget(w, ts)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", scene.Name, err)
		}
		targets[ts.Name] = e
	}

	rigs := make([]ecs.Entity, 0, len(scene.Rigs))
	for _, rs := range scene.Rigs {
		e, err := NewCameraRig(w, rs, targets)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", scene.Name, err)
		}
		rigs = append(rigs, e)
	}
	return rigs, nil
}
