package systems

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
)

// minHeadingMove is the per-frame ground displacement below which a
// script target keeps its previous heading instead of deriving yaw
// from motion.
const minHeadingMove = 1e-6

// ScriptSystem advances path scripts and writes the sampled poses into
// transforms. Scripts that omit yaw get a heading derived from their
// direction of travel.
type ScriptSystem struct {
	lastPos map[ecs.Entity]mgl64.Vec3
}

// NewScriptSystem creates a ScriptSystem.
func NewScriptSystem() *ScriptSystem {
	return &ScriptSystem{lastPos: make(map[ecs.Entity]mgl64.Vec3)}
}

// Update evaluates every path script at its advanced clock.
func (s *ScriptSystem) Update(w *ecs.World, dt float64) {
	if w == nil || s == nil {
		return
	}
	for _, e := range ecs.IntersectEntities(w.PathScripts(), w.Transforms()) {
		ps, ok := ecs.Get[*components.PathScript](w.PathScripts(), e)
		if !ok || ps.Script == nil {
			continue
		}
		tr, ok := ecs.Get[*components.Transform](w.Transforms(), e)
		if !ok {
			continue
		}

		ps.Elapsed += dt
		pose, err := ps.Script.Eval(ps.Elapsed)
		if err != nil {
			log.Printf("ScriptSystem: %v", err)
			continue
		}

		tr.Position = pose.Position
		if pose.HasYaw {
			tr.Rotation = common.YawQuat(pose.Yaw)
		} else if last, ok := s.lastPos[e]; ok {
			d := pose.Position.Sub(last)
			if math.Hypot(d[0], d[2]) > minHeadingMove {
				tr.Rotation = common.YawQuat(math.Atan2(-d[0], -d[2]))
			}
		}
		s.lastPos[e] = pose.Position
	}
}
