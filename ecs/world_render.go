package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/camrig/rig"
)

// RenderSystem draws ECS entities each frame from a camera's point of view.
type RenderSystem interface {
	Draw(w *World, screen *ebiten.Image, cam rig.CameraState)
}

// Draw calls all render-capable systems.
func (w *World) Draw(screen *ebiten.Image, cam rig.CameraState) {
	if w == nil || screen == nil {
		return
	}
	for _, s := range w.systems {
		rs, ok := s.(RenderSystem)
		if !ok || rs == nil {
			continue
		}
		rs.Draw(w, screen, cam)
	}
}
