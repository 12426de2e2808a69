package systems

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
	"github.com/milk9111/camrig/obj"
	"github.com/milk9111/camrig/rig"
)

const (
	gridStep     = 2.0
	markerRadius = 0.45
	headingLen   = 1.2
	axisLen      = 1.5
)

var gridColor = color.RGBA{R: 58, G: 60, B: 70, A: 255}

// RenderSystem draws the scene: ground grid, arena walls, target
// markers, and every rig camera with its undamped ghost.
type RenderSystem struct {
	View *obj.View
}

// NewRenderSystem creates a RenderSystem drawing through view.
func NewRenderSystem(view *obj.View) *RenderSystem {
	return &RenderSystem{View: view}
}

// Update is a no-op (render occurs in Draw).
func (s *RenderSystem) Update(w *ecs.World, dt float64) {}

// Draw renders the whole scene from cam.
func (s *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image, cam rig.CameraState) {
	if s == nil || s.View == nil || w == nil || screen == nil {
		return
	}
	s.drawArena(w, screen, cam)
	s.drawAxes(screen, cam)
	s.drawTargets(w, screen, cam)
	s.drawRigs(w, screen, cam)
}

func (s *RenderSystem) drawArena(w *ecs.World, screen *ebiten.Image, cam rig.CameraState) {
	width, depth, wallH := 40.0, 40.0, 0.0
	if arena := w.Arena(); arena != nil {
		spec := arena.Spec()
		width, depth, wallH = spec.Width, spec.Depth, spec.WallHeight
	}
	hw := width / 2
	hd := depth / 2

	nx := int(width / gridStep)
	for i := 0; i <= nx; i++ {
		x := -hw + float64(i)*gridStep
		s.View.Line(screen, cam, mgl64.Vec3{x, 0, -hd}, mgl64.Vec3{x, 0, hd}, 1, gridColor)
	}
	nz := int(depth / gridStep)
	for i := 0; i <= nz; i++ {
		z := -hd + float64(i)*gridStep
		s.View.Line(screen, cam, mgl64.Vec3{-hw, 0, z}, mgl64.Vec3{hw, 0, z}, 1, gridColor)
	}

	if wallH <= 0 {
		return
	}
	corners := []mgl64.Vec3{
		{-hw, 0, -hd},
		{hw, 0, -hd},
		{hw, 0, hd},
		{-hw, 0, hd},
	}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		top := mgl64.Vec3{a[0], wallH, a[2]}
		s.View.Line(screen, cam, a, top, 1.5, colornames.Slategray)
		s.View.Line(screen, cam, top, mgl64.Vec3{b[0], wallH, b[2]}, 1.5, colornames.Slategray)
	}
}

func (s *RenderSystem) drawAxes(screen *ebiten.Image, cam rig.CameraState) {
	origin := mgl64.Vec3{}
	s.View.Line(screen, cam, origin, mgl64.Vec3{axisLen, 0, 0}, 2, colornames.Indianred)
	s.View.Line(screen, cam, origin, mgl64.Vec3{0, axisLen, 0}, 2, colornames.Yellowgreen)
	s.View.Line(screen, cam, origin, mgl64.Vec3{0, 0, axisLen}, 2, colornames.Steelblue)
}

func (s *RenderSystem) drawTargets(w *ecs.World, screen *ebiten.Image, cam rig.CameraState) {
	for _, e := range ecs.IntersectEntities(w.Markers(), w.Transforms()) {
		m, ok := ecs.Get[*components.Marker](w.Markers(), e)
		if !ok {
			continue
		}
		tr, ok := ecs.Get[*components.Transform](w.Transforms(), e)
		if !ok {
			continue
		}

		s.View.Marker(screen, cam, tr.Position, markerRadius, m.Color)
		head := tr.Position.Add(tr.Rotation.Rotate(common.Forward).Mul(headingLen))
		s.View.Line(screen, cam, tr.Position, head, 2, m.Color)
		// pin to the ground so height reads at a glance
		foot := mgl64.Vec3{tr.Position[0], 0, tr.Position[2]}
		s.View.Line(screen, cam, foot, tr.Position, 1, gridColor)

		if x, y, _, ok := s.View.Project(cam, tr.Position); ok {
			ebitenutil.DebugPrintAt(screen, m.Name, int(x)+8, int(y)-16)
		}
	}
}

func (s *RenderSystem) drawRigs(w *ecs.World, screen *ebiten.Image, cam rig.CameraState) {
	for _, e := range w.RigRefs().Entities() {
		ref, ok := ecs.Get[*components.RigRef](w.RigRefs(), e)
		if !ok || ref.Rig == nil || !ref.Rig.Valid() {
			continue
		}
		st := ref.Rig.State()

		// the active rig's own marker lands behind the near plane and
		// drops out on its own
		s.View.Marker(screen, cam, st.RawPosition, 0.3, colornames.White)
		gaze := st.RawPosition.Add(st.RawOrientation.Rotate(common.Forward).Mul(headingLen))
		s.View.Line(screen, cam, st.RawPosition, gaze, 1.5, colornames.White)
		if x, y, _, ok := s.View.Project(cam, st.RawPosition); ok {
			ebitenutil.DebugPrintAt(screen, ref.Rig.Name, int(x)+8, int(y)+4)
		}

		s.drawGhost(w, screen, cam, ref)
	}
}

// drawGhost marks where the body stage would put the camera with no
// damping, so the lag the damper adds is visible on screen.
func (s *RenderSystem) drawGhost(w *ecs.World, screen *ebiten.Image, cam rig.CameraState, ref *components.RigRef) {
	tp, ok := ref.Rig.Body().(*rig.Transposer)
	if !ok {
		return
	}
	frame, ok := tp.Frame()
	if !ok {
		return
	}
	tr, ok := ecs.Get[*components.Transform](w.Transforms(), ecs.Entity(ref.Follow))
	if !ok {
		return
	}
	ghost := tr.Position.Add(frame.Rotate(tp.FollowOffset))
	s.View.Ring(screen, cam, ghost, 0.3, 1, colornames.Gold)
}
