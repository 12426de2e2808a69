package obj

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/camrig/rig"
)

const (
	defaultFOVY = 60.0 * math.Pi / 180.0
	nearPlane   = 0.05
)

// View projects world-space points through a camera state and draws
// primitives with ebiten's vector package. The projection is a plain
// pinhole: camera forward is -Z, +Y is up, vertical field of view is
// fixed.
type View struct {
	screenW int
	screenH int
	fovY    float64
}

// NewView creates a view for the given logical screen size.
func NewView(screenW, screenH int) *View {
	return &View{screenW: screenW, screenH: screenH, fovY: defaultFOVY}
}

// SetScreenSize updates the logical screen size.
func (v *View) SetScreenSize(w, h int) {
	if v == nil || w <= 0 || h <= 0 {
		return
	}
	v.screenW = w
	v.screenH = h
}

// focal returns the focal length in pixels.
func (v *View) focal() float64 {
	return float64(v.screenH) / 2 / math.Tan(v.fovY/2)
}

// Project maps a world point to screen pixels. ok is false when the
// point sits behind the near plane. depth is the distance along the
// camera forward axis.
func (v *View) Project(cam rig.CameraState, p mgl64.Vec3) (x, y float32, depth float64, ok bool) {
	rel := cam.RawOrientation.Inverse().Rotate(p.Sub(cam.RawPosition))
	depth = -rel[2]
	if depth < nearPlane {
		return 0, 0, depth, false
	}
	f := v.focal()
	x = float32(float64(v.screenW)/2 + rel[0]*f/depth)
	y = float32(float64(v.screenH)/2 - rel[1]*f/depth)
	return x, y, depth, true
}

// Line draws a world-space segment. Segments crossing the near plane
// are dropped rather than clipped.
func (v *View) Line(screen *ebiten.Image, cam rig.CameraState, a, b mgl64.Vec3, width float32, clr color.Color) {
	if v == nil || screen == nil {
		return
	}
	ax, ay, _, ok := v.Project(cam, a)
	if !ok {
		return
	}
	bx, by, _, ok := v.Project(cam, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, ax, ay, bx, by, width, clr, true)
}

// Marker draws a filled disc whose on-screen radius scales with depth.
func (v *View) Marker(screen *ebiten.Image, cam rig.CameraState, p mgl64.Vec3, worldR float64, clr color.Color) {
	if v == nil || screen == nil {
		return
	}
	x, y, depth, ok := v.Project(cam, p)
	if !ok {
		return
	}
	r := float32(worldR * v.focal() / depth)
	if r < 1 {
		r = 1
	}
	vector.FillCircle(screen, x, y, r, clr, true)
}

// Ring draws a stroked circle whose on-screen radius scales with depth.
func (v *View) Ring(screen *ebiten.Image, cam rig.CameraState, p mgl64.Vec3, worldR float64, width float32, clr color.Color) {
	if v == nil || screen == nil {
		return
	}
	x, y, depth, ok := v.Project(cam, p)
	if !ok {
		return
	}
	r := float32(worldR * v.focal() / depth)
	if r < 1 {
		r = 1
	}
	vector.StrokeCircle(screen, x, y, r, width, clr, true)
}
