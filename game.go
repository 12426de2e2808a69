package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/ecs"
	"github.com/milk9111/camrig/ecs/components"
	"github.com/milk9111/camrig/ecs/entity"
	"github.com/milk9111/camrig/ecs/systems"
	"github.com/milk9111/camrig/obj"
	"github.com/milk9111/camrig/prefabs"
	"github.com/milk9111/camrig/rig"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// dampStep is how far one HUD click nudges a smoothing time, in seconds.
	dampStep = 0.05
)

var backgroundColor = color.RGBA{R: 18, G: 20, B: 26, A: 255}

type Game struct {
	sceneFile string
	scene     prefabs.SceneSpec

	world   *ecs.World
	rigEnts []ecs.Entity
	active  int

	view    *obj.View
	hud     *ebitenui.UI
	watcher *prefabs.Watcher

	clipboardOK bool
	paused      bool
}

func NewGame(sceneFile, startRig string, watch bool) (*Game, error) {
	scene, err := prefabs.LoadSceneSpec(sceneFile)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", sceneFile, err)
	}

	g := &Game{
		sceneFile: sceneFile,
		view:      obj.NewView(baseWidth, baseHeight),
	}
	if err := g.buildWorld(scene); err != nil {
		return nil, err
	}

	if startRig != "" {
		for i, e := range g.rigEnts {
			if ref := g.rigRef(e); ref != nil && ref.Rig.Name == startRig {
				g.active = i
			}
		}
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("Game: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("Game: clipboard unavailable, yank disabled: %v", err)
	} else {
		g.clipboardOK = true
	}

	g.hud = newHUD(g)
	return g, nil
}

// buildWorld assembles a fresh world for the scene and only installs it once
// everything loaded, so a failed reload keeps the old world running.
func (g *Game) buildWorld(scene prefabs.SceneSpec) error {
	w := ecs.NewWorld()
	w.AddSystem(systems.NewScriptSystem())
	w.AddSystem(systems.NewMoverSystem())
	w.AddSystem(systems.NewPhysicsSystem())
	w.AddSystem(systems.NewRigSystem())
	w.AddSystem(systems.NewRenderSystem(g.view))

	rigEnts, err := entity.NewScene(w, scene)
	if err != nil {
		return err
	}

	g.scene = scene
	g.world = w
	g.rigEnts = rigEnts
	if g.active >= len(g.rigEnts) {
		g.active = 0
	}
	return nil
}

func (g *Game) rigRef(e ecs.Entity) *components.RigRef {
	ref, ok := ecs.Get[*components.RigRef](g.world.RigRefs(), e)
	if !ok {
		return nil
	}
	return ref
}

func (g *Game) activeRef() *components.RigRef {
	if len(g.rigEnts) == 0 {
		return nil
	}
	return g.rigRef(g.rigEnts[g.active])
}

func (g *Game) activeTransposer() *rig.Transposer {
	ref := g.activeRef()
	if ref == nil {
		return nil
	}
	tp, _ := ref.Rig.Body().(*rig.Transposer)
	return tp
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.handleKeys()
	g.hud.Update()

	if !g.paused {
		tps := ebiten.ActualTPS()
		if tps <= 0 {
			tps = 60
		}
		g.world.Update(1 / tps)
	}
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
drain:
	for {
		select {
		case path := <-g.watcher.Events:
			g.handleReload(path)
		case err := <-g.watcher.Errors:
			log.Printf("Game: watcher: %v", err)
		default:
			break drain
		}
	}
}

// handleReload routes one changed file. Scene and script edits rebuild the
// whole world; a rig spec edit swaps in just that rig, and the fresh rig
// seeding on its first update makes the edit land as a snap.
func (g *Game) handleReload(path string) {
	base := filepath.Base(path)
	if base == filepath.Base(g.sceneFile) || filepath.Ext(base) == ".tengo" {
		g.reloadScene()
		return
	}
	g.reloadRig(base)
}

func (g *Game) reloadScene() {
	scene, err := prefabs.LoadSceneSpec(g.sceneFile)
	if err != nil {
		log.Printf("Game: reload scene %s: %v", g.sceneFile, err)
		return
	}
	if err := g.buildWorld(scene); err != nil {
		log.Printf("Game: rebuild scene %s: %v", g.sceneFile, err)
		return
	}
	log.Printf("Game: reloaded scene %s", g.sceneFile)
}

func (g *Game) reloadRig(base string) {
	matched := false
	for i, rs := range g.scene.Rigs {
		if filepath.Base(rs.Spec) != base || i >= len(g.rigEnts) {
			continue
		}
		rebuilt, err := prefabs.LoadRig(rs.Spec)
		if err != nil {
			log.Printf("Game: reload rig %s: %v", rs.Spec, err)
			return
		}
		if ref := g.rigRef(g.rigEnts[i]); ref != nil {
			ref.Rig = rebuilt
			log.Printf("Game: reloaded rig %s", rebuilt.Name)
		}
		matched = true
	}
	if !matched {
		log.Printf("Game: %s changed but no rig in %s uses it", base, g.sceneFile)
	}
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.nextRig()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleFollow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.cycleBinding()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.snapActive()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		g.yankActive()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
}

func (g *Game) nextRig() {
	if len(g.rigEnts) == 0 {
		return
	}
	g.active = (g.active + 1) % len(g.rigEnts)
}

// cycleFollow retargets the active rig at the next marked target. Swapping
// the followed entity makes the rig reseed, so the camera snaps over instead
// of damping across the scene.
func (g *Game) cycleFollow() {
	ref := g.activeRef()
	if ref == nil {
		return
	}
	targets := g.world.Markers().Entities()
	if len(targets) == 0 {
		return
	}
	cur := -1
	for i, e := range targets {
		if e.Raw() == ref.Follow {
			cur = i
			break
		}
	}
	next := targets[(cur+1)%len(targets)]
	ref.Follow = next.Raw()
	ref.LookAt = next.Raw()
}

func (g *Game) cycleBinding() {
	tp := g.activeTransposer()
	if tp == nil {
		return
	}
	modes := rig.BindingModes()
	tp.Binding = modes[(int(tp.Binding)+1)%len(modes)]
	// the new mode's reference frame is unrelated to the old one; snap
	// instead of damping between them
	g.snapActive()
}

func (g *Game) snapActive() {
	if ref := g.activeRef(); ref != nil {
		ref.Rig.Snap()
	}
}

// yankActive copies the active rig's current tuning to the clipboard as rig
// spec yaml, ready to paste back into prefabs/.
func (g *Game) yankActive() {
	if !g.clipboardOK {
		return
	}
	ref := g.activeRef()
	if ref == nil {
		return
	}
	out, err := yaml.Marshal(prefabs.SpecFromRig(ref.Rig))
	if err != nil {
		log.Printf("Game: yank %s: %v", ref.Rig.Name, err)
		return
	}
	clipboard.Write(clipboard.FmtText, out)
	log.Printf("Game: yanked %s to clipboard", ref.Rig.Name)
}

func (g *Game) nudgePositionDamping(delta float64) {
	tp := g.activeTransposer()
	if tp == nil {
		return
	}
	for i := 0; i < 3; i++ {
		tp.Damping.Position[i] = math.Max(0, tp.Damping.Position[i]+delta)
	}
}

func (g *Game) nudgeAngularDamping(delta float64) {
	ref := g.activeRef()
	if ref == nil {
		return
	}
	if tp, ok := ref.Rig.Body().(*rig.Transposer); ok {
		for i := 0; i < 3; i++ {
			tp.Damping.Angular[i] = math.Max(0, tp.Damping.Angular[i]+delta)
		}
	}
	if a, ok := ref.Rig.Aim().(*rig.Aimer); ok {
		for i := 0; i < 3; i++ {
			a.Smoothing[i] = math.Max(0, a.Smoothing[i]+delta)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.world.Draw(screen, g.cameraState())

	g.drawStatus(screen)
	g.hud.Draw(screen)
}

// cameraState falls back to a fixed overview of the arena while the active
// rig has no valid pose yet.
func (g *Game) cameraState() rig.CameraState {
	if ref := g.activeRef(); ref != nil && ref.Rig.Valid() {
		return ref.Rig.State()
	}
	pos := mgl64.Vec3{0, 18, 24}
	return rig.CameraState{
		RawPosition:    pos,
		RawOrientation: common.LookRotation(pos.Mul(-1), common.Up),
		ReferenceUp:    common.Up,
		Valid:          true,
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	ref := g.activeRef()
	if ref == nil {
		ebitenutil.DebugPrintAt(screen, "no rigs in scene", 8, 8)
		return
	}

	lines := []string{
		fmt.Sprintf("rig: %s (%d/%d)", ref.Rig.Name, g.active+1, len(g.rigEnts)),
		fmt.Sprintf("follow: %s  look_at: %s", g.markerName(ref.Follow), g.markerName(ref.LookAt)),
	}
	if tp, ok := ref.Rig.Body().(*rig.Transposer); ok {
		lines = append(lines,
			fmt.Sprintf("binding: %s", tp.Binding),
			fmt.Sprintf("pos damp: %.2f %.2f %.2f", tp.Damping.Position[0], tp.Damping.Position[1], tp.Damping.Position[2]),
			fmt.Sprintf("ang damp: %.2f %.2f %.2f", tp.Damping.Angular[0], tp.Damping.Angular[1], tp.Damping.Angular[2]),
		)
	}
	if a, ok := ref.Rig.Aim().(*rig.Aimer); ok {
		lines = append(lines, fmt.Sprintf("aim damp: %.2f %.2f %.2f", a.Smoothing[0], a.Smoothing[1], a.Smoothing[2]))
	}
	if g.paused {
		lines = append(lines, "paused")
	}
	lines = append(lines,
		fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()),
		"space: rig  tab: target  b: binding  r: snap  y: yank  p: pause",
	)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 8, 8+i*16)
	}
}

func (g *Game) markerName(handle uint64) string {
	m, ok := ecs.Get[*components.Marker](g.world.Markers(), ecs.Entity(handle))
	if !ok {
		return "?"
	}
	return m.Name
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
