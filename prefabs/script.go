package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is one sample of a scripted target path. HasYaw is false when the
// script leaves heading up to the host.
type Pose struct {
	Position mgl64.Vec3
	Yaw      float64
	HasYaw   bool
}

// PathScript drives a target along a path authored in tengo. The script is
// compiled once and re-run per sample with the globals t (seconds), speed,
// and height bound by the host; it must define x, y, z and may define yaw.
type PathScript struct {
	name     string
	compiled *tengo.Compiled
}

// NewPathScript loads and compiles the named script from disk or the
// embedded defaults.
func NewPathScript(name string, speed, height float64) (*PathScript, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
	}
	return CompilePathScript(name, src, speed, height)
}

// CompilePathScript compiles script source and verifies it produces a
// position.
func CompilePathScript(name string, src []byte, speed, height float64) (*PathScript, error) {
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	_ = script.Add("speed", speed)
	_ = script.Add("height", height)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", name, err)
	}

	p := &PathScript{name: name, compiled: compiled}
	if _, err := p.Eval(0); err != nil {
		return nil, err
	}
	for _, out := range []string{"x", "y", "z"} {
		if !compiled.IsDefined(out) {
			return nil, fmt.Errorf("prefabs: script %s does not define %q", name, out)
		}
	}
	return p, nil
}

func (p *PathScript) Name() string { return p.name }

// Eval samples the path at time t. Not safe for concurrent use.
func (p *PathScript) Eval(t float64) (Pose, error) {
	if err := p.compiled.Set("t", t); err != nil {
		return Pose{}, fmt.Errorf("prefabs: script %s: %w", p.name, err)
	}
	if err := p.compiled.Run(); err != nil {
		return Pose{}, fmt.Errorf("prefabs: run script %s: %w", p.name, err)
	}

	pose := Pose{
		Position: mgl64.Vec3{
			p.compiled.Get("x").Float(),
			p.compiled.Get("y").Float(),
			p.compiled.Get("z").Float(),
		},
	}
	if p.compiled.IsDefined("yaw") {
		pose.Yaw = p.compiled.Get("yaw").Float()
		pose.HasYaw = true
	}
	return pose, nil
}
