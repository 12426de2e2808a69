package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// RigSpec configures one camera rig as a named set of stage blocks. Stage
// payloads stay raw until the registry in build.go decodes them.
type RigSpec struct {
	Name    string         `yaml:"name"`
	WorldUp *Vec3Spec      `yaml:"world_up"`
	Stages  map[string]any `yaml:"stages"`
}

func LoadRigSpec(filename string) (RigSpec, error) {
	return LoadSpec[RigSpec](filename)
}

type TransposerStageSpec struct {
	Binding           string      `yaml:"binding"`
	FollowOffset      Vec3Spec    `yaml:"follow_offset"`
	PositionSmoothing Vec3Spec    `yaml:"position_smoothing"`
	AngularSmoothing  AngularSpec `yaml:"angular_smoothing"`
}

type AimerStageSpec struct {
	Smoothing AngularSpec `yaml:"smoothing"`
}

// SceneSpec lays out a demo scene: the physics arena, the targets moving
// through it, and which rig watches which target.
type SceneSpec struct {
	Name    string       `yaml:"name"`
	Arena   ArenaSpec    `yaml:"arena"`
	Targets []TargetSpec `yaml:"targets"`
	Rigs    []RigRefSpec `yaml:"rigs"`
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](filename)
}

type ArenaSpec struct {
	Width      float64 `yaml:"width"`
	Depth      float64 `yaml:"depth"`
	WallHeight float64 `yaml:"wall_height"`
	Elasticity float64 `yaml:"elasticity"`
	Friction   float64 `yaml:"friction"`
}

// TargetSpec describes one trackable object. Kind selects how it moves:
// "scripted" runs a tengo path script, "vehicle" is a physics body shoved
// around the arena, "static" stands at start (spinning in place when spin
// is set).
type TargetSpec struct {
	Name    string     `yaml:"name"`
	Kind    string     `yaml:"kind"`
	Script  string     `yaml:"script"`
	Speed   float64    `yaml:"speed"`
	Height  float64    `yaml:"height"`
	Start   Vec3Spec   `yaml:"start"`
	Impulse float64    `yaml:"impulse"`
	Spin    float64    `yaml:"spin"` // degrees per second around world up
	Color   *YAMLColor `yaml:"color"`
}

type RigRefSpec struct {
	Spec   string `yaml:"spec"`
	Follow string `yaml:"follow"`
	LookAt string `yaml:"look_at"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// AngularSpec holds per-channel values keyed the way the solver orders its
// angular axes: pitch, yaw, roll.
type AngularSpec struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

func (a AngularSpec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{a.Pitch, a.Yaw, a.Roll}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
