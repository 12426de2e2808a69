// dampcheck replays a path script through a rig without opening a window and
// writes the target and camera poses per step as csv, for eyeballing damping
// responses in a plot.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
	"github.com/milk9111/camrig/prefabs"
	"github.com/milk9111/camrig/rig"
)

const minHeadingMove = 1e-6

// pathTarget replays a path script as a rig target. One value is mutated in
// place so the rig sees a stable target identity and damps instead of
// reseeding every step.
type pathTarget struct {
	pos mgl64.Vec3
	rot mgl64.Quat
}

func (p *pathTarget) Transform() (mgl64.Vec3, mgl64.Quat) {
	return p.pos, p.rot
}

func main() {
	rigFile := flag.String("rig", "chase.yaml", "rig spec in prefabs/")
	script := flag.String("script", "dash_and_stop.tengo", "path script in prefabs/scripts/ driving the target")
	speed := flag.Float64("speed", 1, "script speed input")
	height := flag.Float64("height", 1, "script height input")
	dt := flag.Float64("dt", 1.0/60, "step size in seconds")
	dur := flag.Float64("dur", 10, "run length in seconds")
	out := flag.String("out", "", "output csv path (default stdout)")
	flag.Parse()

	r, err := prefabs.LoadRig(*rigFile)
	if err != nil {
		log.Fatal(err)
	}
	path, err := prefabs.NewPathScript(*script, *speed, *height)
	if err != nil {
		log.Fatal(err)
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	if err := run(w, r, path, *dt, *dur); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, r *rig.Rig, path *prefabs.PathScript, dt, dur float64) error {
	if dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", dt)
	}

	target := &pathTarget{rot: mgl64.QuatIdent()}
	r.SetFollow(target)
	r.SetLookAt(target)

	cw := csv.NewWriter(w)
	header := []string{"t", "target_x", "target_y", "target_z", "cam_x", "cam_y", "cam_z", "cam_pitch", "cam_yaw"}
	if err := cw.Write(header); err != nil {
		return err
	}

	steps := int(dur/dt) + 1
	for i := 0; i < steps; i++ {
		t := float64(i) * dt
		pose, err := path.Eval(t)
		if err != nil {
			return err
		}

		prev := target.pos
		target.pos = pose.Position
		switch {
		case pose.HasYaw:
			target.rot = common.YawQuat(pose.Yaw)
		case i > 0:
			d := pose.Position.Sub(prev)
			if math.Hypot(d[0], d[2]) > minHeadingMove {
				target.rot = common.YawQuat(math.Atan2(-d[0], -d[2]))
			}
		}

		r.Update(dt)
		state := r.State()
		pitch, yaw, _ := common.PitchYawRoll(state.RawOrientation)
		if err := cw.Write(row(t, target.pos, state.RawPosition, pitch, yaw)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func row(t float64, target, cam mgl64.Vec3, pitch, yaw float64) []string {
	vals := []float64{t, target[0], target[1], target[2], cam[0], cam[1], cam[2], pitch, yaw}
	cells := make([]string, len(vals))
	for i, v := range vals {
		cells[i] = strconv.FormatFloat(v, 'f', 6, 64)
	}
	return cells
}
