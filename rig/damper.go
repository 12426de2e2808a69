package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// decayRate fixes how much of the remaining gap one smoothing time constant
// closes: 1-e^-2, about 86%.
const decayRate = 2

// DampComponent returns the portion of delta to apply after dt seconds under
// exponential decay with the given time constant. A smoothTime <= 0 means no
// smoothing and dt < 0 is the snap sentinel; both return delta whole. The
// result never overshoots: same sign as delta, magnitude at most |delta|.
func DampComponent(delta, smoothTime, dt float64) float64 {
	if smoothTime <= 0 || dt < 0 {
		return delta
	}
	return delta * (1 - math.Exp(-decayRate*dt/smoothTime))
}

// Damp applies DampComponent to each axis with its own time constant.
func Damp(delta, smoothTime mgl64.Vec3, dt float64) mgl64.Vec3 {
	return mgl64.Vec3{
		DampComponent(delta[0], smoothTime[0], dt),
		DampComponent(delta[1], smoothTime[1], dt),
		DampComponent(delta[2], smoothTime[2], dt),
	}
}
