package components

import "github.com/jakecoffman/cp"

// Body2D binds an entity to a chipmunk body on the ground plane. The
// body lives in the arena's 2D space (cp x/y = world x/z); Height is
// the fixed world y the entity rides at.
type Body2D struct {
	Body   *cp.Body
	Height float64

	// Impulse is the magnitude of the periodic kick that keeps the
	// vehicle bouncing around the arena. KickIn counts down to the next
	// kick; KickEvery is the interval it resets to.
	Impulse   float64
	KickEvery float64
	KickIn    float64
}
