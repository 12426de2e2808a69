package components

import "github.com/milk9111/camrig/prefabs"

// PathScript drives an entity's transform from a compiled path script.
type PathScript struct {
	Script *prefabs.PathScript
	// Elapsed is the script-local clock, advanced by the script system.
	Elapsed float64
}
