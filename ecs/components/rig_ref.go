package components

import "github.com/milk9111/camrig/rig"

// RigRef attaches a camera rig to the world and names the entities it
// follows and aims at. Follow and LookAt hold raw entity handles
// (ecs.Entity is a uint64; this package cannot import ecs).
type RigRef struct {
	Rig    *rig.Rig
	Follow uint64
	LookAt uint64
}
