package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

// Target is anything a rig can follow or look at. Two targets are the same
// target only if the interface values are identical; trackers reseed when
// identity changes.
type Target interface {
	Transform() (position mgl64.Vec3, orientation mgl64.Quat)
}

// StageKind orders stages within a rig's update.
type StageKind int

const (
	// StageBody places the camera.
	StageBody StageKind = iota
	// StageAim orients the camera after the body has placed it.
	StageAim
)

func (k StageKind) String() string {
	switch k {
	case StageBody:
		return "Body"
	case StageAim:
		return "Aim"
	}
	return "Unknown"
}

// CameraState is the camera pose a rig's stage pipeline produces each update.
// It persists between updates so stages can damp against their own output.
type CameraState struct {
	RawPosition    mgl64.Vec3
	RawOrientation mgl64.Quat
	ReferenceUp    mgl64.Vec3
	Valid          bool
}

// StageContext carries the per-update inputs a rig resolves for its stages.
type StageContext struct {
	Follow  Target
	LookAt  Target
	WorldUp mgl64.Vec3
}

// Stage mutates part of the camera state each update. dt is the elapsed time
// in seconds; dt < 0 requests a snap, bypassing all damping.
type Stage interface {
	Kind() StageKind
	MutateState(ctx StageContext, state *CameraState, dt float64)
}

func safeUp(up mgl64.Vec3) mgl64.Vec3 {
	if up.Len() < 1e-9 {
		return common.Up
	}
	return up.Normalize()
}
