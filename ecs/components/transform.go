package components

import "github.com/go-gl/mathgl/mgl64"

// Transform stores position and orientation in world space.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates a transform at pos with identity rotation. The
// zero quaternion is not a rotation, so build transforms through here.
func NewTransform(pos mgl64.Vec3) *Transform {
	return &Transform{Position: pos, Rotation: mgl64.QuatIdent()}
}
