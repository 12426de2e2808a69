package components

import "github.com/go-gl/mathgl/mgl64"

// Mover stores plain kinematics for targets that drift or spin in place
// without being scripted or physics driven.
type Mover struct {
	Velocity mgl64.Vec3
	// YawRate is angular velocity around world up, radians per second.
	YawRate float64
}
