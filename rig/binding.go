package rig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/camrig/common"
)

// BindingMode selects the reference frame a transposer interprets its follow
// offset in, and which angular channels of target rotation it honors.
type BindingMode int

const (
	// LockToTargetOnAssign freezes the frame at the target orientation
	// captured when the target was bound.
	LockToTargetOnAssign BindingMode = iota
	// LockToTargetWithWorldUp honors the target's heading only; pitch and
	// roll are stripped against the world up.
	LockToTargetWithWorldUp
	// LockToTargetNoRoll honors heading and pitch but cancels roll.
	LockToTargetNoRoll
	// LockToTarget honors the target's full rotation.
	LockToTarget
	// WorldSpace ignores target rotation; the offset is a world vector.
	WorldSpace
)

var bindingNames = map[BindingMode]string{
	LockToTargetOnAssign:    "lock_to_target_on_assign",
	LockToTargetWithWorldUp: "lock_to_target_with_world_up",
	LockToTargetNoRoll:      "lock_to_target_no_roll",
	LockToTarget:            "lock_to_target",
	WorldSpace:              "world_space",
}

func (m BindingMode) String() string {
	if name, ok := bindingNames[m]; ok {
		return name
	}
	return fmt.Sprintf("binding_mode(%d)", int(m))
}

// ParseBindingMode maps a config token such as "world_space" onto its mode.
func ParseBindingMode(s string) (BindingMode, error) {
	for mode, name := range bindingNames {
		if name == s {
			return mode, nil
		}
	}
	return WorldSpace, fmt.Errorf("rig: unknown binding mode %q", s)
}

// BindingModes lists every mode in declaration order, for hosts that
// cycle through them.
func BindingModes() []BindingMode {
	return []BindingMode{
		LockToTargetOnAssign,
		LockToTargetWithWorldUp,
		LockToTargetNoRoll,
		LockToTarget,
		WorldSpace,
	}
}

const minAxisLen = 1e-9

// resolveReferenceFrame produces the raw (undamped) reference frame for one
// update. A target aligned with worldUp degenerates the projected forward;
// the fallbacks keep the result a defined rotation.
func resolveReferenceFrame(mode BindingMode, targetRot mgl64.Quat, worldUp mgl64.Vec3, onAssign mgl64.Quat) mgl64.Quat {
	switch mode {
	case LockToTargetOnAssign:
		return onAssign
	case LockToTargetWithWorldUp:
		fwd := flatten(targetRot.Rotate(common.Forward), worldUp)
		if fwd.Len() < minAxisLen {
			fwd = flatten(targetRot.Rotate(common.Up), worldUp)
		}
		if fwd.Len() < minAxisLen {
			return mgl64.QuatIdent()
		}
		return common.LookRotation(fwd, worldUp)
	case LockToTargetNoRoll:
		return common.LookRotation(targetRot.Rotate(common.Forward), worldUp)
	case LockToTarget:
		return targetRot
	case WorldSpace:
		return mgl64.QuatIdent()
	}
	return mgl64.QuatIdent()
}

// flatten projects v onto the plane perpendicular to the unit vector up.
func flatten(v, up mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(up.Mul(v.Dot(up)))
}

// maskAngularDelta zeroes the channels a binding mode does not damp. Channel
// order is pitch, yaw, roll.
func maskAngularDelta(mode BindingMode, d mgl64.Vec3) mgl64.Vec3 {
	switch mode {
	case LockToTargetOnAssign, WorldSpace:
		return mgl64.Vec3{}
	case LockToTargetWithWorldUp:
		return mgl64.Vec3{0, d[1], 0}
	case LockToTargetNoRoll:
		return mgl64.Vec3{d[0], d[1], 0}
	default:
		return d
	}
}
