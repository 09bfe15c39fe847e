package geomgo

// Axes is an orthonormal basis describing a coordinate system's
// orientation.
type Axes struct {
	// Up is the up direction.
	Up Vec3
	// Forward is the forward direction.
	Forward Vec3
	// Right is the right direction.
	Right Vec3
}

// RightHandedAxes builds a right-handed orthonormal basis from up and
// forward. Returns ErrDegenerateAxes if the inputs are too small or
// nearly parallel under eps.
func RightHandedAxes(up, forward Vec3, eps Scalar) (Axes, error) {
	u, ok := up.TryNormalize(eps)
	if !ok {
		return Axes{}, ErrDegenerateAxes
	}
	f, ok := forward.TryNormalize(eps)
	if !ok {
		return Axes{}, ErrDegenerateAxes
	}
	r, ok := f.Cross(u).TryNormalize(eps)
	if !ok {
		return Axes{}, ErrDegenerateAxes
	}
	return Axes{Up: canonZero(u), Forward: canonZero(u.Cross(r)), Right: canonZero(r)}, nil
}

// LeftHandedAxes builds a left-handed orthonormal basis from up and
// forward. Returns ErrDegenerateAxes if the inputs are too small or
// nearly parallel under eps.
func LeftHandedAxes(up, forward Vec3, eps Scalar) (Axes, error) {
	u, ok := up.TryNormalize(eps)
	if !ok {
		return Axes{}, ErrDegenerateAxes
	}
	f, ok := forward.TryNormalize(eps)
	if !ok {
		return Axes{}, ErrDegenerateAxes
	}
	r, ok := u.Cross(f).TryNormalize(eps)
	if !ok {
		return Axes{}, ErrDegenerateAxes
	}
	return Axes{Up: canonZero(u), Forward: canonZero(r.Cross(u)), Right: canonZero(r)}, nil
}

// canonZero folds IEEE negative zeros out of a basis vector. The cross
// products above produce -0 components for axis-aligned inputs, which
// compare equal to the presets but format as "-0".
func canonZero(v Vec3) Vec3 {
	return Vec3{X: v.X + 0, Y: v.Y + 0, Z: v.Z + 0}
}

// DefaultAxes is the coordinate convention used by this module's types.
var DefaultAxes = YUpRightHandedFwdNegZ

// Common coordinate conventions.
var (
	// YUpRightHandedFwdNegZ is right-handed, Y-up with forward = -Z.
	// Common in Bevy and Godot.
	YUpRightHandedFwdNegZ = Axes{
		Up:      Vec3{Y: 1},
		Forward: Vec3{Z: -1},
		Right:   Vec3{X: 1},
	}

	// YUpRightHandedFwdPosZ is right-handed, Y-up with forward = +Z.
	YUpRightHandedFwdPosZ = Axes{
		Up:      Vec3{Y: 1},
		Forward: Vec3{Z: 1},
		Right:   Vec3{X: -1},
	}

	// YUpLeftHandedFwdPosZ is left-handed, Y-up with forward = +Z.
	// Common in Unity.
	YUpLeftHandedFwdPosZ = Axes{
		Up:      Vec3{Y: 1},
		Forward: Vec3{Z: 1},
		Right:   Vec3{X: 1},
	}

	// ZUpRightHandedFwdPosY is right-handed, Z-up with forward = +Y.
	// Common in Blender.
	ZUpRightHandedFwdPosY = Axes{
		Up:      Vec3{Z: 1},
		Forward: Vec3{Y: 1},
		Right:   Vec3{X: 1},
	}

	// ZUpLeftHandedFwdPosX is left-handed, Z-up with forward = +X.
	// Common in Unreal.
	ZUpLeftHandedFwdPosX = Axes{
		Up:      Vec3{Z: 1},
		Forward: Vec3{X: 1},
		Right:   Vec3{Y: 1},
	}
)
