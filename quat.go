package geomgo

// Quat is a quaternion representing a 3D rotation (orientation) in the
// right-handed, Y-up coordinate system used throughout this module.
//
// Positive rotation is counter-clockwise when looking down the axis
// toward the origin. The identity (w=1, x=y=z=0) aligns local Forward
// with world -Z and local Up with world +Y.
//
// Values are immutable: every operation returns a new Quat.
type Quat struct {
	// Vector part (imaginary i).
	X Scalar `json:"x"`
	// Vector part (imaginary j).
	Y Scalar `json:"y"`
	// Vector part (imaginary k).
	Z Scalar `json:"z"`
	// Scalar part (real).
	W Scalar `json:"w"`
}

// QuatIdentity is the "no rotation" quaternion.
var QuatIdentity = Quat{W: 1}

// QuatFromAxisAngle builds the quaternion rotating by angle radians
// around axis. The axis is normalized internally; a degenerate axis
// yields QuatIdentity.
func QuatFromAxisAngle(axis Vec3, angle Scalar) Quat {
	n, ok := axis.Normalize()
	if !ok {
		return QuatIdentity
	}
	half := angle / 2
	s := sin(half)
	return Quat{X: n.X * s, Y: n.Y * s, Z: n.Z * s, W: cos(half)}
}

// Mul returns the Hamilton product q * o. Applied to a vector, the
// combined rotation performs o first, then q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Conjugate returns the quaternion with the vector part negated. For
// unit quaternions this is the inverse rotation.
func (q Quat) Conjugate() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Neg returns -q. Note that -q encodes the same rotation as q.
func (q Quat) Neg() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Inverse returns the multiplicative inverse of q. Reports false for
// quaternions too close to zero.
func (q Quat) Inverse() (Quat, bool) {
	ls := q.LengthSquared()
	if ls <= Epsilon {
		return Quat{}, false
	}
	return q.Conjugate().scale(1 / ls), true
}

// Dot returns the 4-component dot product of q and o.
func (q Quat) Dot(o Quat) Scalar {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// LengthSquared returns the squared norm of q.
func (q Quat) LengthSquared() Scalar {
	return q.Dot(q)
}

// Length returns the norm of q.
func (q Quat) Length() Scalar {
	return sqrt(q.LengthSquared())
}

// Normalize returns q scaled to unit norm using the default Epsilon
// tolerance. Reports false for quaternions too small to normalize.
func (q Quat) Normalize() (Quat, bool) {
	return q.TryNormalize(Epsilon)
}

// TryNormalize returns q scaled to unit norm. Reports false if the norm
// of q is at or below eps.
func (q Quat) TryNormalize(eps Scalar) (Quat, bool) {
	l := q.Length()
	if l <= eps {
		return Quat{}, false
	}
	return q.scale(1 / l), true
}

// Rotate applies the rotation encoded by q to v. q must be unit length.
func (q Quat) Rotate(v Vec3) Vec3 {
	// v' = v + 2w(u × v) + 2(u × (u × v)), u = vector part of q.
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * q.W)).Add(uuv.Scale(2))
}

// Slerp spherically interpolates between q (t=0) and o (t=1) along the
// shortest arc. Both quaternions must be unit length; t is not clamped.
func (q Quat) Slerp(o Quat, t Scalar) Quat {
	d := q.Dot(o)
	if d < 0 {
		o = o.Neg()
		d = -d
	}
	if d > 1-Epsilon {
		// Nearly parallel: fall back to normalized lerp.
		r := Quat{
			X: q.X + (o.X-q.X)*t,
			Y: q.Y + (o.Y-q.Y)*t,
			Z: q.Z + (o.Z-q.Z)*t,
			W: q.W + (o.W-q.W)*t,
		}
		n, ok := r.Normalize()
		if !ok {
			return QuatIdentity
		}
		return n
	}
	theta := acos(d)
	s := sin(theta)
	wa := sin((1-t)*theta) / s
	wb := sin(t*theta) / s
	return Quat{
		X: q.X*wa + o.X*wb,
		Y: q.Y*wa + o.Y*wb,
		Z: q.Z*wa + o.Z*wb,
		W: q.W*wa + o.W*wb,
	}
}

func (q Quat) scale(s Scalar) Quat {
	return Quat{X: q.X * s, Y: q.Y * s, Z: q.Z * s, W: q.W * s}
}
