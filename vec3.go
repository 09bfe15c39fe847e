package geomgo

// Vec3 is a 3-dimensional vector over the active Scalar, expressed in a
// right-handed, Y-up coordinate system:
//
//	+X is "right", -X is "left"
//	+Y is "up", -Y is "down"
//	+Z is "backward", -Z is "forward"
//
//	     Y (Up)
//	     |
//	     |   -Z (Forward / Into Screen)
//	     |  /
//	     | /
//	     o --------- X (Right)
//	    /
//	   /
//	  Z (Backward / Out of Screen)
//
// Values are immutable: every operation returns a new Vec3.
type Vec3 struct {
	X Scalar `json:"x"`
	Y Scalar `json:"y"`
	Z Scalar `json:"z"`
}

// Common Vec3 values and axis directions for the default convention.
var (
	Vec3Zero = Vec3{}
	Vec3One  = Vec3{X: 1, Y: 1, Z: 1}

	Vec3Up    = Vec3{Y: 1}
	Vec3Down  = Vec3{Y: -1}
	Vec3Right = Vec3{X: 1}
	Vec3Left  = Vec3{X: -1}

	Vec3Backward = Vec3{Z: 1}
	Vec3Forward  = Vec3{Z: -1}
)

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s Scalar) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) Scalar {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o (right-handed).
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSquared returns the squared Euclidean length of v.
// Cheaper than Length when only comparing magnitudes.
func (v Vec3) LengthSquared() Scalar {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() Scalar {
	return sqrt(v.LengthSquared())
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) Scalar {
	return v.Sub(o).Length()
}

// Normalize returns v scaled to unit length using the default Epsilon
// tolerance. Reports false for vectors too small to normalize reliably.
func (v Vec3) Normalize() (Vec3, bool) {
	return v.TryNormalize(Epsilon)
}

// TryNormalize returns v scaled to unit length. Reports false if the
// length of v is at or below eps.
func (v Vec3) TryNormalize(eps Scalar) (Vec3, bool) {
	l := v.Length()
	if l <= eps {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// Lerp linearly interpolates between v (t=0) and o (t=1).
// t is not clamped.
func (v Vec3) Lerp(o Vec3, t Scalar) Vec3 {
	return v.Add(o.Sub(v).Scale(t))
}
