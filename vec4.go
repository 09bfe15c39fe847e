package geomgo

// Vec4 is a 4-dimensional vector over the active Scalar, typically a
// homogeneous Vec3 (W=1 for points, W=0 for directions).
//
// Values are immutable: every operation returns a new Vec4.
type Vec4 struct {
	X Scalar `json:"x"`
	Y Scalar `json:"y"`
	Z Scalar `json:"z"`
	W Scalar `json:"w"`
}

// Common Vec4 values.
var (
	Vec4Zero = Vec4{}
	Vec4One  = Vec4{X: 1, Y: 1, Z: 1, W: 1}
)

// Vec4FromVec3 widens v into a Vec4 with the given w component.
func Vec4FromVec3(v Vec3, w Scalar) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vec3 narrows v to its x/y/z components, dropping w.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Add returns v + o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

// Sub returns v - o.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

// Scale returns v scaled by s.
func (v Vec4) Scale(s Scalar) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the dot product of v and o.
func (v Vec4) Dot(o Vec4) Scalar {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// LengthSquared returns the squared Euclidean length of v.
func (v Vec4) LengthSquared() Scalar {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec4) Length() Scalar {
	return sqrt(v.LengthSquared())
}

// Normalize returns v scaled to unit length using the default Epsilon
// tolerance. Reports false for vectors too small to normalize reliably.
func (v Vec4) Normalize() (Vec4, bool) {
	return v.TryNormalize(Epsilon)
}

// TryNormalize returns v scaled to unit length. Reports false if the
// length of v is at or below eps.
func (v Vec4) TryNormalize(eps Scalar) (Vec4, bool) {
	l := v.Length()
	if l <= eps {
		return Vec4{}, false
	}
	return v.Scale(1 / l), true
}

// Lerp linearly interpolates between v (t=0) and o (t=1).
// t is not clamped.
func (v Vec4) Lerp(o Vec4, t Scalar) Vec4 {
	return v.Add(o.Sub(v).Scale(t))
}
