package geomgo

// Vec2 is a 2-dimensional vector over the active Scalar.
//
// Values are immutable: every operation returns a new Vec2.
type Vec2 struct {
	X Scalar `json:"x"`
	Y Scalar `json:"y"`
}

// Common Vec2 values.
var (
	Vec2Zero = Vec2{}
	Vec2One  = Vec2{X: 1, Y: 1}
)

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s Scalar) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) Scalar {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns the squared Euclidean length of v.
// Cheaper than Length when only comparing magnitudes.
func (v Vec2) LengthSquared() Scalar {
	return v.Dot(v)
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() Scalar {
	return sqrt(v.LengthSquared())
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) Scalar {
	return v.Sub(o).Length()
}

// Normalize returns v scaled to unit length using the default Epsilon
// tolerance. Reports false for vectors too small to normalize reliably.
func (v Vec2) Normalize() (Vec2, bool) {
	return v.TryNormalize(Epsilon)
}

// TryNormalize returns v scaled to unit length. Reports false if the
// length of v is at or below eps.
func (v Vec2) TryNormalize(eps Scalar) (Vec2, bool) {
	l := v.Length()
	if l <= eps {
		return Vec2{}, false
	}
	return v.Scale(1 / l), true
}

// Lerp linearly interpolates between v (t=0) and o (t=1).
// t is not clamped.
func (v Vec2) Lerp(o Vec2, t Scalar) Vec2 {
	return v.Add(o.Sub(v).Scale(t))
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}
