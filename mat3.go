package geomgo

// Mat3 is a 3x3 matrix over the active Scalar, stored column-major:
// element (row r, column c) lives at index c*3+r.
//
// Values are immutable: every operation returns a new Mat3.
type Mat3 [9]Scalar

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromCols builds a matrix from three column vectors.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Mat3FromQuat builds the rotation matrix equivalent to q.
// q must be unit length.
func Mat3FromQuat(q Quat) Mat3 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2
	return Mat3{
		1 - yy - zz, xy + wz, xz - wy,
		xy - wz, 1 - xx - zz, yz + wx,
		xz + wy, yz - wx, 1 - xx - yy,
	}
}

// At returns the element at (row r, column c). r and c must be in [0,3).
func (m Mat3) At(r, c int) Scalar {
	return m[c*3+r]
}

// Col returns column i as a vector.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{X: m[i*3], Y: m[i*3+1], Z: m[i*3+2]}
}

// Row returns row i as a vector.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{X: m[i], Y: m[3+i], Z: m[6+i]}
}

// Add returns the element-wise sum m + o.
func (m Mat3) Add(o Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + o[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Mat3) Scale(s Scalar) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns the matrix product m * o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c*3+r] = m.Row(r).Dot(o.Col(c))
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m.Row(0).Dot(v),
		Y: m.Row(1).Dot(v),
		Z: m.Row(2).Dot(v),
	}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[r*3+c] = m[c*3+r]
		}
	}
	return out
}

// Determinant returns the determinant of m.
func (m Mat3) Determinant() Scalar {
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(1, 2)*m.At(2, 1)) -
		m.At(0, 1)*(m.At(1, 0)*m.At(2, 2)-m.At(1, 2)*m.At(2, 0)) +
		m.At(0, 2)*(m.At(1, 0)*m.At(2, 1)-m.At(1, 1)*m.At(2, 0))
}
