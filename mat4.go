package geomgo

// Mat4 is a 4x4 matrix over the active Scalar, stored column-major:
// element (row r, column c) lives at index c*4+r.
//
// Values are immutable: every operation returns a new Mat4.
type Mat4 [16]Scalar

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromTranslation returns the affine matrix translating by t.
func Mat4FromTranslation(t Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = t.X
	m[13] = t.Y
	m[14] = t.Z
	return m
}

// Mat4FromScale returns the affine matrix scaling each axis by s.
func Mat4FromScale(s Vec3) Mat4 {
	var m Mat4
	m[0] = s.X
	m[5] = s.Y
	m[10] = s.Z
	m[15] = 1
	return m
}

// Mat4FromQuat returns the affine rotation matrix equivalent to q.
// q must be unit length.
func Mat4FromQuat(q Quat) Mat4 {
	r := Mat3FromQuat(q)
	return Mat4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	}
}

// Mat4FromTRS composes translation, rotation and scale into a single
// affine transform (scale first, then rotation, then translation).
func Mat4FromTRS(t Vec3, r Quat, s Vec3) Mat4 {
	rot := Mat3FromQuat(r)
	c0 := rot.Col(0).Scale(s.X)
	c1 := rot.Col(1).Scale(s.Y)
	c2 := rot.Col(2).Scale(s.Z)
	return Mat4{
		c0.X, c0.Y, c0.Z, 0,
		c1.X, c1.Y, c1.Z, 0,
		c2.X, c2.Y, c2.Z, 0,
		t.X, t.Y, t.Z, 1,
	}
}

// At returns the element at (row r, column c). r and c must be in [0,4).
func (m Mat4) At(r, c int) Scalar {
	return m[c*4+r]
}

// Col returns column i as a vector.
func (m Mat4) Col(i int) Vec4 {
	return Vec4{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2], W: m[i*4+3]}
}

// Row returns row i as a vector.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{X: m[i], Y: m[4+i], Z: m[8+i], W: m[12+i]}
}

// Add returns the element-wise sum m + o.
func (m Mat4) Add(o Mat4) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] + o[i]
	}
	return out
}

// Scale returns m with every element multiplied by s.
func (m Mat4) Scale(s Scalar) Mat4 {
	var out Mat4
	for i := range m {
		out[i] = m[i] * s
	}
	return out
}

// Mul returns the matrix product m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = m.Row(r).Dot(o.Col(c))
		}
	}
	return out
}

// MulVec returns the matrix-vector product m * v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m.Row(0).Dot(v),
		Y: m.Row(1).Dot(v),
		Z: m.Row(2).Dot(v),
		W: m.Row(3).Dot(v),
	}
}

// TransformPoint applies the affine transform m to the point p (w=1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return m.MulVec(Vec4FromVec3(p, 1)).Vec3()
}

// TransformDir applies the affine transform m to the direction d (w=0),
// ignoring any translation component.
func (m Mat4) TransformDir(d Vec3) Vec3 {
	return m.MulVec(Vec4FromVec3(d, 0)).Vec3()
}

// Transpose returns the transpose of m.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// Determinant returns the determinant of m.
func (m Mat4) Determinant() Scalar {
	// 2x2 subfactors of the lower two rows.
	s0 := m.At(2, 0)*m.At(3, 1) - m.At(2, 1)*m.At(3, 0)
	s1 := m.At(2, 0)*m.At(3, 2) - m.At(2, 2)*m.At(3, 0)
	s2 := m.At(2, 0)*m.At(3, 3) - m.At(2, 3)*m.At(3, 0)
	s3 := m.At(2, 1)*m.At(3, 2) - m.At(2, 2)*m.At(3, 1)
	s4 := m.At(2, 1)*m.At(3, 3) - m.At(2, 3)*m.At(3, 1)
	s5 := m.At(2, 2)*m.At(3, 3) - m.At(2, 3)*m.At(3, 2)

	c0 := m.At(1, 1)*s5 - m.At(1, 2)*s4 + m.At(1, 3)*s3
	c1 := m.At(1, 0)*s5 - m.At(1, 2)*s2 + m.At(1, 3)*s1
	c2 := m.At(1, 0)*s4 - m.At(1, 1)*s2 + m.At(1, 3)*s0
	c3 := m.At(1, 0)*s3 - m.At(1, 1)*s1 + m.At(1, 2)*s0

	return m.At(0, 0)*c0 - m.At(0, 1)*c1 + m.At(0, 2)*c2 - m.At(0, 3)*c3
}
