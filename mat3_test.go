package geomgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat3Identity(t *testing.T) {
	id := Mat3Identity()
	m := Mat3FromCols(
		Vec3{X: 1, Y: 2, Z: 3},
		Vec3{X: 4, Y: 5, Z: 6},
		Vec3{X: 7, Y: 8, Z: 9},
	)

	assert.Equal(t, m, id.Mul(m))
	assert.Equal(t, m, m.Mul(id))
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, id.MulVec(Vec3{X: 1, Y: 2, Z: 3}))
	assert.InDelta(t, 1, id.Determinant(), testDelta)
}

func TestMat3Indexing(t *testing.T) {
	m := Mat3FromCols(
		Vec3{X: 1, Y: 2, Z: 3},
		Vec3{X: 4, Y: 5, Z: 6},
		Vec3{X: 7, Y: 8, Z: 9},
	)

	assert.Equal(t, Scalar(4), m.At(0, 1))
	assert.Equal(t, Scalar(6), m.At(2, 1))
	assert.Equal(t, Vec3{X: 4, Y: 5, Z: 6}, m.Col(1))
	assert.Equal(t, Vec3{X: 2, Y: 5, Z: 8}, m.Row(1))
}

func TestMat3Mul(t *testing.T) {
	a := Mat3FromCols(Vec3{X: 2}, Vec3{Y: 3}, Vec3{Z: 4})
	b := Mat3FromCols(Vec3{X: 5}, Vec3{Y: 6}, Vec3{Z: 7})

	assertMat3InDelta(t, Mat3FromCols(Vec3{X: 10}, Vec3{Y: 18}, Vec3{Z: 28}), a.Mul(b))
}

func TestMat3MulVec(t *testing.T) {
	// Scale x by 2, swap y and z.
	m := Mat3FromCols(Vec3{X: 2}, Vec3{Z: 1}, Vec3{Y: 1})
	assert.Equal(t, Vec3{X: 2, Y: 3, Z: 2}, m.MulVec(Vec3{X: 1, Y: 2, Z: 3}))
}

func TestMat3Transpose(t *testing.T) {
	m := Mat3FromCols(
		Vec3{X: 1, Y: 2, Z: 3},
		Vec3{X: 4, Y: 5, Z: 6},
		Vec3{X: 7, Y: 8, Z: 9},
	)

	tr := m.Transpose()
	assert.Equal(t, m.Row(0), tr.Col(0))
	assert.Equal(t, m.Row(2), tr.Col(2))
	assert.Equal(t, m, tr.Transpose())
}

func TestMat3Determinant(t *testing.T) {
	scale := Mat3FromCols(Vec3{X: 2}, Vec3{Y: 3}, Vec3{Z: 4})
	assert.InDelta(t, 24, scale.Determinant(), testDelta)

	rot := Mat3FromQuat(QuatFromAxisAngle(Vec3{X: 1, Y: 2, Z: 3}, 0.9))
	assert.InDelta(t, 1, rot.Determinant(), testDelta)

	singular := Mat3FromCols(Vec3{X: 1, Y: 2, Z: 3}, Vec3{X: 2, Y: 4, Z: 6}, Vec3{Z: 1})
	assert.InDelta(t, 0, singular.Determinant(), testDelta)
}

func TestMat3AddScale(t *testing.T) {
	id := Mat3Identity()
	assertMat3InDelta(t, id.Scale(2), id.Add(id))
}

func TestMat3FromQuat(t *testing.T) {
	assertMat3InDelta(t, Mat3Identity(), Mat3FromQuat(QuatIdentity))

	// 90 degrees about Up maps Right to Forward.
	m := Mat3FromQuat(QuatFromAxisAngle(Vec3Up, Scalar(math.Pi/2)))
	assertVec3InDelta(t, Vec3Forward, m.MulVec(Vec3Right))
}
