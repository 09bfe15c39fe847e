//go:build !f64

package mglconv

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/geomgo"
)

func TestVec2Conversion(t *testing.T) {
	in := mgl.Vec2{1.5, -2.25}

	v := FromVec2(in)
	assert.Equal(t, geomgo.Vec2{X: 1.5, Y: -2.25}, v)
	assert.Equal(t, in, ToVec2(v))
}

func TestVec3Conversion(t *testing.T) {
	in := mgl.Vec3{0.5, 2, -3.75}

	v := FromVec3(in)
	assert.Equal(t, geomgo.Vec3{X: 0.5, Y: 2, Z: -3.75}, v)
	assert.Equal(t, in, ToVec3(v))
}

func TestVec4Conversion(t *testing.T) {
	in := mgl.Vec4{1, 2, 3, 4}

	v := FromVec4(in)
	assert.Equal(t, geomgo.Vec4{X: 1, Y: 2, Z: 3, W: 4}, v)
	assert.Equal(t, in, ToVec4(v))
}

func TestQuatConversion(t *testing.T) {
	in := mgl.Quat{W: 1, V: mgl.Vec3{0.5, -0.25, 0.125}}

	q := FromQuat(in)
	assert.Equal(t, geomgo.Quat{X: 0.5, Y: -0.25, Z: 0.125, W: 1}, q)
	assert.Equal(t, in, ToQuat(q))
}

func TestMat3Conversion(t *testing.T) {
	// Both libraries are column-major, so elements map index for index.
	in := mgl.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}

	m := FromMat3(in)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, geomgo.Scalar(in.At(r, c)), m.At(r, c))
		}
	}
	assert.Equal(t, in, ToMat3(m))
}

func TestMat4Conversion(t *testing.T) {
	in := mgl.Translate3D(5, 6, 7)

	m := FromMat4(in)
	assert.Equal(t, geomgo.Vec3{X: 5, Y: 6, Z: 7}, m.TransformPoint(geomgo.Vec3Zero))
	assert.Equal(t, in, ToMat4(m))
}

func TestRotationAgreement(t *testing.T) {
	q := geomgo.QuatFromAxisAngle(geomgo.Vec3Up, 0.7)
	v := geomgo.Vec3{X: 1, Y: 2, Z: 3}

	got := FromVec3(ToQuat(q).Rotate(ToVec3(v)))
	want := q.Rotate(v)

	assert.InDelta(t, want.X, got.X, 1e-5)
	assert.InDelta(t, want.Y, got.Y, 1e-5)
	assert.InDelta(t, want.Z, got.Z, 1e-5)
}
