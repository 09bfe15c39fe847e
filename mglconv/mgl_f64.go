//go:build f64 && !f32

package mglconv

import (
	mgl "github.com/go-gl/mathgl/mgl64"

	"github.com/hupe1980/geomgo"
)

// FromVec2 converts a mathgl 2D vector.
func FromVec2(v mgl.Vec2) geomgo.Vec2 {
	return geomgo.Vec2{X: v[0], Y: v[1]}
}

// ToVec2 converts to a mathgl 2D vector.
func ToVec2(v geomgo.Vec2) mgl.Vec2 {
	return mgl.Vec2{v.X, v.Y}
}

// FromVec3 converts a mathgl 3D vector.
func FromVec3(v mgl.Vec3) geomgo.Vec3 {
	return geomgo.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// ToVec3 converts to a mathgl 3D vector.
func ToVec3(v geomgo.Vec3) mgl.Vec3 {
	return mgl.Vec3{v.X, v.Y, v.Z}
}

// FromVec4 converts a mathgl 4D vector.
func FromVec4(v mgl.Vec4) geomgo.Vec4 {
	return geomgo.Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// ToVec4 converts to a mathgl 4D vector.
func ToVec4(v geomgo.Vec4) mgl.Vec4 {
	return mgl.Vec4{v.X, v.Y, v.Z, v.W}
}

// FromQuat converts a mathgl quaternion.
func FromQuat(q mgl.Quat) geomgo.Quat {
	return geomgo.Quat{X: q.V[0], Y: q.V[1], Z: q.V[2], W: q.W}
}

// ToQuat converts to a mathgl quaternion.
func ToQuat(q geomgo.Quat) mgl.Quat {
	return mgl.Quat{W: q.W, V: mgl.Vec3{q.X, q.Y, q.Z}}
}

// FromMat3 converts a mathgl 3x3 matrix.
func FromMat3(m mgl.Mat3) geomgo.Mat3 {
	var out geomgo.Mat3
	copy(out[:], m[:])
	return out
}

// ToMat3 converts to a mathgl 3x3 matrix.
func ToMat3(m geomgo.Mat3) mgl.Mat3 {
	var out mgl.Mat3
	copy(out[:], m[:])
	return out
}

// FromMat4 converts a mathgl 4x4 matrix.
func FromMat4(m mgl.Mat4) geomgo.Mat4 {
	var out geomgo.Mat4
	copy(out[:], m[:])
	return out
}

// ToMat4 converts to a mathgl 4x4 matrix.
func ToMat4(m geomgo.Mat4) mgl.Mat4 {
	var out mgl.Mat4
	copy(out[:], m[:])
	return out
}
