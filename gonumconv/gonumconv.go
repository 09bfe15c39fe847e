// Package gonumconv converts between geomgo value types and their
// gonum.org/v1/gonum counterparts (spatial/r2, spatial/r3, num/quat, mat).
//
// Conversion support is an opt-in capability: importing this package adds
// the gonum dependency to a build, not importing it leaves geomgo free of
// it. gonumconv is independent of the mglconv package; either, both or
// neither may be imported.
//
// All conversions are pure and 1:1 structural: dimensionality and
// component order are preserved and each component is cast between
// float64 (gonum's element type) and the active geomgo.Scalar.
package gonumconv

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/geomgo"
)

// FromR2 converts a gonum 2D vector.
func FromR2(v r2.Vec) geomgo.Vec2 {
	return geomgo.Vec2{X: geomgo.Scalar(v.X), Y: geomgo.Scalar(v.Y)}
}

// ToR2 converts to a gonum 2D vector.
func ToR2(v geomgo.Vec2) r2.Vec {
	return r2.Vec{X: float64(v.X), Y: float64(v.Y)}
}

// FromR3 converts a gonum 3D vector.
func FromR3(v r3.Vec) geomgo.Vec3 {
	return geomgo.Vec3{X: geomgo.Scalar(v.X), Y: geomgo.Scalar(v.Y), Z: geomgo.Scalar(v.Z)}
}

// ToR3 converts to a gonum 3D vector.
func ToR3(v geomgo.Vec3) r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// FromQuat converts a gonum quaternion. gonum's Real part maps to W and
// Imag/Jmag/Kmag map to X/Y/Z.
func FromQuat(q quat.Number) geomgo.Quat {
	return geomgo.Quat{
		X: geomgo.Scalar(q.Imag),
		Y: geomgo.Scalar(q.Jmag),
		Z: geomgo.Scalar(q.Kmag),
		W: geomgo.Scalar(q.Real),
	}
}

// ToQuat converts to a gonum quaternion.
func ToQuat(q geomgo.Quat) quat.Number {
	return quat.Number{
		Real: float64(q.W),
		Imag: float64(q.X),
		Jmag: float64(q.Y),
		Kmag: float64(q.Z),
	}
}
