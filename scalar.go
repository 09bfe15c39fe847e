package geomgo

import "math"

// Scalar math helpers. Scalar is a type alias, so routing through float64
// compiles identically for both precisions and costs nothing on f64 builds.

func sqrt(x Scalar) Scalar { return Scalar(math.Sqrt(float64(x))) }

func sin(x Scalar) Scalar { return Scalar(math.Sin(float64(x))) }

func cos(x Scalar) Scalar { return Scalar(math.Cos(float64(x))) }

func acos(x Scalar) Scalar {
	// Clamp against drift outside [-1, 1] from accumulated rounding.
	if x < -1 {
		x = -1
	} else if x > 1 {
		x = 1
	}
	return Scalar(math.Acos(float64(x)))
}
