//go:build f64 && !f32

package geomgo

// Scalar is the element type used by every value type in this module.
//
// This build was made with the f64 tag, so Scalar resolves to float64.
type Scalar = float64

const (
	// ScalarBits is the width of the active Scalar in bits.
	ScalarBits = 64

	// ScalarName is the Go name of the active Scalar type.
	ScalarName = "float64"

	// Epsilon is the default tolerance for normalization and
	// orthonormality checks at the active precision.
	Epsilon Scalar = 1e-10
)
