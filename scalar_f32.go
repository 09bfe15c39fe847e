//go:build !f64

package geomgo

// Scalar is the element type used by every value type in this module.
//
// The precision is fixed once per build: the default (and the explicit
// f32 build tag) resolves Scalar to float32, the f64 tag resolves it to
// float64. The two tags are mutually exclusive; building with both fails
// (see scalar_conflict.go).
type Scalar = float32

const (
	// ScalarBits is the width of the active Scalar in bits.
	ScalarBits = 32

	// ScalarName is the Go name of the active Scalar type.
	ScalarName = "float32"

	// Epsilon is the default tolerance for normalization and
	// orthonormality checks at the active precision.
	Epsilon Scalar = 1e-6
)
