//go:build f32 && f64

package geomgo

// The f32 and f64 build tags select the module-wide Scalar precision and
// are mutually exclusive. This file only compiles when both tags are set
// and fails the build with a named error instead of silently picking one.
var _ = buildTagsF32AndF64AreMutuallyExclusive
