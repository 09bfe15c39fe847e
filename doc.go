// Package geomgo provides small geometry primitives (vectors, quaternions,
// matrices) over a single scalar precision fixed at build time, intended
// for embedding inside server-side modules that exchange spatial state.
//
// # Scalar Precision
//
// Every type in this module uses one Scalar type, selected per build:
//
//	go build ./...              // Scalar = float32 (default)
//	go build -tags f32 ./...    // Scalar = float32, explicit
//	go build -tags f64 ./...    // Scalar = float64
//	go build -tags f32,f64 ...  // compile error: tags are mutually exclusive
//
// Fixing the precision at the module boundary keeps every value in a build
// at one precision; mixed-precision values cannot exist.
//
// # Value Semantics
//
// All types are plain immutable data: operations return new values, there
// is no mutation API and no shared state, so values are safe to copy and
// share across goroutines.
//
// # Optional Capabilities
//
// Capabilities are separate subpackages that consumers opt into by import;
// an unused capability is absent from the build entirely:
//
//   - codec: structural encode/decode (JSON, go-json, a fixed binary
//     layout, and lz4/zstd compressed framing)
//   - gonumconv: conversions to and from gonum spatial/quaternion/matrix
//     types
//   - mglconv: conversions to and from go-gl/mathgl types, paired with the
//     active precision (mgl32 on float32 builds, mgl64 on float64 builds)
//
// The conversion packages are independent of each other and of codec; any
// combination may be imported.
package geomgo
