// Package mglconv converts between geomgo value types and their
// github.com/go-gl/mathgl counterparts.
//
// Conversion support is an opt-in capability: importing this package adds
// the mathgl dependency to a build, not importing it leaves geomgo free of
// it. mglconv is independent of the gonumconv package; either, both or
// neither may be imported.
//
// mathgl ships precision-paired packages, so the conversions follow the
// scalar build tags: default and f32 builds convert mgl32 types, f64
// builds convert mgl64 types. The function names are identical in both
// builds.
//
// All conversions are pure and 1:1 structural: dimensionality and
// component order are preserved. mathgl matrices are column-major, like
// geomgo's, so matrix conversions are plain element copies.
package mglconv
