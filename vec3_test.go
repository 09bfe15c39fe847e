package geomgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: -2, Z: 3}
	b := Vec3{X: 4, Y: 5, Z: -6}

	assert.Equal(t, Vec3{X: 5, Y: 3, Z: -3}, a.Add(b))
	assert.Equal(t, Vec3{X: -3, Y: -7, Z: 9}, a.Sub(b))
	assert.Equal(t, Vec3{X: 0.5, Y: -1, Z: 1.5}, a.Scale(0.5))
	assert.Equal(t, Vec3{X: -1, Y: 2, Z: -3}, a.Neg())
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{"XCrossY", Vec3{X: 1}, Vec3{Y: 1}, Vec3{Z: 1}},
		{"YCrossZ", Vec3{Y: 1}, Vec3{Z: 1}, Vec3{X: 1}},
		{"ZCrossX", Vec3{Z: 1}, Vec3{X: 1}, Vec3{Y: 1}},
		{"Parallel", Vec3{X: 2}, Vec3{X: 5}, Vec3Zero},
		{"RightCrossUp", Vec3Right, Vec3Up, Vec3Backward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec3InDelta(t, tt.expected, tt.a.Cross(tt.b))
			// Anti-commutative.
			assertVec3InDelta(t, tt.expected.Neg(), tt.b.Cross(tt.a))
		})
	}
}

func TestVec3DotLength(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 5, Z: 6}

	assert.InDelta(t, 32, a.Dot(b), testDelta)
	assert.InDelta(t, 14, a.LengthSquared(), testDelta)
	assert.InDelta(t, 3, Vec3{X: 2, Y: 2, Z: 1}.Length(), testDelta)
	assert.InDelta(t, 3, a.Distance(Vec3{X: 3, Y: 4, Z: 4}), testDelta)
}

func TestVec3Normalize(t *testing.T) {
	n, ok := Vec3{X: 0, Y: 3, Z: 4}.Normalize()
	require.True(t, ok)
	assertVec3InDelta(t, Vec3{Y: 0.6, Z: 0.8}, n)
	assert.InDelta(t, 1, n.Length(), testDelta)

	_, ok = Vec3Zero.Normalize()
	assert.False(t, ok)
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{X: 1, Y: 1, Z: 1}
	b := Vec3{X: 3, Y: -1, Z: 5}

	assertVec3InDelta(t, a, a.Lerp(b, 0))
	assertVec3InDelta(t, b, a.Lerp(b, 1))
	assertVec3InDelta(t, Vec3{X: 2, Y: 0, Z: 3}, a.Lerp(b, 0.5))
}

func TestVec3DirectionConstants(t *testing.T) {
	// The default convention is right-handed Y-up with forward = -Z.
	assert.Equal(t, Vec3Up.Neg(), Vec3Down)
	assert.Equal(t, Vec3Right.Neg(), Vec3Left)
	assert.Equal(t, Vec3Forward.Neg(), Vec3Backward)
	assertVec3InDelta(t, Vec3Up, Vec3Backward.Cross(Vec3Right))
}
