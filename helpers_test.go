package geomgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDelta = 1e-5

func assertVec2InDelta(t *testing.T, want, got Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, testDelta)
	assert.InDelta(t, want.Y, got.Y, testDelta)
}

func assertVec3InDelta(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, testDelta)
	assert.InDelta(t, want.Y, got.Y, testDelta)
	assert.InDelta(t, want.Z, got.Z, testDelta)
}

func assertQuatInDelta(t *testing.T, want, got Quat) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, testDelta)
	assert.InDelta(t, want.Y, got.Y, testDelta)
	assert.InDelta(t, want.Z, got.Z, testDelta)
	assert.InDelta(t, want.W, got.W, testDelta)
}

func assertMat3InDelta(t *testing.T, want, got Mat3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], testDelta, "element %d", i)
	}
}

func assertMat4InDelta(t *testing.T, want, got Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], testDelta, "element %d", i)
	}
}
