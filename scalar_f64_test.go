//go:build f64 && !f32

package geomgo

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestF64ScalarIsDoublePrecision(t *testing.T) {
	assert.Equal(t, 64, ScalarBits)
	assert.Equal(t, "float64", ScalarName)
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Scalar(0)))
}
