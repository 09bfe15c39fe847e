package gonumconv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/geomgo"
)

// ErrShape indicates a gonum matrix whose dimensions do not match the
// requested geomgo matrix type.
type ErrShape struct {
	Rows, Cols         int // dimensions of the input matrix
	WantRows, WantCols int // dimensions required by the target type
}

func (e *ErrShape) Error() string {
	return fmt.Sprintf("gonumconv: matrix is %dx%d, want %dx%d", e.Rows, e.Cols, e.WantRows, e.WantCols)
}

// FromMatrix3 converts a 3x3 gonum matrix. Returns ErrShape for any other
// dimensions.
func FromMatrix3(m mat.Matrix) (geomgo.Mat3, error) {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return geomgo.Mat3{}, &ErrShape{Rows: r, Cols: c, WantRows: 3, WantCols: 3}
	}
	var out geomgo.Mat3
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out[col*3+row] = geomgo.Scalar(m.At(row, col))
		}
	}
	return out, nil
}

// FromMatrix4 converts a 4x4 gonum matrix. Returns ErrShape for any other
// dimensions.
func FromMatrix4(m mat.Matrix) (geomgo.Mat4, error) {
	r, c := m.Dims()
	if r != 4 || c != 4 {
		return geomgo.Mat4{}, &ErrShape{Rows: r, Cols: c, WantRows: 4, WantCols: 4}
	}
	var out geomgo.Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] = geomgo.Scalar(m.At(row, col))
		}
	}
	return out, nil
}

// ToDense3 converts to a 3x3 gonum dense matrix.
func ToDense3(m geomgo.Mat3) *mat.Dense {
	out := mat.NewDense(3, 3, nil)
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out.Set(row, col, float64(m.At(row, col)))
		}
	}
	return out
}

// ToDense4 converts to a 4x4 gonum dense matrix.
func ToDense4(m geomgo.Mat4) *mat.Dense {
	out := mat.NewDense(4, 4, nil)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out.Set(row, col, float64(m.At(row, col)))
		}
	}
	return out
}
