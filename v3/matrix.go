package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of row vectors in 3D space, backed by a gonum
// *mat.Dense with exactly 3 columns. Within this package a "vector" means
// one row: the cartesian coordinates of a single point.
type Matrix struct {
	*mat.Dense
}

// NewMatrix builds a Matrix from a flat, row-major slice of len(data)/3
// rows of 3 coordinates each. len(data) must be a multiple of 3.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols = 3
	if len(data)%cols != 0 {
		return nil, fmt.Errorf("v3: data length %d not divisible by %d", len(data), cols)
	}
	rows := len(data) / cols
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// NVecs returns the number of row vectors in the Matrix.
func (m *Matrix) NVecs() int {
	r, _ := m.Dims()
	return r
}

// VecView returns a 1x3 view of row i; writes through it mutate m.
func (m *Matrix) VecView(i int) *Matrix {
	return &Matrix{m.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// RowVec copies row i into dst (allocating if dst is nil) and returns it.
func (m *Matrix) RowVec(dst []float64, i int) []float64 {
	if dst == nil {
		dst = make([]float64, 3)
	}
	mat.Row(dst, i, m.Dense)
	return dst
}

// Vec3 copies row i into an nlist-style cartesian triple.
func (m *Matrix) Vec3(i int) (x, y, z float64) {
	return m.At(i, 0), m.At(i, 1), m.At(i, 2)
}
