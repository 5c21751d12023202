package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/rmera/nlist"
)

// CellFromDense builds an nlist.Cell[float64] from a 3x3 gonum matrix
// whose rows are the lattice vectors a1, a2, a3, letting callers who
// already hold their simulation cell as a *mat.Dense (as the rest of
// this codebase's coordinate-handling code does) feed it straight into
// nlist.NewCellGeometry/nlist.Build without flattening to Vec3 by hand.
func CellFromDense(m mat.Matrix) (nlist.Cell[float64], error) {
	var cell nlist.Cell[float64]
	r, c := m.Dims()
	if r != 3 || c != 3 {
		return cell, fmt.Errorf("v3: cell matrix must be 3x3, got %dx%d", r, c)
	}
	if det3(m) == 0 {
		return cell, fmt.Errorf("v3: cell matrix is exactly singular")
	}
	for row := 0; row < 3; row++ {
		cell[row] = nlist.Vec3[float64]{X: m.At(row, 0), Y: m.At(row, 1), Z: m.At(row, 2)}
	}
	return cell, nil
}

// det3 returns the determinant of a 3x3 gonum matrix, panicking if it
// isn't 3x3 -- the same fixed-size special case this codebase's v3
// package has always hand-rolled rather than calling a general-purpose
// decomposition for.
func det3(m mat.Matrix) float64 {
	r, c := m.Dims()
	if r != 3 || c != 3 {
		panic("v3: determinant only defined for 3x3 matrices")
	}
	return m.At(0, 0)*(m.At(1, 1)*m.At(2, 2)-m.At(2, 1)*m.At(1, 2)) -
		m.At(1, 0)*(m.At(0, 1)*m.At(2, 2)-m.At(2, 1)*m.At(0, 2)) +
		m.At(2, 0)*(m.At(0, 1)*m.At(1, 2)-m.At(1, 1)*m.At(0, 2))
}

// PositionsFromDense converts an Nx3 gonum matrix of cartesian positions
// into the []nlist.Vec3[float64] slice nlist.Build expects.
func PositionsFromDense(m mat.Matrix) []nlist.Vec3[float64] {
	r, _ := m.Dims()
	out := make([]nlist.Vec3[float64], r)
	for i := 0; i < r; i++ {
		out[i] = nlist.Vec3[float64]{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2)}
	}
	return out
}
