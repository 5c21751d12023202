package nlist

import "math"

const epsVol = 1e-12

// CellGeometry is the immutable derived view of a simulation cell used by
// the Binner and PairBuilder. It is built once per Build call and never
// mutated afterwards.
type CellGeometry[T Float, I Int] struct {
	cell   Cell[T]
	pbc    Pbc
	cutoff T
	volume T

	faceDist [3]T // perpendicular distance between opposing cell faces
	n        [3]I // bin counts per axis
	m        [3]I // neighbour shell extent per axis

	binShape [3]Vec3[T] // bin-shape vectors: cell axis k divided by n[k]
}

// tripleProduct returns a . (b x c).
func tripleProduct[T Float](a, b, c Vec3[T]) T {
	return a.Dot(b.Cross(c))
}

// fractional solves cell^T * y = x for y, i.e. returns the coordinates of
// x expressed in the (possibly non-orthogonal) lattice basis, via Cramer's
// rule on the scalar triple product -- equivalent to x * cell^-1 but
// avoiding an explicit matrix inverse for this fixed 3x3 case.
func fractional[T Float](cell Cell[T], x Vec3[T]) Vec3[T] {
	a1, a2, a3 := cell[0], cell[1], cell[2]
	v := tripleProduct(a1, a2, a3)
	return Vec3[T]{
		X: tripleProduct(x, a2, a3) / v,
		Y: tripleProduct(a1, x, a3) / v,
		Z: tripleProduct(a1, a2, x) / v,
	}
}

// NewCellGeometry computes the derived quantities (face distances, bin
// counts, shell extents, bin shape) for a cell/pbc/cutoff triple. It fails
// with ZeroVolume if the cell is singular, InvalidCutoff if cutoff <= 0,
// and BinGridTooLarge if the resulting bin grid overflows I.
func NewCellGeometry[T Float, I Int](cell Cell[T], pbc Pbc, cutoff T) (*CellGeometry[T, I], error) {
	if cutoff <= 0 {
		return nil, newError(InvalidCutoff, "nlist: cutoff must be positive")
	}
	a1, a2, a3 := cell[0], cell[1], cell[2]
	vol := tripleProduct(a1, a2, a3)
	avol := math.Abs(float64(vol))
	if avol < epsVol {
		return nil, newError(ZeroVolume, "nlist: |det(cell)| below the numerical volume floor")
	}

	g := &CellGeometry[T, I]{cell: cell, pbc: pbc, cutoff: cutoff, volume: vol}

	crosses := [3]Vec3[T]{a2.Cross(a3), a3.Cross(a1), a1.Cross(a2)}
	for k := 0; k < 3; k++ {
		normCross := T(math.Sqrt(float64(crosses[k].Dot(crosses[k]))))
		g.faceDist[k] = T(avol) / normCross
	}

	var total int64 = 1
	for k := 0; k < 3; k++ {
		nk := int64(math.Floor(float64(g.faceDist[k] / cutoff)))
		if nk < 1 {
			nk = 1
		}
		if nk > maxOfInt[I]()/total {
			return nil, newError(BinGridTooLarge,
				"nlist: bin grid n1*n2*n3 overflows the index type; use a wider integer type, a larger cutoff, or a smaller cell")
		}
		total *= nk
		g.n[k] = I(nk)
		mk := int64(math.Ceil(float64(cutoff) * float64(nk) / float64(g.faceDist[k])))
		if mk < 0 {
			mk = 0
		}
		g.m[k] = I(mk)
	}

	axes := [3]Vec3[T]{a1, a2, a3}
	for k := 0; k < 3; k++ {
		g.binShape[k] = axes[k].Scale(1 / T(g.n[k]))
	}

	return g, nil
}

// maxOfInt returns the maximum representable value of I, widened to
// int64, used to detect bin-grid overflow before allocation. Only int32
// and int64 themselves are recognised; any other type in Int (a named
// type over int32 or int64) gets the int32 maximum.
func maxOfInt[I Int]() int64 {
	var z I
	switch any(z).(type) {
	case int32:
		return math.MaxInt32
	case int64:
		return math.MaxInt64
	default:
		return math.MaxInt32
	}
}

// binOf maps a world position to its raw (unwrapped) integer bin
// coordinates; the result may fall outside [0, n_k) for positions outside
// the primary cell image.
func (g *CellGeometry[T, I]) binOf(x Vec3[T]) [3]int64 {
	y := fractional(g.cell, x)
	f := [3]T{y.X, y.Y, y.Z}
	var out [3]int64
	for k := 0; k < 3; k++ {
		out[k] = int64(math.Floor(float64(f[k]) * float64(g.n[k])))
	}
	return out
}

// wrapOrTrunc reduces raw bin coordinates into [0, n_k) per axis,
// wrapping periodic axes and clamping open ones.
func (g *CellGeometry[T, I]) wrapOrTrunc(raw [3]int64) [3]I {
	var out [3]I
	for k := 0; k < 3; k++ {
		nk := int64(g.n[k])
		c := raw[k]
		if g.pbc[k] {
			c = ((c % nk) + nk) % nk
		} else {
			if c < 0 {
				c = 0
			} else if c >= nk {
				c = nk - 1
			}
		}
		out[k] = I(c)
	}
	return out
}

// binCorner returns the cartesian position of the lower corner of bin ci
// (0-based, already wrapped/truncated into range).
func (g *CellGeometry[T, I]) binCorner(ci [3]I) Vec3[T] {
	var corner Vec3[T]
	corner = corner.Add(g.binShape[0].Scale(T(ci[0])))
	corner = corner.Add(g.binShape[1].Scale(T(ci[1])))
	corner = corner.Add(g.binShape[2].Scale(T(ci[2])))
	return corner
}

// shellOffset returns the cartesian displacement corresponding to moving
// offset[k] bins along axis k.
func (g *CellGeometry[T, I]) shellOffset(offset [3]int64) Vec3[T] {
	var off Vec3[T]
	off = off.Add(g.binShape[0].Scale(T(offset[0])))
	off = off.Add(g.binShape[1].Scale(T(offset[1])))
	off = off.Add(g.binShape[2].Scale(T(offset[2])))
	return off
}

// flatIndex linearises 0-based bin coordinates into a single index.
func (g *CellGeometry[T, I]) flatIndex(ci [3]I) int64 {
	n0, n1 := int64(g.n[0]), int64(g.n[1])
	return int64(ci[0]) + n0*int64(ci[1]) + n0*n1*int64(ci[2])
}

// NumBins returns n1*n2*n3.
func (g *CellGeometry[T, I]) NumBins() int64 {
	return int64(g.n[0]) * int64(g.n[1]) * int64(g.n[2])
}

// BinCounts returns the (n1, n2, n3) bin grid dimensions.
func (g *CellGeometry[T, I]) BinCounts() (I, I, I) { return g.n[0], g.n[1], g.n[2] }

// ShellExtents returns the (m1, m2, m3) neighbour-shell scan radii.
func (g *CellGeometry[T, I]) ShellExtents() (I, I, I) { return g.m[0], g.m[1], g.m[2] }

// Volume returns det(cell) (signed).
func (g *CellGeometry[T, I]) Volume() T { return g.volume }
