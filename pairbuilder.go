package nlist

import "math"

// PairRecord is a single neighbour-list entry: j is within cutoff of i,
// R is the displacement from i to j (including any periodic shift), Abs
// is its norm, and Shift counts how many cell translations were applied
// to reach j's image, so R == X[j] + cell^T*Shift - X[i]. Shift is derived
// from bin coordinates; under extreme cutoff/cell ratios it can differ by
// ±1 from the minimum-image translation.
type PairRecord[T Float, I Int] struct {
	I, J  I
	Abs   T
	R     Vec3[T]
	Shift Shift3[I]
}

// particleFrame holds the raw (unwrapped) bin coordinates, the
// wrapped/truncated bin coordinates and the bin-relative offset for one
// particle; computed once per particle and reused for every pair
// involving it, in either role.
type particleFrame[T Float, I Int] struct {
	raw     [3]int64
	wrapped [3]I
	dx      Vec3[T]
}

func buildFrames[T Float, I Int](geo *CellGeometry[T, I], positions []Vec3[T]) []particleFrame[T, I] {
	frames := make([]particleFrame[T, I], len(positions))
	for i, x := range positions {
		raw := geo.binOf(x)
		wrapped := geo.wrapOrTrunc(raw)
		frames[i] = particleFrame[T, I]{
			raw:     raw,
			wrapped: wrapped,
			dx:      x.Sub(geo.binCorner(wrapped)),
		}
	}
	return frames
}

// buildPairs is the sequential PairBuilder core: it walks every particle's
// bin and its neighbour shell, emitting a PairRecord for every periodic
// image of every pair whose separation is within cutoff. It never allocates more than
// one growing slice, sized with the "6*N" heuristic from the spec.
func buildPairs[T Float, I Int](geo *CellGeometry[T, I], lb *LinkedBins[I], positions []Vec3[T]) []PairRecord[T, I] {
	n := len(positions)
	frames := buildFrames(geo, positions)
	records := make([]PairRecord[T, I], 0, 6*n)

	m0, m1, m2 := int64(geo.m[0]), int64(geo.m[1]), int64(geo.m[2])
	n0, n1, n2 := int64(geo.n[0]), int64(geo.n[1]), int64(geo.n[2])
	nAxis := [3]int64{n0, n1, n2}
	cutoff2 := geo.cutoff * geo.cutoff

	for i := 0; i < n; i++ {
		fi := frames[i]
		for ox := -m0; ox <= m0; ox++ {
			for oy := -m1; oy <= m1; oy++ {
				for oz := -m2; oz <= m2; oz++ {
					offset := [3]int64{ox, oy, oz}

					var cand [3]I
					valid := true
					for k := 0; k < 3; k++ {
						raw := int64(fi.wrapped[k]) + offset[k]
						if geo.pbc[k] {
							nk := nAxis[k]
							raw = ((raw % nk) + nk) % nk
						} else if raw < 0 || raw >= nAxis[k] {
							valid = false
							break
						}
						cand[k] = I(raw)
					}
					if !valid {
						continue
					}

					off := geo.shellOffset(offset)
					c := geo.flatIndex(cand)
					for j := int64(lb.Seed[c]); j != none; j = int64(lb.Next[j]) {
						if int64(i) == j && offset == ([3]int64{0, 0, 0}) {
							continue
						}
						fj := frames[j]
						dr := fj.dx.Sub(fi.dx).Add(off)
						d2 := dr.Dot(dr)
						if d2 >= cutoff2 {
							continue
						}
						var shift Shift3[I]
						shiftArr := [3]I{}
						for k := 0; k < 3; k++ {
							if geo.pbc[k] {
								diff := int64(fi.wrapped[k]) - int64(fj.wrapped[k]) + offset[k]
								shiftArr[k] = I(diff / nAxis[k])
							}
						}
						shift = Shift3[I]{X: shiftArr[0], Y: shiftArr[1], Z: shiftArr[2]}
						records = append(records, PairRecord[T, I]{
							I:     I(i),
							J:     I(j),
							Abs:   T(math.Sqrt(float64(d2))),
							R:     dr,
							Shift: shift,
						})
					}
				}
			}
		}
	}
	return records
}
