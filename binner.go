package nlist

// none is the sentinel stored in Seed/Next for "no particle here". Indices
// are 0-based throughout this implementation, so 0 is a valid particle or
// bin index and is never reused as a sentinel.
const none int64 = -1

// LinkedBins is a cell-linked-list: Seed[c] is the first particle index in
// bin c (or none), Next[i] is the next particle index in i's bin (or
// none). Walking Seed[c] -> Next[...] -> ... visits every particle in bin
// c exactly once, in input order.
type LinkedBins[I Int] struct {
	Seed []I
	Next []I
}

// Bin sorts positions into the bins described by geo, returning the
// resulting linked-list structure. The overflow check that would reject
// an oversized grid has already run inside NewCellGeometry, so Bin itself
// cannot fail.
func Bin[T Float, I Int](geo *CellGeometry[T, I], positions []Vec3[T]) *LinkedBins[I] {
	nb := geo.NumBins()
	lb := &LinkedBins[I]{
		Seed: make([]I, nb),
		Next: make([]I, len(positions)),
	}
	for c := range lb.Seed {
		lb.Seed[c] = I(none)
	}
	last := make([]I, nb)
	for c := range last {
		last[c] = I(none)
	}

	for i, x := range positions {
		ci := geo.wrapOrTrunc(geo.binOf(x))
		c := geo.flatIndex(ci)
		if last[c] == I(none) {
			lb.Seed[c] = I(i)
		} else {
			lb.Next[last[c]] = I(i)
		}
		last[c] = I(i)
		lb.Next[i] = I(none)
	}
	return lb
}
