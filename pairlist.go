package nlist

import (
	"iter"
	"sort"
)

// PairList is the materialised, flat neighbour list: five parallel arrays
// of equal length, plus (once sorted) a first-of-site offset array giving
// each site's neighbour slice in O(1).
type PairList[T Float, I Int] struct {
	n      int
	idx    []I
	jdx    []I
	abs    []T
	r      []Vec3[T]
	shift  []Shift3[I]
	sorted bool
	first  []I // length n+1 once sorted
}

// Len returns the number of pair records (M in the spec).
func (pl *PairList[T, I]) Len() int { return len(pl.idx) }

// NumSites returns N, the number of particles the list was built over.
func (pl *PairList[T, I]) NumSites() int { return pl.n }

// Sorted reports whether the site index has been built.
func (pl *PairList[T, I]) Sorted() bool { return pl.sorted }

// At returns the k-th pair record.
func (pl *PairList[T, I]) At(k int) PairRecord[T, I] {
	return PairRecord[T, I]{I: pl.idx[k], J: pl.jdx[k], Abs: pl.abs[k], R: pl.r[k], Shift: pl.shift[k]}
}

// I returns the first-site index of the k-th record (avoids building a
// PairRecord when only one field is needed in a hot loop).
func (pl *PairList[T, I]) I(k int) I { return pl.idx[k] }

// J returns the second-site index of the k-th record.
func (pl *PairList[T, I]) J(k int) I { return pl.jdx[k] }

// Abs returns the distance of the k-th record.
func (pl *PairList[T, I]) Abs(k int) T { return pl.abs[k] }

// R returns the displacement vector of the k-th record.
func (pl *PairList[T, I]) R(k int) Vec3[T] { return pl.r[k] }

// Shift returns the integer periodic shift of the k-th record.
func (pl *PairList[T, I]) Shift(k int) Shift3[I] { return pl.shift[k] }

// FirstOfSite returns the offset array (length NumSites()+1) delimiting
// each site's neighbour slice; it is nil until the list has been sorted.
func (pl *PairList[T, I]) FirstOfSite() []I { return pl.first }

// SiteSlice describes site i's contiguous run of neighbour records,
// [Start, End) into the parent PairList's arrays.
type SiteSlice struct {
	Start, End int
}

// SiteView is a read-only handle onto one site's neighbour records,
// yielded by Sites without copying the underlying arrays.
type SiteView[T Float, I Int] struct {
	pl    *PairList[T, I]
	slice SiteSlice
}

// Len returns the number of neighbour records for this site.
func (sv SiteView[T, I]) Len() int { return sv.slice.End - sv.slice.Start }

// At returns the k-th neighbour record of this site, 0 <= k < Len().
func (sv SiteView[T, I]) At(k int) PairRecord[T, I] { return sv.pl.At(sv.slice.Start + k) }

// Pairs returns a sequence over every pair record in the list, in
// storage order (site-sorted, once the list has been Build-sorted).
func (pl *PairList[T, I]) Pairs() iter.Seq[PairRecord[T, I]] {
	return func(yield func(PairRecord[T, I]) bool) {
		for k := 0; k < pl.Len(); k++ {
			if !yield(pl.At(k)) {
				return
			}
		}
	}
}

// Sites returns a sequence of (i, SiteView) for i in [0, NumSites()).
// The PairList must be sorted (Build always returns a sorted list).
func (pl *PairList[T, I]) Sites() iter.Seq2[int, SiteView[T, I]] {
	return func(yield func(int, SiteView[T, I]) bool) {
		for i := 0; i < pl.n; i++ {
			if !yield(i, SiteView[T, I]{pl: pl, slice: pl.Site(i)}) {
				return
			}
		}
	}
}

// Site returns the neighbour-record slice bounds for site i. The PairList
// must be sorted (Build always returns a sorted list; BuildUnsorted does
// not).
func (pl *PairList[T, I]) Site(i int) SiteSlice {
	if !pl.sorted {
		panic("nlist: Site called on an unsorted PairList")
	}
	return SiteSlice{Start: int(pl.first[i]), End: int(pl.first[i+1])}
}

// sortBySite reorders records so that all pairs with I == i form a
// contiguous, J-nondecreasing block, stably with respect to emission
// order so equal (i, j) pairs keep their relative shift order.
func (pl *PairList[T, I]) sortBySite() {
	order := make([]int, len(pl.idx))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := order[a], order[b]
		if pl.idx[ka] != pl.idx[kb] {
			return pl.idx[ka] < pl.idx[kb]
		}
		return pl.jdx[ka] < pl.jdx[kb]
	})

	idx := make([]I, len(order))
	jdx := make([]I, len(order))
	abs := make([]T, len(order))
	r := make([]Vec3[T], len(order))
	shift := make([]Shift3[I], len(order))
	for newPos, oldPos := range order {
		idx[newPos] = pl.idx[oldPos]
		jdx[newPos] = pl.jdx[oldPos]
		abs[newPos] = pl.abs[oldPos]
		r[newPos] = pl.r[oldPos]
		shift[newPos] = pl.shift[oldPos]
	}
	pl.idx, pl.jdx, pl.abs, pl.r, pl.shift = idx, jdx, abs, r, shift

	first := make([]I, pl.n+1)
	site := 0
	for k := 0; k < len(pl.idx); k++ {
		for site <= int(pl.idx[k]) {
			first[site] = I(k)
			site++
		}
	}
	for site <= pl.n {
		first[site] = I(len(pl.idx))
		site++
	}
	pl.first = first
	pl.sorted = true
}

// Build partitions positions into cell-aligned bins and emits every
// ordered pair within cutoff, including periodic self-images, as a
// site-sorted PairList ready for site lookups, iteration and n-body
// enumeration.
func Build[T Float, I Int](cell Cell[T], pbc Pbc, positions []Vec3[T], cutoff T) (*PairList[T, I], error) {
	pl, err := BuildUnsorted[T, I](cell, pbc, positions, cutoff)
	if err != nil {
		return nil, err
	}
	pl.sortBySite()
	return pl, nil
}

// BuildUnsorted is Build without the final sort-by-site pass; records
// appear in emission order (i ascending outermost, shell offsets and bin
// walk order inside). Useful for tests asserting on the raw builder
// output and for callers who only need the pair stream, not per-site
// slices.
func BuildUnsorted[T Float, I Int](cell Cell[T], pbc Pbc, positions []Vec3[T], cutoff T) (*PairList[T, I], error) {
	geo, err := NewCellGeometry[T, I](cell, pbc, cutoff)
	if err != nil {
		return nil, err
	}
	lb := Bin(geo, positions)
	records := buildPairs(geo, lb, positions)

	pl := &PairList[T, I]{n: len(positions)}
	pl.idx = make([]I, len(records))
	pl.jdx = make([]I, len(records))
	pl.abs = make([]T, len(records))
	pl.r = make([]Vec3[T], len(records))
	pl.shift = make([]Shift3[I], len(records))
	for k, rec := range records {
		pl.idx[k] = rec.I
		pl.jdx[k] = rec.J
		pl.abs[k] = rec.Abs
		pl.r[k] = rec.R
		pl.shift[k] = rec.Shift
	}
	return pl, nil
}
