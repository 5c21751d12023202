package nbody

import (
	"math"

	"github.com/rmera/nlist"
)

// Tuple is one canonical n-body tuple rooted at Site: Neighbors holds the
// N-1 neighbour site indices j1 < j2 < ... < j_{N-1}, and Edges holds the
// N(N-1)/2 edge lengths, first the N-1 edges from Site to each neighbour
// (in Neighbors order), then the C(N-1,2) inter-neighbour edges in
// lexicographic (a,b) order. EdgeFrom/EdgeTo/EdgeVec parallel Edges: for
// edge l, EdgeVec[l] points from EdgeTo[l] to EdgeFrom[l], i.e.
// EdgeVec[l] = X[EdgeFrom[l]] - X[EdgeTo[l]], so ‖EdgeVec[l]‖ == Edges[l]. All slices are reused across
// ForEach/ForSite callbacks: copy them if you need to retain a tuple past
// the call.
type Tuple[T nlist.Float, I nlist.Int] struct {
	Site      I
	Neighbors []I
	Edges     []T
	EdgeVec   []nlist.Vec3[T]
	EdgeFrom  []I
	EdgeTo    []I
}

// Enumerator walks a sorted PairList's canonical n-body tuples for a
// fixed order N >= 2.
type Enumerator[T nlist.Float, I nlist.Int] struct {
	list  *nlist.PairList[T, I]
	order int
}

// New validates order and the list's sortedness and returns an
// Enumerator. Order 2 (plain pairs) does not require a sorted list;
// order >= 3 does, since the n-body walk needs each site's contiguous
// neighbour slice.
func New[T nlist.Float, I nlist.Int](list *nlist.PairList[T, I], order int) (*Enumerator[T, I], error) {
	if order < 2 {
		return nil, nlist.NewInvalidArityError("nbody: order must be >= 2")
	}
	if order >= 3 && !list.Sorted() {
		return nil, nlist.NewInvalidArityError("nbody: order >= 3 requires a sorted PairList")
	}
	return &Enumerator[T, I]{list: list, order: order}, nil
}

// Order returns the tuple size (number of sites per n-body group).
func (e *Enumerator[T, I]) Order() int { return e.order }

// findFirstGreater returns the smallest position p in [start, end) with
// J(p) > i, or -1 if none. Neighbour positions within a site's slice are
// J-nondecreasing (guaranteed by PairList.Site on a sorted list), so a
// linear scan from the front is enough; sites typically have few enough
// neighbours that a binary search would not pay for itself.
func findFirstGreater[T nlist.Float, I nlist.Int](list *nlist.PairList[T, I], i int, start, end int) int {
	for p := start; p < end; p++ {
		if int(list.J(p)) > i {
			return p
		}
	}
	return -1
}

// NumSites returns the number of sites the underlying PairList was built
// over, letting callers split work across sites (e.g. a parallel
// reducer) without reaching into the PairList directly.
func (e *Enumerator[T, I]) NumSites() int { return e.list.NumSites() }

// ForEach calls f once for every canonical tuple, in site order. The
// Tuple passed to f is backed by scratch buffers owned by this call and
// is invalidated on the next invocation of f.
func (e *Enumerator[T, I]) ForEach(f func(Tuple[T, I])) {
	scratch := newTupleScratch[T, I](e.order)
	for i := 0; i < e.list.NumSites(); i++ {
		e.forSite(i, scratch, f)
	}
}

// ForSite calls f once for every canonical tuple rooted at site i. Unlike
// ForEach it owns its own scratch buffers, so it is safe to call from
// multiple goroutines concurrently as long as each call is given a
// disjoint set of sites.
func (e *Enumerator[T, I]) ForSite(i int, f func(Tuple[T, I])) {
	scratch := newTupleScratch[T, I](e.order)
	e.forSite(i, scratch, f)
}

type tupleScratch[T nlist.Float, I nlist.Int] struct {
	neighbors []I
	combo     []int
	edges     []T
	edgeVec   []nlist.Vec3[T]
	edgeFrom  []I
	edgeTo    []I
}

func newTupleScratch[T nlist.Float, I nlist.Int](order int) *tupleScratch[T, I] {
	k := order - 1
	e := order * (order - 1) / 2
	return &tupleScratch[T, I]{
		neighbors: make([]I, k),
		combo:     make([]int, k),
		edges:     make([]T, e),
		edgeVec:   make([]nlist.Vec3[T], e),
		edgeFrom:  make([]I, e),
		edgeTo:    make([]I, e),
	}
}

func (e *Enumerator[T, I]) forSite(i int, s *tupleScratch[T, I], f func(Tuple[T, I])) {
	k := e.order - 1
	if !e.list.Sorted() {
		// Only order 2 gets here (New rejects unsorted lists for order
		// >= 3): scan every record for the pairs (i, j > i).
		for p := 0; p < e.list.Len(); p++ {
			if int(e.list.I(p)) == i && int(e.list.J(p)) > i {
				s.combo[0] = 0
				s.neighbors[0] = e.list.J(p)
				fillEdges(e.list, I(i), p, s.combo, s)
				f(Tuple[T, I]{Site: I(i), Neighbors: s.neighbors, Edges: s.edges, EdgeVec: s.edgeVec, EdgeFrom: s.edgeFrom, EdgeTo: s.edgeTo})
			}
		}
		return
	}
	site := e.list.Site(i)
	start := findFirstGreater(e.list, i, site.Start, site.End)
	if start < 0 {
		return
	}
	avail := site.End - start
	if avail < k {
		return
	}
	walkCombinations(avail, k, s.combo, func(c []int) {
		for idx, off := range c {
			s.neighbors[idx] = e.list.J(start + off)
		}
		fillEdges(e.list, I(i), start, c, s)
		f(Tuple[T, I]{
			Site:      I(i),
			Neighbors: s.neighbors,
			Edges:     s.edges,
			EdgeVec:   s.edgeVec,
			EdgeFrom:  s.edgeFrom,
			EdgeTo:    s.edgeTo,
		})
	})
}

// fillEdges writes the N-1 site-to-neighbour edges followed by the
// C(N-1,2) inter-neighbour edges into s, reusing the pair-list's
// already-computed r_vec: since every r_vec in a site's slice is relative
// to the same central site, R[a] - R[b] is exactly the displacement
// between neighbours a and b regardless of periodic image.
func fillEdges[T nlist.Float, I nlist.Int](list *nlist.PairList[T, I], site I, start int, combo []int, s *tupleScratch[T, I]) {
	k := len(combo)
	idx := 0
	for a := 0; a < k; a++ {
		p := start + combo[a]
		s.edges[idx] = list.Abs(p)
		// X[site] - X[neighbour_a] == -R(p), since R(p) is the
		// displacement from site to neighbour a.
		var zero nlist.Vec3[T]
		s.edgeVec[idx] = zero.Sub(list.R(p))
		s.edgeFrom[idx] = site
		s.edgeTo[idx] = list.J(p)
		idx++
	}
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			ra := list.R(start + combo[a])
			rb := list.R(start + combo[b])
			d := ra.Sub(rb)
			s.edges[idx] = norm(d)
			s.edgeVec[idx] = d
			s.edgeFrom[idx] = list.J(start + combo[a])
			s.edgeTo[idx] = list.J(start + combo[b])
			idx++
		}
	}
}

func norm[T nlist.Float](v nlist.Vec3[T]) T {
	return T(math.Sqrt(float64(v.Dot(v))))
}
