package reduce

import (
	"github.com/rmera/nlist"
	"github.com/rmera/nlist/nbody"
)

// PairValueKernel computes a scalar contribution from one pair record's
// distance and displacement vector.
type PairValueKernel[T nlist.Float] func(abs T, r nlist.Vec3[T]) T

// PairGradKernel computes a vector contribution from one pair record.
type PairGradKernel[T nlist.Float] func(abs T, r nlist.Vec3[T]) nlist.Vec3[T]

// TupleValueKernel computes a scalar contribution from an n-body tuple's
// edge-length vector.
type TupleValueKernel[T nlist.Float] func(edges []T) T

// TupleGradKernel computes the derivative of a scalar tuple function with
// respect to each of its N(N-1)/2 edge lengths.
type TupleGradKernel[T nlist.Float] func(edges []T) []T

// MapToSites is the pair-symmetric value form: for every unordered pair
// (i, j) within cutoff, f(|r|, r_vec)/2 is added to both out[i] and
// out[j].
func MapToSites[T nlist.Float, I nlist.Int](list *nlist.PairList[T, I], f PairValueKernel[T]) []T {
	n := list.NumSites()
	return run[T](list.Len(), n, func(buf []T, k int) {
		i, j := list.I(k), list.J(k)
		if i >= j {
			return
		}
		half := f(list.Abs(k), list.R(k)) / 2
		buf[i] += half
		buf[j] += half
	}, addScalars[T])
}

// MapToSitesGrad is the pair-antisymmetric gradient form: for every
// unordered pair (i, j) within cutoff, f(|r|, r_vec) is added to out[j]
// and subtracted from out[i].
func MapToSitesGrad[T nlist.Float, I nlist.Int](list *nlist.PairList[T, I], f PairGradKernel[T]) []nlist.Vec3[T] {
	n := list.NumSites()
	return run[nlist.Vec3[T]](list.Len(), n, func(buf []nlist.Vec3[T], k int) {
		i, j := list.I(k), list.J(k)
		if i >= j {
			return
		}
		v := f(list.Abs(k), list.R(k))
		buf[j] = buf[j].Add(v)
		buf[i] = buf[i].Sub(v)
	}, addVectors[T])
}

// MapTuplesToSites is the n-body value form: for every canonical tuple
// rooted at i with neighbours j_1..j_{N-1}, f(edges)/N is added to out[i]
// and to each out[j_k].
func MapTuplesToSites[T nlist.Float, I nlist.Int](e *nbody.Enumerator[T, I], f TupleValueKernel[T]) []T {
	n := e.NumSites()
	order := T(e.Order())
	return run[T](n, n, func(buf []T, i int) {
		e.ForSite(i, func(t nbody.Tuple[T, I]) {
			share := f(t.Edges) / order
			buf[t.Site] += share
			for _, j := range t.Neighbors {
				buf[j] += share
			}
		})
	}, addScalars[T])
}

// MapTuplesToSitesGrad is the n-body gradient form: for each canonical
// tuple, df(edges) gives the derivative with respect to each edge length;
// for edge l with unit vector Ŝ = EdgeVec[l]/Edges[l], df[l]*Ŝ is added
// to out[EdgeFrom[l]] and subtracted from out[EdgeTo[l]].
func MapTuplesToSitesGrad[T nlist.Float, I nlist.Int](e *nbody.Enumerator[T, I], df TupleGradKernel[T]) []nlist.Vec3[T] {
	n := e.NumSites()
	return run[nlist.Vec3[T]](n, n, func(buf []nlist.Vec3[T], i int) {
		e.ForSite(i, func(t nbody.Tuple[T, I]) {
			d := df(t.Edges)
			for l := range d {
				unit := t.EdgeVec[l].Scale(1 / t.Edges[l])
				contrib := unit.Scale(d[l])
				buf[t.EdgeFrom[l]] = buf[t.EdgeFrom[l]].Add(contrib)
				buf[t.EdgeTo[l]] = buf[t.EdgeTo[l]].Sub(contrib)
			}
		})
	}, addVectors[T])
}

func addScalars[T nlist.Float](dst, src []T) {
	for i := range dst {
		dst[i] += src[i]
	}
}

func addVectors[T nlist.Float](dst, src []nlist.Vec3[T]) {
	for i := range dst {
		dst[i] = dst[i].Add(src[i])
	}
}
