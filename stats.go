package nlist

import "gonum.org/v1/gonum/stat"

// SiteStats summarises the per-site neighbour-count distribution of a
// built PairList.
type SiteStats struct {
	Mean     float64
	Variance float64
}

// Stats reports the mean and variance of the per-site neighbour count,
// mirroring the summary statistics this codebase's histogram packages
// compute over a sample, here applied to FirstOfSite's slice widths.
// Requires a sorted PairList.
func (pl *PairList[T, I]) Stats() SiteStats {
	first := pl.FirstOfSite()
	counts := make([]float64, pl.NumSites())
	for i := range counts {
		counts[i] = float64(first[i+1] - first[i])
	}
	mean, variance := stat.MeanVariance(counts, nil)
	return SiteStats{Mean: mean, Variance: variance}
}
