package nstat

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/nlist"
)

// Histogram is a normalizable count histogram over a fixed set of bin
// dividers, in the spirit of this codebase's histogram Data type but
// pared down to the one thing nstat needs: binning pair distances.
type Histogram struct {
	normalized bool
	total      int
	dividers   []float64
	counts     []float64
}

// NewHistogram builds an empty histogram over the given dividers (must be
// strictly increasing, length >= 2).
func NewHistogram(dividers []float64) *Histogram {
	d := make([]float64, len(dividers))
	copy(d, dividers)
	return &Histogram{dividers: d, counts: make([]float64, len(d)-1)}
}

// PairDistanceHistogram bins the distance of every unordered pair (i < j)
// in list into the given dividers.
func PairDistanceHistogram[T nlist.Float, I nlist.Int](list *nlist.PairList[T, I], dividers []float64) *Histogram {
	samples := make([]float64, 0, list.Len()/2)
	for k := 0; k < list.Len(); k++ {
		if list.I(k) >= list.J(k) {
			continue
		}
		samples = append(samples, float64(list.Abs(k)))
	}
	h := NewHistogram(dividers)
	h.rehisto(samples)
	return h
}

// rehisto replaces the histogram's counts from rawdata, discarding values
// outside [dividers[0], dividers[len(dividers)-1]) the same way
// stat.Histogram would otherwise panic on them.
func (h *Histogram) rehisto(rawdata []float64) {
	sort.Float64s(rawdata)
	lo := h.dividers[0]
	hi := h.dividers[len(h.dividers)-1]
	start := sort.SearchFloat64s(rawdata, lo)
	end := sort.SearchFloat64s(rawdata, hi)
	rawdata = rawdata[start:end]
	h.total = len(rawdata)
	h.counts = stat.Histogram(nil, h.dividers, rawdata, nil)
}

// Normalize scales counts so they sum to 1.
func (h *Histogram) Normalize() {
	if h.normalized || h.total <= 0 {
		return
	}
	floats.Scale(1/float64(h.total), h.counts)
	h.normalized = true
}

// UnNormalize restores raw counts.
func (h *Histogram) UnNormalize() {
	if !h.normalized {
		return
	}
	floats.Scale(float64(h.total), h.counts)
	h.normalized = false
}

// Counts returns the bin counts (or frequencies, if Normalize was
// called).
func (h *Histogram) Counts() []float64 { return h.counts }

// Dividers returns the bin edges, length len(Counts())+1.
func (h *Histogram) Dividers() []float64 { return h.dividers }

// Sum returns the sum of the current counts.
func (h *Histogram) Sum() float64 { return floats.Sum(h.counts) }

func (h *Histogram) String() string {
	bins := make([]string, len(h.counts))
	vals := make([]string, len(h.counts))
	for i, c := range h.counts {
		bins[i] = fmt.Sprintf("%6.3f-%6.3f", h.dividers[i], h.dividers[i+1])
		vals[i] = fmt.Sprintf("%9.3f", c)
	}
	return fmt.Sprintf("total: %d\n%s\n%s", h.total, strings.Join(bins, " "), strings.Join(vals, " "))
}

// SiteStats mirrors nlist.PairList.Stats, exposed here so callers that
// only import nstat (not the root package directly) get the same
// neighbour-count summary.
func SiteStats[T nlist.Float, I nlist.Int](list *nlist.PairList[T, I]) nlist.SiteStats {
	return list.Stats()
}
