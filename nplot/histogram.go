package nplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/nlist"
)

// basicHistPlot returns a titled, labelled plot ready for a histogram
// plotter to be added to it.
func basicHistPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "pair distance"
	p.Y.Label.Text = "count"
	return p
}

// PairDistancePlot draws a histogram of every unordered pair's distance
// in list, binned into n bins by plotter.NewHist, and saves it as a
// w x h image to filename (format inferred from its extension).
func PairDistancePlot[T nlist.Float, I nlist.Int](list *nlist.PairList[T, I], n int, title string, w, h vg.Length, filename string) error {
	values := make(plotter.Values, 0, list.Len()/2)
	for k := 0; k < list.Len(); k++ {
		if list.I(k) >= list.J(k) {
			continue
		}
		values = append(values, float64(list.Abs(k)))
	}

	p := basicHistPlot(title)
	hist, err := plotter.NewHist(values, n)
	if err != nil {
		return err
	}
	p.Add(hist)
	return p.Save(w, h, filename)
}
