/*nlistdemo builds a neighbour list over a random cubic
configuration and prints a summary of it, exercising nlist.Build and the
nstat package end to end. With -gonum, the cell and positions are
assembled as gonum matrices and handed to nlist.Build through the v3
package instead of built as nlist.Vec3 values by hand. With -plot, it
also writes a pair-distance histogram figure through nplot.*/
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	"gonum.org/v1/plot/vg"

	"github.com/rmera/nlist"
	"github.com/rmera/nlist/nplot"
	"github.com/rmera/nlist/nstat"
	"github.com/rmera/nlist/v3"
)

func main() {
	n := flag.Int("n", 500, "number of particles")
	box := flag.Float64("box", 10, "cubic cell edge length")
	cutoff := flag.Float64("cutoff", 1.5, "neighbour cutoff")
	periodic := flag.Bool("pbc", true, "periodic boundary conditions on all three axes")
	threads := flag.Int("threads", 0, "max worker threads (0 = runtime.NumCPU())")
	seed := flag.Int64("seed", 1, "random seed")
	useGonum := flag.Bool("gonum", false, "assemble the cell and positions as gonum matrices via the v3 package")
	plotOut := flag.String("plot", "", "write a pair-distance histogram figure to this path (extension picks the format, e.g. .svg, .png)")
	flag.Parse()

	if *threads > 0 {
		nlist.SetMaxThreads(*threads)
	}

	rng := rand.New(rand.NewSource(*seed))

	var cell nlist.Cell[float64]
	var positions []nlist.Vec3[float64]
	if *useGonum {
		cellData := []float64{
			*box, 0, 0,
			0, *box, 0,
			0, 0, *box,
		}
		cellMat, err := v3.NewMatrix(cellData)
		if err != nil {
			log.Fatalf("nlistdemo: v3.NewMatrix(cell): %v", err)
		}
		cell, err = v3.CellFromDense(cellMat)
		if err != nil {
			log.Fatalf("nlistdemo: v3.CellFromDense: %v", err)
		}

		posData := make([]float64, *n*3)
		for i := range posData {
			posData[i] = rng.Float64() * *box
		}
		posMat, err := v3.NewMatrix(posData)
		if err != nil {
			log.Fatalf("nlistdemo: v3.NewMatrix(positions): %v", err)
		}
		positions = v3.PositionsFromDense(posMat)
	} else {
		cell = nlist.Cell[float64]{
			{X: *box, Y: 0, Z: 0},
			{X: 0, Y: *box, Z: 0},
			{X: 0, Y: 0, Z: *box},
		}
		positions = make([]nlist.Vec3[float64], *n)
		for i := range positions {
			positions[i] = nlist.Vec3[float64]{
				X: rng.Float64() * *box,
				Y: rng.Float64() * *box,
				Z: rng.Float64() * *box,
			}
		}
	}
	pbc := nlist.Pbc{*periodic, *periodic, *periodic}

	pl, err := nlist.Build[float64, int32](cell, pbc, positions, *cutoff)
	if err != nil {
		log.Fatalf("nlistdemo: build failed: %v", err)
	}

	stats := pl.Stats()
	fmt.Printf("particles: %d\n", *n)
	fmt.Printf("pair records: %d\n", pl.Len())
	fmt.Printf("mean neighbours/site: %.3f  variance: %.3f\n", stats.Mean, stats.Variance)

	dividers := make([]float64, 21)
	for i := range dividers {
		dividers[i] = *cutoff * float64(i) / 20
	}
	hist := nstat.PairDistanceHistogram[float64, int32](pl, dividers)
	fmt.Println(hist)

	if *plotOut != "" {
		if err := nplot.PairDistancePlot[float64, int32](pl, 20, "pair distances", 6*vg.Inch, 4*vg.Inch, *plotOut); err != nil {
			log.Fatalf("nlistdemo: PairDistancePlot: %v", err)
		}
		fmt.Printf("wrote pair-distance plot to %s\n", *plotOut)
	}
}
