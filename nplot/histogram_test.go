package nplot

import (
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/rmera/nlist"
)

func orthoCell(a, b, c float64) nlist.Cell[float64] {
	return nlist.Cell[float64]{
		{X: a, Y: 0, Z: 0},
		{X: 0, Y: b, Z: 0},
		{X: 0, Y: 0, Z: c},
	}
}

func TestPairDistancePlotWritesFile(t *testing.T) {
	cell := orthoCell(10, 10, 10)
	positions := []nlist.Vec3[float64]{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0},
	}
	pl, err := nlist.Build[float64, int32](cell, nlist.Pbc{}, positions, 2.5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	out := filepath.Join(t.TempDir(), "hist.png")
	if err := PairDistancePlot[float64, int32](pl, 5, "pair distances", 4*vg.Inch, 4*vg.Inch, out); err != nil {
		t.Fatalf("PairDistancePlot: %v", err)
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty output file, stat err: %v", err)
	}
}
