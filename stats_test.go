package nlist

import "testing"

func TestPairListStats(t *testing.T) {
	cell := orthoCell(8, 8, 8)
	positions := []Vec3[float64]{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 4, Y: 4, Z: 4},
	}
	pl, err := Build[float64, int32](cell, Pbc{true, true, true}, positions, 1.5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	stats := pl.Stats()
	if stats.Mean < 0 {
		t.Fatalf("expected non-negative mean, got %v", stats.Mean)
	}
	if stats.Variance < 0 {
		t.Fatalf("expected non-negative variance, got %v", stats.Variance)
	}
}
