package nlist

import (
	"math"
	"testing"
)

func orthoCell(a, b, c float64) Cell[float64] {
	return Cell[float64]{
		{X: a, Y: 0, Z: 0},
		{X: 0, Y: b, Z: 0},
		{X: 0, Y: 0, Z: c},
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Scenario 1: two particles, open boundaries, one pair each direction.
func TestBuildTwoParticlesOpen(t *testing.T) {
	cell := orthoCell(10, 10, 10)
	pbc := Pbc{false, false, false}
	positions := []Vec3[float64]{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
	}
	pl, err := Build[float64, int32](cell, pbc, positions, 1.5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pl.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", pl.Len())
	}
	for k := 0; k < pl.Len(); k++ {
		rec := pl.At(k)
		if !almostEqual(float64(rec.Abs), 1.0, 1e-12) {
			t.Errorf("record %d: expected |r|=1, got %v", k, rec.Abs)
		}
		if rec.Shift != (Shift3[int32]{}) {
			t.Errorf("record %d: expected zero shift, got %+v", k, rec.Shift)
		}
	}
}

// Scenario 2: one particle, fully periodic small cell, 6 self-images.
func TestBuildSingleParticlePeriodicSelfImages(t *testing.T) {
	cell := orthoCell(2, 2, 2)
	pbc := Pbc{true, true, true}
	positions := []Vec3[float64]{{X: 0, Y: 0, Z: 0}}
	pl, err := Build[float64, int32](cell, pbc, positions, 2.1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pl.Len() != 6 {
		t.Fatalf("expected 6 self-image records, got %d", pl.Len())
	}
	for k := 0; k < pl.Len(); k++ {
		rec := pl.At(k)
		if rec.I != 0 || rec.J != 0 {
			t.Errorf("record %d: expected self pair, got i=%d j=%d", k, rec.I, rec.J)
		}
		if rec.Shift == (Shift3[int32]{}) {
			t.Errorf("record %d: self-image must have a nonzero shift", k)
		}
		if !almostEqual(float64(rec.Abs), 2.0, 1e-9) {
			t.Errorf("record %d: expected |r|=2, got %v", k, rec.Abs)
		}
	}
}

// Scenario 3: four particles on a unit-cell square, 2D-periodic.
func TestBuildSquareMixedPeriodicity(t *testing.T) {
	cell := orthoCell(1, 1, 10)
	pbc := Pbc{true, true, false}
	positions := []Vec3[float64]{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 0},
	}
	pl, err := Build[float64, int32](cell, pbc, positions, 1.1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for k := 0; k < pl.Len(); k++ {
		if pl.At(k).Shift.Z != 0 {
			t.Errorf("record %d: non-periodic z axis must never shift", k)
		}
	}
	// Every record must have a symmetric counterpart with negated r_vec
	// and opposite shift.
	for k := 0; k < pl.Len(); k++ {
		rec := pl.At(k)
		found := false
		for m := 0; m < pl.Len(); m++ {
			other := pl.At(m)
			if other.I == rec.J && other.J == rec.I &&
				other.Shift.X == -rec.Shift.X && other.Shift.Y == -rec.Shift.Y && other.Shift.Z == -rec.Shift.Z &&
				almostEqual(float64(other.R.X), float64(-rec.R.X), 1e-9) &&
				almostEqual(float64(other.R.Y), float64(-rec.R.Y), 1e-9) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("record %d (i=%d,j=%d,shift=%+v) has no symmetric counterpart", k, rec.I, rec.J, rec.Shift)
		}
	}
}

// Scenario 6: an oversized bin grid must fail with BinGridTooLarge.
func TestBuildBinGridTooLarge(t *testing.T) {
	cell := orthoCell(1e6, 1e6, 1e6)
	pbc := Pbc{true, true, true}
	_, err := Build[float64, int32](cell, pbc, []Vec3[float64]{{X: 0, Y: 0, Z: 0}}, 1e-3)
	if err == nil {
		t.Fatal("expected BinGridTooLarge error, got nil")
	}
	nerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if nerr.Kind() != BinGridTooLarge {
		t.Fatalf("expected BinGridTooLarge, got %v", nerr.Kind())
	}
}

func TestNewCellGeometryInvalidCutoff(t *testing.T) {
	cell := orthoCell(10, 10, 10)
	_, err := NewCellGeometry[float64, int32](cell, Pbc{}, 0)
	nerr, ok := err.(*Error)
	if !ok || nerr.Kind() != InvalidCutoff {
		t.Fatalf("expected InvalidCutoff, got %v", err)
	}
}

func TestNewCellGeometryZeroVolume(t *testing.T) {
	cell := Cell[float64]{
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	_, err := NewCellGeometry[float64, int32](cell, Pbc{}, 1.0)
	nerr, ok := err.(*Error)
	if !ok || nerr.Kind() != ZeroVolume {
		t.Fatalf("expected ZeroVolume, got %v", err)
	}
}

// Completeness + symmetry law, random configuration.
func TestBuildCompletenessAndSymmetry(t *testing.T) {
	cell := orthoCell(8, 8, 8)
	pbc := Pbc{true, true, true}
	n := 60
	positions := make([]Vec3[float64], n)
	seed := uint64(12345)
	next := func() float64 {
		seed = seed*6364136223846793005 + 1442695040888963407
		return float64(seed>>11) / float64(1<<53) * 8
	}
	for i := range positions {
		positions[i] = Vec3[float64]{X: next(), Y: next(), Z: next()}
	}
	cutoff := 2.0
	pl, err := Build[float64, int32](cell, pbc, positions, cutoff)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Brute force: for every pair and every shift in [-1,0,1]^3, check
	// membership against what Build produced.
	type key struct {
		i, j       int32
		sx, sy, sz int32
	}
	got := make(map[key]PairRecord[float64, int32], pl.Len())
	for k := 0; k < pl.Len(); k++ {
		r := pl.At(k)
		got[key{r.I, r.J, r.Shift.X, r.Shift.Y, r.Shift.Z}] = r
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for sx := -1; sx <= 1; sx++ {
				for sy := -1; sy <= 1; sy++ {
					for sz := -1; sz <= 1; sz++ {
						if i == j && sx == 0 && sy == 0 && sz == 0 {
							continue
						}
						dx := positions[j].X + float64(sx)*8 - positions[i].X
						dy := positions[j].Y + float64(sy)*8 - positions[i].Y
						dz := positions[j].Z + float64(sz)*8 - positions[i].Z
						d2 := dx*dx + dy*dy + dz*dz
						withinCutoff := d2 < cutoff*cutoff
						_, present := got[key{int32(i), int32(j), int32(sx), int32(sy), int32(sz)}]
						if withinCutoff != present {
							t.Fatalf("completeness mismatch i=%d j=%d shift=(%d,%d,%d): within=%v present=%v",
								i, j, sx, sy, sz, withinCutoff, present)
						}
					}
				}
			}
		}
	}

	for k := 0; k < pl.Len(); k++ {
		r := pl.At(k)
		rev, ok := got[key{r.J, r.I, -r.Shift.X, -r.Shift.Y, -r.Shift.Z}]
		if !ok {
			t.Fatalf("record %d (i=%d j=%d shift=%+v) has no reverse record", k, r.I, r.J, r.Shift)
		}
		if !almostEqual(float64(rev.R.X), float64(-r.R.X), 1e-9) ||
			!almostEqual(float64(rev.R.Y), float64(-r.R.Y), 1e-9) ||
			!almostEqual(float64(rev.R.Z), float64(-r.R.Z), 1e-9) {
			t.Fatalf("record %d: reverse r_vec not negated: %+v vs %+v", k, r.R, rev.R)
		}
	}
}

func TestPairListSiteSlicesCoverRecords(t *testing.T) {
	cell := orthoCell(8, 8, 8)
	pbc := Pbc{true, true, true}
	positions := []Vec3[float64]{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 4, Y: 4, Z: 4},
	}
	pl, err := Build[float64, int32](cell, pbc, positions, 1.5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	total := 0
	for i := 0; i < pl.NumSites(); i++ {
		s := pl.Site(i)
		if s.Start > s.End {
			t.Fatalf("site %d: Start > End", i)
		}
		for k := s.Start; k < s.End; k++ {
			if int(pl.I(k)) != i {
				t.Fatalf("site %d slice contains record with I=%d", i, pl.I(k))
			}
		}
		total += s.End - s.Start
	}
	if total != pl.Len() {
		t.Fatalf("site slices cover %d records, want %d", total, pl.Len())
	}
}

func TestPairListPairsIterationMatchesAt(t *testing.T) {
	cell := orthoCell(8, 8, 8)
	pbc := Pbc{true, true, true}
	positions := []Vec3[float64]{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 4, Y: 4, Z: 4},
	}
	pl, err := Build[float64, int32](cell, pbc, positions, 1.5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	k := 0
	for rec := range pl.Pairs() {
		want := pl.At(k)
		if rec != want {
			t.Fatalf("record %d: Pairs() gave %+v, At gave %+v", k, rec, want)
		}
		k++
	}
	if k != pl.Len() {
		t.Fatalf("Pairs() yielded %d records, want %d", k, pl.Len())
	}
}

func TestPairListSitesIterationMatchesSite(t *testing.T) {
	cell := orthoCell(8, 8, 8)
	pbc := Pbc{true, true, true}
	positions := []Vec3[float64]{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 4, Y: 4, Z: 4},
	}
	pl, err := Build[float64, int32](cell, pbc, positions, 1.5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	seen := 0
	for i, sv := range pl.Sites() {
		want := pl.Site(i)
		if sv.Len() != want.End-want.Start {
			t.Fatalf("site %d: SiteView.Len()=%d, want %d", i, sv.Len(), want.End-want.Start)
		}
		for k := 0; k < sv.Len(); k++ {
			if sv.At(k) != pl.At(want.Start+k) {
				t.Fatalf("site %d record %d: SiteView.At mismatch", i, k)
			}
		}
		seen++
	}
	if seen != pl.NumSites() {
		t.Fatalf("Sites() yielded %d sites, want %d", seen, pl.NumSites())
	}
}

func TestPairListPairsEarlyStop(t *testing.T) {
	cell := orthoCell(8, 8, 8)
	pbc := Pbc{true, true, true}
	positions := []Vec3[float64]{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 4, Y: 4, Z: 4},
	}
	pl, err := Build[float64, int32](cell, pbc, positions, 1.5)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	count := 0
	for range pl.Pairs() {
		count++
		if count == 1 {
			break
		}
	}
	if count != 1 {
		t.Fatalf("expected early break after 1 record, got %d", count)
	}
}
