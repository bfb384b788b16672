package parallel

import "testing"

func TestRowBandsCoversFullRangeDisjointly(t *testing.T) {
	bands := RowBands(37, 4)
	if len(bands) == 0 {
		t.Fatal("expected at least one band")
	}

	covered := make([]bool, 37)
	for _, b := range bands {
		for y := b.Start; y < b.End; y++ {
			if covered[y] {
				t.Fatalf("row %d covered by more than one band", y)
			}
			covered[y] = true
		}
	}
	for y, ok := range covered {
		if !ok {
			t.Fatalf("row %d not covered by any band", y)
		}
	}
}

func TestRowBandsFewerRowsThanWorkers(t *testing.T) {
	bands := RowBands(2, 8)
	if len(bands) != 2 {
		t.Fatalf("len(bands) = %d, want 2", len(bands))
	}
}

func TestRowBandsZeroRows(t *testing.T) {
	if bands := RowBands(0, 4); bands != nil {
		t.Fatalf("expected nil bands for zero rows, got %v", bands)
	}
}

func TestBandContains(t *testing.T) {
	b := Band{Start: 10, End: 20}
	if !b.Contains(10) || !b.Contains(19) {
		t.Fatal("expected band to contain its boundary rows")
	}
	if b.Contains(20) || b.Contains(9) {
		t.Fatal("band incorrectly contains out-of-range row")
	}
	if b.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", b.Len())
	}
}
