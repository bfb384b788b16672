package vertex

import (
	"testing"

	"github.com/swrast/swrast/internal/parallel"
)

func TestBinAssignsOverlappingBands(t *testing.T) {
	prims := []Primitive{{RowStart: 0, RowEnd: 5}, {RowStart: 8, RowEnd: 12}}
	bands := []parallel.Band{{Start: 0, End: 10}, {Start: 10, End: 20}}

	bins := Bin(prims, bands)
	if len(bins) != 2 {
		t.Fatalf("len(bins) = %d, want 2", len(bins))
	}
	if len(bins[0]) != 2 {
		t.Fatalf("band 0 got %d primitives, want 2 (both overlap rows 0-10)", len(bins[0]))
	}
	if len(bins[1]) != 1 {
		t.Fatalf("band 1 got %d primitives, want 1", len(bins[1]))
	}
}

func TestBinEmptyInputs(t *testing.T) {
	if bins := Bin(nil, []parallel.Band{{Start: 0, End: 4}}); len(bins) != 1 || len(bins[0]) != 0 {
		t.Fatalf("expected one empty bin, got %v", bins)
	}
}
