package vertex

import "github.com/swrast/swrast/internal/parallel"

// Bin assigns each primitive to the worker whose row band its
// RowStart/RowEnd range overlaps (spec §4.8 step 7: "append the
// assembled triangle to the per-worker bin, indexed by the contiguous
// band of raster rows it overlaps"). A primitive spanning multiple
// workers' bands is appended to every band it overlaps — each worker's
// rasterizer later clips to its own band regardless, so duplication here
// costs one slice append, not incorrect output.
func Bin(prims []Primitive, bands []parallel.Band) [][]Primitive {
	bins := make([][]Primitive, len(bands))
	for _, prim := range prims {
		for i, band := range bands {
			if prim.RowStart < band.End && prim.RowEnd >= band.Start {
				bins[i] = append(bins[i], prim)
			}
		}
	}
	return bins
}
