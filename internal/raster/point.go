package raster

import (
	"github.com/swrast/swrast/internal/rstate"
	"github.com/swrast/swrast/internal/vertex"
)

// rasterPoint writes the single pixel a point primitive covers, through
// the same depth-test/shade/blend stage as triangles and lines.
func rasterPoint(prim vertex.Primitive, job Job, clip rstate.Rect) {
	s := prim.Screen[0]
	x, y := int(s.X), int(s.Y)
	if !pointInClipAndBand(x, y, clip, job.Band) {
		return
	}
	shadeFragment(job, uint16(x), uint16(y), 1, 0, 0, prim.InvW, prim)
}
