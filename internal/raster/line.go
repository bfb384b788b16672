package raster

import (
	"github.com/swrast/swrast/internal/rstate"
	"github.com/swrast/swrast/internal/vertex"
)

// rasterLine walks a 2-vertex primitive with a DDA (Bresenham-style)
// stepper, sharing the same depth-test/shade/blend stage as triangles
// (spec §4.9, final paragraph).
func rasterLine(prim vertex.Primitive, job Job, clip rstate.Rect) {
	a, c := prim.Screen[0], prim.Screen[1]
	dx := c.X - a.X
	dy := c.Y - a.Y

	steps := absf(dx)
	if absf(dy) > steps {
		steps = absf(dy)
	}
	if steps < 1 {
		steps = 1
	}

	xInc := dx / steps
	yInc := dy / steps

	x, y := a.X, a.Y
	n := int(steps)
	for i := 0; i <= n; i++ {
		t := float32(i) / steps
		px, py := int(x), int(y)
		if pointInClipAndBand(px, py, clip, job.Band) {
			b0, b1 := 1-t, t
			shadeFragment(job, uint16(px), uint16(py), b0, b1, 0, prim.InvW, prim)
		}
		x += xInc
		y += yInc
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func pointInClipAndBand(x, y int, clip rstate.Rect, band Band) bool {
	if x < int(clip.X) || y < int(clip.Y) {
		return false
	}
	if x >= int(clip.X)+int(clip.W) || y >= int(clip.Y)+int(clip.H) {
		return false
	}
	return y >= band.Start && y < band.End
}
