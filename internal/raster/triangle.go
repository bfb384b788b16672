package raster

import (
	"github.com/swrast/swrast/internal/blend"
	"github.com/swrast/swrast/internal/rstate"
	"github.com/swrast/swrast/internal/vertex"
	"github.com/swrast/swrast/internal/vertmath"
)

// rasterTriangle scan-converts one screen-space triangle via incremental
// edge functions (spec §4.9). Each edge function is affine in (x,y), so
// rather than recomputing the three edge tests from scratch at every
// pixel, this precomputes each one's per-pixel and per-scanline step and
// walks the bounding box by repeated addition, the same "precompute a
// slope, step it" shape a 2D scanline rasterizer applies to its edge
// list (see DESIGN.md).
func rasterTriangle(prim vertex.Primitive, job Job, clip rstate.Rect) {
	a, b, c := prim.Screen[0], prim.Screen[1], prim.Screen[2]

	area := edgeFunction(a, b, c)
	if area == 0 {
		return // degenerate triangle
	}

	minX, minY, maxX, maxY := triangleBounds(a, b, c)
	minX, minY, maxX, maxY = clampBoundsToClipAndBand(minX, minY, maxX, maxY, clip, job.Band)
	if minX > maxX || minY > maxY {
		return
	}

	invArea := 1 / area
	invW := prim.InvW

	e0 := newEdgeStepper(b, c, minX, minY)
	e1 := newEdgeStepper(c, a, minX, minY)
	e2 := newEdgeStepper(a, b, minX, minY)

	for y := minY; y <= maxY; y++ {
		w0row, w1row, w2row := e0.row, e1.row, e2.row

		for x := minX; x <= maxX; x++ {
			w0, w1, w2 := e0.row, e1.row, e2.row

			// Inside iff all three barycentric edge values share area's sign.
			if sameSign(w0, area) && sameSign(w1, area) && sameSign(w2, area) {
				b0, b1, b2 := w0*invArea, w1*invArea, w2*invArea
				shadeFragment(job, uint16(x), uint16(y), b0, b1, b2, invW, prim)
			}

			e0.stepX()
			e1.stepX()
			e2.stepX()
		}

		e0.row, e1.row, e2.row = w0row, w1row, w2row
		e0.stepY()
		e1.stepY()
		e2.stepY()
	}
}

// edgeStepper holds one triangle edge function's current value plus its
// constant per-x and per-y steps, so each scanline starts from the prior
// row's leftmost value plus one y-step instead of a fresh evaluation.
type edgeStepper struct {
	row     float32 // value at the current (x, rowStart) pixel
	stepXBy float32
	stepYBy float32
}

func newEdgeStepper(a, b vertmath.Vec3, startX, startY int) edgeStepper {
	// edgeFunction(a, b, p) = (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
	// is affine in p, with constant partials dStep/dx = (b.Y-a.Y) and
	// dStep/dy = -(b.X-a.X).
	dx := b.Y - a.Y
	dy := -(b.X - a.X)
	p0 := vertmath.Vec3{X: float32(startX) + 0.5, Y: float32(startY) + 0.5}
	return edgeStepper{
		row:     edgeFunction(a, b, p0),
		stepXBy: dx,
		stepYBy: dy,
	}
}

func (e *edgeStepper) stepX() { e.row += e.stepXBy }
func (e *edgeStepper) stepY() { e.row += e.stepYBy }

func edgeFunction(a, b, p vertmath.Vec3) float32 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

func sameSign(v, ref float32) bool {
	if ref >= 0 {
		return v >= 0
	}
	return v <= 0
}

func triangleBounds(a, b, c vertmath.Vec3) (minX, minY, maxX, maxY int) {
	minXf := minOf3(a.X, b.X, c.X)
	minYf := minOf3(a.Y, b.Y, c.Y)
	maxXf := maxOf3(a.X, b.X, c.X)
	maxYf := maxOf3(a.Y, b.Y, c.Y)
	return int(minXf), int(minYf), int(maxXf) + 1, int(maxYf) + 1
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampBoundsToClipAndBand(minX, minY, maxX, maxY int, clip rstate.Rect, band Band) (int, int, int, int) {
	if minX < int(clip.X) {
		minX = int(clip.X)
	}
	if minY < int(clip.Y) {
		minY = int(clip.Y)
	}
	if cx := int(clip.X) + int(clip.W) - 1; maxX > cx {
		maxX = cx
	}
	if cy := int(clip.Y) + int(clip.H) - 1; maxY > cy {
		maxY = cy
	}
	if minY < band.Start {
		minY = band.Start
	}
	if maxY > band.End-1 {
		maxY = band.End - 1
	}
	return minX, minY, maxX, maxY
}

// shadeFragment implements spec §4.9's depth-test, fragment-shade,
// (deferred) depth-write, blend, multi-attachment-write sequence for one
// covered pixel, given its barycentric weights.
func shadeFragment(job Job, x, y uint16, b0, b1, b2 float32, invW [3]float32, prim vertex.Primitive) {
	// Depth is interpolated linearly in screen space, NOT perspective
	// corrected (spec §4.9).
	zFrag := float64(b0*prim.Screen[0].Z + b1*prim.Screen[1].Z + b2*prim.Screen[2].Z)

	var zBuf float64
	depthOK := true
	if job.Target.Depth != nil {
		zBuf = job.Target.Depth.Texel(uint32(x), uint32(y), 0)[0]
		depthOK = job.Target.DepthTest.Passes(zFrag, zBuf)
	}
	if !depthOK {
		return
	}

	// Perspective-correct varying interpolation: Σ b_i·(V_i/w_i) / Σ b_i·(1/w_i).
	// prim.Kind bounds how many of the three (Screen/Varyings/InvW)
	// slots are meaningful: triangles use all 3, lines 2, points 1.
	weights := [3]float32{b0, b1, b2}
	numVaryings := 0
	if prim.Kind > 0 && len(prim.Varyings[0]) > 0 {
		numVaryings = len(prim.Varyings[0])
	}
	wSum := float32(0)
	for i := 0; i < prim.Kind; i++ {
		wSum += weights[i] * invW[i]
	}
	varyings := make([]vertmath.Vec4, numVaryings)
	for i := 0; i < numVaryings; i++ {
		var acc vertmath.Vec4
		for k := 0; k < prim.Kind; k++ {
			acc = acc.Add(prim.Varyings[k][i].Scale(invW[k] * weights[k]))
		}
		varyings[i] = acc.Scale(1 / wSum)
	}

	outputs := make([]vertmath.Vec4, job.NumOutputs)
	param := FragmentParam{
		X: x, Y: y,
		Z:          float32(zFrag),
		W:          1 / wSum,
		UBO:        job.UBO,
		VaryingsIn: varyings,
		Outputs:    outputs,
	}

	keep := job.Shader(&param)
	if !keep {
		return // discard: no color or depth write (spec §4.9, deferred depth write)
	}

	if job.Target.Depth != nil && job.Target.DepthMask {
		job.Target.Depth.SetTexel(uint32(x), uint32(y), 0, [4]float64{zFrag, 0, 0, 0})
	}

	for slot, attach := range job.Target.Color {
		if attach == nil || slot >= len(outputs) {
			continue
		}
		src := [4]float64{float64(outputs[slot].X), float64(outputs[slot].Y), float64(outputs[slot].Z), float64(outputs[slot].W)}
		mode := blend.Off
		if slot < len(job.Target.BlendModes) {
			mode = job.Target.BlendModes[slot]
		}
		dst := attach.Texel(uint32(x), uint32(y), 0)
		attach.SetTexel(uint32(x), uint32(y), 0, blend.Apply(mode, src, dst))
	}
}
