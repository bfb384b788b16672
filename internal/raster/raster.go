// Package raster implements the rasterizer (spec §4.9): edge-function
// triangle scan conversion, perspective-correct varying interpolation,
// depth test/write, fragment shader dispatch, blending, and
// multi-attachment writes, plus shared line/point raster paths.
//
// The incremental edge-function stepping (triangle.go: precompute a
// slope, step it per scanline rather than recomputing from scratch) is
// adapted from 2D path scanline conversion to the classic triangle
// edge-function test (Pineda's algorithm). The depth-test, shade,
// deferred-depth-write, blend, multi-attachment-write ordering matches
// original_source/softlight/include/softlight/SL_Context.hpp's draw()
// stage sequence.
package raster

import (
	"github.com/swrast/swrast/internal/blend"
	"github.com/swrast/swrast/internal/rstate"
	"github.com/swrast/swrast/internal/vertex"
	"github.com/swrast/swrast/internal/vertmath"
)

// Attachment is a framebuffer-bound texture view: every method it needs
// is already implemented by internal/texture.View, so Views satisfy this
// interface with no adapter.
type Attachment interface {
	Width() uint16
	Height() uint16
	Texel(x, y, z uint32) [4]float64
	SetTexel(x, y, z uint32, c [4]float64)
}

// FragmentParam is the fragment shader's entry parameter (spec §4.7).
type FragmentParam struct {
	X, Y       uint16
	Z, W       float32
	UBO        vertex.UBO
	VaryingsIn []vertmath.Vec4
	Outputs    []vertmath.Vec4
}

// FragmentShaderFunc is the host fragment shader function value (spec
// §4.7): returns false to discard.
type FragmentShaderFunc func(param *FragmentParam) bool

// Target bundles everything one draw call rasterizes into.
type Target struct {
	Color      []Attachment // one per color slot; nil entries are unbound
	BlendModes []blend.Mode // parallel to Color
	Depth      Attachment   // nil if no depth attachment bound
	DepthTest  rstate.DepthTest
	DepthMask  bool
}

// Band is a half-open scanline range, mirroring internal/parallel.Band
// without importing internal/parallel: this package is dispatched BY
// the scheduler, so depending back on it would be a needless cycle risk
// and couples two packages that don't need to know about each other.
type Band struct{ Start, End int }

// Job holds the per-band rasterization inputs for one worker.
type Job struct {
	Prims      []vertex.Primitive
	Shader     FragmentShaderFunc
	UBO        vertex.UBO
	NumOutputs int
	Target     Target
	Viewport   rstate.Rect
	Scissor    rstate.Rect
	Band       Band
}

// Run rasterizes every primitive in the job, restricted to rows the job
// owns, and returns after every fragment has been tested, shaded, and
// (if not discarded/depth-failed) written.
func Run(job Job) {
	clip := intersectRect(job.Viewport, job.Scissor)
	for _, prim := range job.Prims {
		switch prim.Kind {
		case 3:
			rasterTriangle(prim, job, clip)
		case 2:
			rasterLine(prim, job, clip)
		case 1:
			rasterPoint(prim, job, clip)
		}
	}
}

func intersectRect(a, b rstate.Rect) rstate.Rect {
	x0 := maxU16(a.X, b.X)
	y0 := maxU16(a.Y, b.Y)
	x1 := minU16(a.X+a.W, b.X+b.W)
	y1 := minU16(a.Y+a.H, b.Y+b.H)
	if x1 < x0 || y1 < y0 {
		return rstate.Rect{}
	}
	return rstate.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func maxU16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}

func minU16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}
