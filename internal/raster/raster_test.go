package raster

import (
	"testing"

	"github.com/swrast/swrast/internal/blend"
	"github.com/swrast/swrast/internal/color"
	"github.com/swrast/swrast/internal/rstate"
	"github.com/swrast/swrast/internal/texture"
	"github.com/swrast/swrast/internal/vertex"
	"github.com/swrast/swrast/internal/vertmath"
)

var blendOffSlice = []blend.Mode{blend.Off}

func newColorTarget(t *testing.T, w, h uint16, clear [4]float64) *texture.Texture {
	t.Helper()
	tex := &texture.Texture{}
	if err := tex.Init(w, h, 1, color.RGBA8, texture.WrapClamp, texture.OrderLinear); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for y := uint32(0); y < uint32(h); y++ {
		for x := uint32(0); x < uint32(w); x++ {
			tex.SetTexel(x, y, 0, clear)
		}
	}
	return tex
}

// TestSingleOpaqueTriangle is spec §8 scenario 1.
func TestSingleOpaqueTriangle(t *testing.T) {
	fb := newColorTarget(t, 4, 4, [4]float64{0, 0, 0, 1})
	view := texture.ViewOf(fb)

	prim := vertex.Primitive{
		Kind: 3,
		Screen: [3]vertmath.Vec3{
			{X: 0, Y: 4, Z: 0}, // NDC (-1,1) -> screen (0,4) with a 4x4 viewport
			{X: 4, Y: 4, Z: 0}, // NDC (1,1)  -> screen (4,4)
			{X: 2, Y: 0, Z: 0}, // NDC (0,-1) -> screen (2,0)
		},
		InvW:     [3]float32{1, 1, 1},
		Varyings: [3][]vertmath.Vec4{{}, {}, {}},
	}

	redShader := func(p *FragmentParam) bool {
		p.Outputs[0] = vertmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}
		return true
	}

	job := Job{
		Prims:      []vertex.Primitive{prim},
		Shader:     redShader,
		NumOutputs: 1,
		Target: Target{
			Color:      []Attachment{view},
			BlendModes: blendOffSlice,
		},
		Viewport: rstate.Rect{X: 0, Y: 0, W: 4, H: 4},
		Scissor:  rstate.DefaultViewport(),
		Band:     Band{Start: 0, End: 4},
	}
	Run(job)

	// At least the triangle's centroid-ish pixel must be red.
	got := fb.Texel(2, 2, 0)
	want := [4]float64{1, 0, 0, 1}
	if got != want {
		t.Fatalf("centroid pixel = %v, want %v", got, want)
	}
	// A corner clearly outside the triangle stays the clear color.
	if got := fb.Texel(0, 0, 0); got != ([4]float64{0, 0, 0, 1}) {
		t.Fatalf("corner pixel = %v, want clear color", got)
	}
}

// TestDepthTestRejectsFartherFragment is grounded on spec §8 scenario 2
// (depth LESS-EQUAL rejects a fragment behind what's already buffered).
func TestDepthTestRejectsFartherFragment(t *testing.T) {
	fb := newColorTarget(t, 2, 2, [4]float64{0, 0, 0, 1})
	view := texture.ViewOf(fb)

	depthTex := &texture.Texture{}
	if err := depthTex.Init(2, 2, 1, color.RF32, texture.WrapClamp, texture.OrderLinear); err != nil {
		t.Fatal(err)
	}
	for y := uint32(0); y < 2; y++ {
		for x := uint32(0); x < 2; x++ {
			depthTex.SetTexel(x, y, 0, [4]float64{0.2, 0, 0, 0}) // near value already buffered
		}
	}
	depthView := texture.ViewOf(depthTex)

	farTri := vertex.Primitive{
		Kind:     3,
		Screen:   [3]vertmath.Vec3{{X: 0, Y: 2, Z: 0.9}, {X: 2, Y: 2, Z: 0.9}, {X: 1, Y: 0, Z: 0.9}},
		InvW:     [3]float32{1, 1, 1},
		Varyings: [3][]vertmath.Vec4{{}, {}, {}},
	}

	greenShader := func(p *FragmentParam) bool {
		p.Outputs[0] = vertmath.Vec4{X: 0, Y: 1, Z: 0, W: 1}
		return true
	}

	job := Job{
		Prims:      []vertex.Primitive{farTri},
		Shader:     greenShader,
		NumOutputs: 1,
		Target: Target{
			Color:      []Attachment{view},
			BlendModes: blendOffSlice,
			Depth:      depthView,
			DepthTest:  rstate.DepthLessEqual,
			DepthMask:  true,
		},
		Viewport: rstate.Rect{X: 0, Y: 0, W: 2, H: 2},
		Scissor:  rstate.DefaultViewport(),
		Band:     Band{Start: 0, End: 2},
	}
	Run(job)

	// z=0.9 fails LESS-EQUAL against the buffered 0.2: the fragment must
	// not reach the shader or overwrite the clear color.
	got := fb.Texel(1, 1, 0)
	if got != ([4]float64{0, 0, 0, 1}) {
		t.Fatalf("depth-rejected pixel = %v, want clear color", got)
	}
}

func TestDiscardSkipsColorAndDepthWrite(t *testing.T) {
	fb := newColorTarget(t, 1, 1, [4]float64{0.2, 0.2, 0.2, 1})
	view := texture.ViewOf(fb)

	depthTex := &texture.Texture{}
	if err := depthTex.Init(1, 1, 1, color.RF32, texture.WrapClamp, texture.OrderLinear); err != nil {
		t.Fatal(err)
	}
	depthTex.SetTexel(0, 0, 0, [4]float64{1, 0, 0, 0})

	prim := vertex.Primitive{
		Kind:     3,
		Screen:   [3]vertmath.Vec3{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0.5, Y: 0, Z: 0}},
		InvW:     [3]float32{1, 1, 1},
		Varyings: [3][]vertmath.Vec4{{}, {}, {}},
	}

	discardShader := func(p *FragmentParam) bool { return false }

	job := Job{
		Prims:      []vertex.Primitive{prim},
		Shader:     discardShader,
		NumOutputs: 1,
		Target: Target{
			Color:      []Attachment{view},
			BlendModes: blendOffSlice,
			Depth:      texture.ViewOf(depthTex),
			DepthTest:  rstate.DepthLessEqual,
			DepthMask:  true,
		},
		Viewport: rstate.Rect{X: 0, Y: 0, W: 1, H: 1},
		Scissor:  rstate.DefaultViewport(),
		Band:     Band{Start: 0, End: 1},
	}
	Run(job)

	if got := fb.Texel(0, 0, 0); got != ([4]float64{0.2, 0.2, 0.2, 1}) {
		t.Fatalf("discarded fragment wrote color, got %v", got)
	}
	if got := depthTex.Texel(0, 0, 0)[0]; got != 1 {
		t.Fatalf("discarded fragment wrote depth, got %v", got)
	}
}
