package swrast

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swrast/swrast/internal/vertmath"
)

// TestDrawSingleOpaqueTriangle is spec §8 scenario 1: a 4x4 RGBA8
// framebuffer, cull off, depth off, a pass-through vertex shader, and a
// fragment shader that always writes opaque red. The texels covered by
// the triangle must come back red; everything else must keep the clear
// value.
func TestDrawSingleOpaqueTriangle(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	const w, h = 4, 4
	fb := ctx.ReserveFramebuffer()
	require.NoError(t, ctx.ReserveColorBuffers(fb, 1))
	colorTex, err := ctx.ReserveTexture(TextureDesc{
		Width: w, Height: h, Depth: 1, Format: FormatRGBA8, Wrap: WrapClamp,
	})
	require.NoError(t, err)
	require.NoError(t, ctx.AttachColorBuffer(fb, 0, colorTex))

	clear := Color{A: 1}
	ctx.ClearColorBuffer(fb, 0, clear)

	vbo, err := ctx.ReserveVertexBuffer(3 * 3 * 4)
	require.NoError(t, err)
	positions := []float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}
	raw := make([]byte, len(positions)*4)
	for i, f := range positions {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(f))
	}
	require.NoError(t, ctx.WriteVertexBuffer(vbo, 0, raw))

	vao := ctx.ReserveVertexArray()
	require.NoError(t, ctx.SetVertexBuffer(vao, vbo))
	require.NoError(t, ctx.SetNumBindings(vao, 1))
	require.NoError(t, ctx.SetBinding(vao, 0, 0, 12, 3, ComponentF32))

	rs := ctx.ReserveRasterState(RasterState{
		Cull: CullNone, DepthTest: DepthOff, DepthMask: false,
		BlendModes: []BlendMode{BlendOff},
	})
	shader := ctx.ReserveShader(testPassthroughVertex, testRedFragment, 0, 1)

	ctx.Draw(DrawCall{
		VAO: vao, Shader: shader, Mode: RenderTriangles,
		ElementBegin: 0, ElementEnd: 1,
		RasterState: rs, Framebuffer: fb,
		Viewport: Rect{X: 0, Y: 0, W: w, H: h},
		Scissor:  DefaultViewport(),
	})

	centerRed := false
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			c := ctx.Texel(colorTex, x, y, 0)
			if c.R > 0.5 {
				centerRed = true
				require.InDelta(t, 0, c.G, 1.0/255)
				require.InDelta(t, 0, c.B, 1.0/255)
				require.InDelta(t, 1, c.A, 1.0/255)
			} else {
				require.Equal(t, clear, c, "untouched texel (%d,%d) should keep the clear value", x, y)
			}
		}
	}
	require.True(t, centerRed, "expected at least one red texel inside the triangle")
}

// TestDrawUnknownHandlesAreNoOps covers spec §9's release-build contract:
// drawing with a stale/invalid handle must not panic.
func TestDrawUnknownHandlesAreNoOps(t *testing.T) {
	ctx := NewContext()
	defer ctx.Close()

	require.NotPanics(t, func() {
		ctx.Draw(DrawCall{VAO: 999, Shader: 999, Framebuffer: 999})
	})
}

func testPassthroughVertex(p *VertexParam) vertmath.Vec4 {
	data, offset, stride, _, _, ok := p.VAO.Binding(0)
	if !ok {
		return vertmath.Vec4{W: 1}
	}
	off := offset + stride*int(p.VertID)
	x := math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(data[off+4:]))
	z := math.Float32frombits(binary.LittleEndian.Uint32(data[off+8:]))
	return vertmath.Vec4{X: x, Y: y, Z: z, W: 1}
}

func testRedFragment(p *FragmentParam) bool {
	p.Outputs[0] = vertmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}
	return true
}
