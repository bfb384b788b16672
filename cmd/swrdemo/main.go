// Command swrdemo runs the single-opaque-triangle scenario end to end
// and prints the resulting framebuffer as ASCII, the way a headless
// smoke test for the rendering core would.
package main

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/swrast/swrast"
	"github.com/swrast/swrast/internal/vertmath"
)

func main() {
	ctx := swrast.NewContext()
	defer ctx.Close()

	const w, h = 4, 4
	fb := ctx.ReserveFramebuffer()
	if err := ctx.ReserveColorBuffers(fb, 1); err != nil {
		panic(err)
	}
	colorTex, err := ctx.ReserveTexture(swrast.TextureDesc{
		Width: w, Height: h, Depth: 1,
		Format: swrast.FormatRGBA8,
		Wrap:   swrast.WrapClamp,
		Order:  swrast.OrderLinear,
	})
	if err != nil {
		panic(err)
	}
	if err := ctx.AttachColorBuffer(fb, 0, colorTex); err != nil {
		panic(err)
	}
	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			if err := ctx.SetTexel(colorTex, x, y, 0, swrast.Color{A: 1}); err != nil {
				panic(err)
			}
		}
	}

	vbo, err := ctx.ReserveVertexBuffer(3 * 3 * 4)
	if err != nil {
		panic(err)
	}
	positions := []float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}
	raw := make([]byte, len(positions)*4)
	for i, f := range positions {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(f))
	}
	if err := ctx.WriteVertexBuffer(vbo, 0, raw); err != nil {
		panic(err)
	}

	vao := ctx.ReserveVertexArray()
	if err := ctx.SetVertexBuffer(vao, vbo); err != nil {
		panic(err)
	}
	if err := ctx.SetNumBindings(vao, 1); err != nil {
		panic(err)
	}
	if err := ctx.SetBinding(vao, 0, 0, 12, 3, swrast.ComponentF32); err != nil {
		panic(err)
	}

	rs := ctx.ReserveRasterState(swrast.RasterState{
		Cull:       swrast.CullNone,
		DepthTest:  swrast.DepthOff,
		DepthMask:  false,
		BlendModes: []swrast.BlendMode{swrast.BlendOff},
	})

	shader := ctx.ReserveShader(passthroughVertex, redFragment, 0, 1)

	ctx.Draw(swrast.DrawCall{
		VAO:          vao,
		Shader:       shader,
		Mode:         swrast.RenderTriangles,
		ElementBegin: 0,
		ElementEnd:   1,
		RasterState:  rs,
		Framebuffer:  fb,
		Viewport:     swrast.Rect{X: 0, Y: 0, W: w, H: h},
		Scissor:      swrast.DefaultViewport(),
	})

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			c := ctx.Texel(colorTex, x, y, 0)
			if c.R > 0.5 {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
}

// passthroughVertex reads the bound binding 0 as a 3-component position
// and forwards it unchanged as clip space (w=1), matching spec §8
// scenario 1's "pass-through vertex shader".
func passthroughVertex(p *swrast.VertexParam) vertmath.Vec4 {
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

// redFragment always outputs opaque red, matching spec §8 scenario 1.
func redFragment(p *swrast.FragmentParam) bool {
	p.Outputs[0] = vertmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}
	return true
}
