package swrast

import (
	"context"
	"runtime"

	"github.com/swrast/swrast/internal/color"
	"github.com/swrast/swrast/internal/handle"
	"github.com/swrast/swrast/internal/parallel"
	"github.com/swrast/swrast/internal/raster"
	"github.com/swrast/swrast/internal/texture"
	"github.com/swrast/swrast/internal/vertex"
)

// PresentableSurface is the window-surface collaborator a blit can
// target (spec §6): a BGRA8, top-to-bottom pixel buffer the host owns.
type PresentableSurface interface {
	Width() int
	Height() int
	Stride() int
	Pixels() []byte
}

// Context owns the nine handle-addressed resource vectors the rendering
// core is built from — textures, vertex buffers, index buffers, vertex
// arrays, uniform buffers, framebuffers, shader programs, raster
// states, and the worker pool — and orchestrates draw/blit/clear calls
// by dispatching work to the pool (spec §4.11). The zero value is not
// usable; construct with NewContext.
type Context struct {
	textures     handle.Pool[*texture.Texture]
	vbos         handle.Pool[*vbo]
	ibos         handle.Pool[*ibo]
	vaos         handle.Pool[*vao]
	ubos         handle.Pool[*ubo]
	framebuffers handle.Pool[*framebuffer]
	shaders      handle.Pool[*shader]
	rasterStates handle.Pool[*rasterState]

	pool *parallel.ProcessorPool
}

// NewContext constructs a Context. By default the worker pool is sized
// to runtime.GOMAXPROCS(0) (spec §4.11 num_threads default); use
// WithNumThreads to override.
func NewContext(opts ...ContextOption) *Context {
	o := defaultContextOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Context{pool: parallel.NewProcessorPool(o.numThreads)}
}

// Close shuts down the Context's worker pool. A Context must not be
// used after Close.
func (c *Context) Close() { c.pool.Close() }

// NumThreads reports the worker pool's size (spec §4.11 num_threads()).
func (c *Context) NumThreads() int { return c.pool.NumThreads() }

// ContextOption configures a Context during construction.
type ContextOption func(*contextOptions)

type contextOptions struct {
	numThreads int
}

func defaultContextOptions() contextOptions {
	return contextOptions{numThreads: runtime.GOMAXPROCS(0)}
}

// WithNumThreads sets the worker pool size. n<=0 selects GOMAXPROCS.
func WithNumThreads(n int) ContextOption {
	return func(o *contextOptions) { o.numThreads = n }
}

// Draw executes one draw call: vertex processing (fetch, shade,
// assemble, clip, cull, perspective-divide) followed by
// rasterization (scan conversion, depth test, fragment shading, blend,
// attachment write), spread across the worker pool in two barriered
// phases (spec §4.8, §4.9, §5).
func (c *Context) Draw(dc DrawCall) {
	v, ok := c.vaos.Get(uint32(dc.VAO))
	if !ok {
		return
	}
	sh, ok := c.shaders.Get(uint32(dc.Shader))
	if !ok {
		return
	}
	fb, ok := c.framebuffers.Get(uint32(dc.Framebuffer))
	if !ok || !fb.valid() {
		return
	}
	rs, ok := c.rasterStates.Get(uint32(dc.RasterState))
	if !ok {
		rs = &rasterState{state: DefaultRasterState()}
	}

	var ubo vertex.UBO
	if sh.hasUBO {
		ubo, _ = c.uniformBuffer(sh.ubo)
	}

	instances := dc.InstanceCount
	if instances == 0 {
		instances = 1
	}

	for inst := uint32(0); inst < instances; inst++ {
		c.drawOne(dc, v, sh, fb, rs, ubo, inst)
	}
}

// DrawMultiple issues each call in calls in order (spec §4.11
// draw_multiple), sharing nothing across calls beyond ordinary
// cross-draw visibility (spec §5: a completion barrier separates every
// draw from the next).
func (c *Context) DrawMultiple(calls []DrawCall) {
	for _, dc := range calls {
		c.Draw(dc)
	}
}

// DrawInstanced is DrawMultiple's single-call, n-instance shorthand
// (spec §4.11 draw_instanced): equivalent to setting dc.InstanceCount.
func (c *Context) DrawInstanced(dc DrawCall, n uint32) {
	dc.InstanceCount = n
	c.Draw(dc)
}

func (c *Context) drawOne(dc DrawCall, v *vao, sh *shader, fb *framebuffer, rs *rasterState, ubo vertex.UBO, instance uint32) {
	params := vertex.Params{
		Shader:       sh.vertFn,
		VAO:          v,
		UBO:          ubo,
		NumVaryings:  sh.numVaryings,
		Mode:         dc.Mode,
		ElementBegin: dc.ElementBegin,
		ElementEnd:   dc.ElementEnd,
		InstanceID:   instance,
		Cull:         rs.state.Cull,
		Viewport:     dc.Viewport,
	}

	nJobs := c.pool.NumThreads()
	primCount := dc.ElementEnd - dc.ElementBegin
	vertBands := parallel.RowBands(primCount, nJobs)

	var prims []vertex.Primitive
	if len(vertBands) <= 1 {
		prims = vertex.Process(params, nil)
	} else {
		partials := make([][]vertex.Primitive, len(vertBands))
		jobs := make([]func(ctx context.Context) error, len(vertBands))
		for i, band := range vertBands {
			i, band := i, band
			jobs[i] = func(context.Context) error {
				p := params
				p.ElementBegin, p.ElementEnd = dc.ElementBegin+band.Start, dc.ElementBegin+band.End
				partials[i] = vertex.Process(p, nil)
				return nil
			}
		}
		_ = c.pool.DispatchVertex(context.Background(), jobs)
		for _, part := range partials {
			prims = append(prims, part...)
		}
	}
	if len(prims) == 0 {
		return
	}

	rowBands := parallel.RowBands(int(fb.height()), nJobs)
	target := raster.Target{
		Color:      fb.colorAttachments(),
		BlendModes: rs.state.BlendModes,
		Depth:      fb.depthAttachment(),
		DepthTest:  rs.state.DepthTest,
		DepthMask:  rs.state.DepthMask,
	}

	jobs := make([]func(ctx context.Context) error, 0, len(rowBands))
	for _, band := range rowBands {
		band := band
		jobs = append(jobs, func(context.Context) error {
			raster.Run(raster.Job{
				Prims:      prims,
				Shader:     sh.fragFn,
				UBO:        ubo,
				NumOutputs: sh.numOutputs,
				Target:     target,
				Viewport:   dc.Viewport,
				Scissor:    dc.Scissor,
				Band:       raster.Band{Start: band.Start, End: band.End},
			})
			return nil
		})
	}
	_ = c.pool.DispatchFragment(context.Background(), jobs)
}

// ClearColorBuffer fills one framebuffer color attachment with col,
// partitioning the texel range across the worker pool (spec §4.10).
func (c *Context) ClearColorBuffer(h FramebufferHandle, slot int, col Color) {
	fb, ok := c.framebuffers.Get(uint32(h))
	if !ok || slot < 0 || slot >= len(fb.color) || !fb.color[slot].IsValid() {
		return
	}
	c.clearAttachment(fb.color[slot], col.array())
}

// ClearDepthBuffer fills a framebuffer's depth attachment with a depth
// value.
func (c *Context) ClearDepthBuffer(h FramebufferHandle, depth float64) {
	fb, ok := c.framebuffers.Get(uint32(h))
	if !ok || !fb.hasDepth {
		return
	}
	c.clearAttachment(fb.depth, [4]float64{depth, 0, 0, 0})
}

// ClearFramebuffer clears several color slots (each to its own color)
// and optionally the depth attachment, in one vectorized call (spec
// §4.11).
func (c *Context) ClearFramebuffer(h FramebufferHandle, slots []int, colors []Color, clearDepth bool, depth float64) {
	for i, slot := range slots {
		if i < len(colors) {
			c.ClearColorBuffer(h, slot, colors[i])
		}
	}
	if clearDepth {
		c.ClearDepthBuffer(h, depth)
	}
}

func (c *Context) clearAttachment(view texture.View, col [4]float64) {
	h := int(view.Height())
	ranges := parallel.TexelRanges(h, c.pool.NumThreads())
	jobs := make([]func(ctx context.Context) error, 0, len(ranges))
	w := uint32(view.Width())
	d := uint32(view.Depth())
	for _, r := range ranges {
		r := r
		jobs = append(jobs, func(context.Context) error {
			for y := uint32(r.Start); y < uint32(r.End); y++ {
				for x := uint32(0); x < w; x++ {
					for z := uint32(0); z < d; z++ {
						view.SetTexel(x, y, z, col)
					}
				}
			}
			return nil
		})
	}
	_ = c.pool.DispatchClear(context.Background(), jobs)
}

// BlitTexture copies src into dst, nearest-neighbor rescaling if the
// rectangles differ in size, without vertical flip (spec §4.10:
// texture-to-texture blits never flip).
func (c *Context) BlitTexture(dst, src TextureHandle) {
	dstTex, ok := c.texture(dst)
	if !ok {
		return
	}
	srcTex, ok := c.texture(src)
	if !ok {
		return
	}
	c.blitInto(dstTex.Width(), dstTex.Height(), dstTex.Format(),
		func(x, y uint32, v [4]float64) { dstTex.SetTexel(x, y, 0, v) },
		srcTex.Width(), srcTex.Height(),
		func(x, y uint32) [4]float64 { return srcTex.Texel(x, y, 0) },
		false)
}

// BlitToSurface samples src and writes it into a presentable surface as
// BGRA8, flipping scanlines vertically to match the window-surface
// convention (spec §4.10, §6).
func (c *Context) BlitToSurface(dst PresentableSurface, src TextureHandle) {
	srcTex, ok := c.texture(src)
	if !ok {
		return
	}
	w, h, stride := dst.Width(), dst.Height(), dst.Stride()
	pixels := dst.Pixels()
	bgra8 := color.New(4, color.ComponentU8)
	writeBGRA := func(x, y uint32, v [4]float64) {
		off := int(y)*stride + int(x)*4
		raw := pixels[off : off+4]
		// BGRA8: blue in byte 0, alpha in byte 3 (spec §6).
		raw[0] = toByte(v[2])
		raw[1] = toByte(v[1])
		raw[2] = toByte(v[0])
		raw[3] = toByte(v[3])
	}
	c.blitInto(uint16(w), uint16(h), bgra8,
		writeBGRA,
		srcTex.Width(), srcTex.Height(),
		func(x, y uint32) [4]float64 { return srcTex.Texel(x, y, 0) },
		true)
}

func toByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

// blitInto implements spec §4.10's nearest-neighbor rescale, sharing
// the row-band partitioning the rasterizer and clear use. flipVertical
// maps destination row y to source row srcH-1-y's worth of content
// (spec: "flip vertically when writing to a window surface").
func (c *Context) blitInto(dstW, dstH uint16, dstFormat color.Format, write func(x, y uint32, v [4]float64), srcW, srcH uint16, read func(x, y uint32) [4]float64, flipVertical bool) {
	ranges := parallel.TexelRanges(int(dstH), c.pool.NumThreads())
	jobs := make([]func(ctx context.Context) error, 0, len(ranges))
	for _, r := range ranges {
		r := r
		jobs = append(jobs, func(context.Context) error {
			for dy := r.Start; dy < r.End; dy++ {
				sy := uint32(texture.BlitSourceCoord(dy, int(srcH), int(dstH)))
				if sy >= uint32(srcH) {
					sy = uint32(srcH) - 1
				}
				outY := uint32(dy)
				if flipVertical {
					outY = uint32(dstH) - 1 - uint32(dy)
				}
				for dx := 0; dx < int(dstW); dx++ {
					sx := uint32(texture.BlitSourceCoord(dx, int(srcW), int(dstW)))
					if sx >= uint32(srcW) {
						sx = uint32(srcW) - 1
					}
					write(uint32(dx), outY, read(sx, sy))
				}
			}
			return nil
		})
	}
	_ = c.pool.DispatchBlit(context.Background(), jobs)
}
