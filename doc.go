// Package swrast implements a CPU-only software rasterizer: a
// fixed-function vertex/fragment pipeline (vertex fetch, shading,
// clipping, culling, perspective-correct rasterization, depth test,
// blending) driven entirely by host-supplied shader function values,
// with draw/blit/clear work spread across a fixed worker pool.
//
// # Quick start
//
//	ctx := swrast.NewContext()
//	defer ctx.Close()
//
//	fb := ctx.ReserveFramebuffer()
//	ctx.ReserveColorBuffers(fb, 1)
//	col, _ := ctx.ReserveTexture(swrast.TextureDesc{
//		Width: 256, Height: 256, Depth: 1,
//		Format: swrast.FormatRGBA8, Wrap: swrast.WrapClamp,
//	})
//	ctx.AttachColorBuffer(fb, 0, col)
//
//	vbo, _ := ctx.ReserveVertexBuffer(3 * 3 * 4) // 3 verts x (x,y,z) x float32
//	// ... write positions, build a VAO bound to vbo ...
//
//	shader := ctx.ReserveShader(passthroughVertex, redFragment, 0, 1)
//	ctx.Draw(swrast.DrawCall{
//		VAO: vao, Shader: shader, Mode: swrast.RenderTriangles,
//		ElementBegin: 0, ElementEnd: 1,
//		Framebuffer: fb, Viewport: swrast.Rect{W: 256, H: 256},
//		Scissor: swrast.DefaultViewport(),
//	})
//
// # Architecture
//
// The public API (this package) is a handle-based facade: Context owns
// nine freelist-addressed resource vectors (textures, vertex buffers,
// index buffers, vertex arrays, uniform buffers, framebuffers, shader
// programs, raster states, and the worker pool) and every mutating call
// takes or returns an opaque handle rather than a pointer, so resources
// can be freed and their slots reused without invalidating other
// handles.
//
// Internally the pipeline is layered:
//   - internal/color: pixel formats, casts, HSV/HSL/YCoCg conversions.
//   - internal/texture: texel storage (linear or Z-ordered), sampling.
//   - internal/vertmath: the float32 vector toolkit clip-space math needs.
//   - internal/vertex: the vertex processor (fetch, shade, clip, cull, bin).
//   - internal/raster: the rasterizer (scan conversion, depth test, blend).
//   - internal/blend: the fixed set of blend equations.
//   - internal/rstate: the small enums/packed bits raster state shares
//     between the vertex and fragment stages.
//   - internal/parallel: the worker pool and its per-phase barrier.
//   - internal/handle: the generic freelist slot vector Context is built from.
//
// # Coordinate system
//
// Clip space follows the standard right-handed convention (x right, y
// up, z into the screen after perspective divide). The viewport mapping
// keeps the direction of y: NDC y=-1 lands on texture row Viewport.Y and
// y increases with the row index. BlitToSurface flips rows vertically
// when it copies into a top-to-bottom surface.
package swrast
