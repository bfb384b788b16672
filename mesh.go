package swrast

import "github.com/swrast/swrast/internal/vertex"

// RenderMode selects how a draw call's vertices are assembled into
// primitives (spec §4.8).
type RenderMode = vertex.RenderMode

const (
	RenderPoints        = vertex.ModePoints
	RenderLines          = vertex.ModeLines
	RenderTriangles      = vertex.ModeTriangles
	RenderWireTriangles  = vertex.ModeWireTriangles
)

// DrawCall describes one draw's inputs (spec §4.8, §4.11): the bound
// vertex array and shaders, the uniform buffer both stages read, the
// assembly mode, the primitive range to process, and the raster state
// and target it rasterizes into.
type DrawCall struct {
	VAO    VertexArrayHandle
	Shader ShaderHandle
	Mode   RenderMode

	// ElementBegin/ElementEnd select a [begin,end) range of primitives
	// (not raw vertices) to process; a full-mesh draw passes
	// [0, primitive_count).
	ElementBegin, ElementEnd int

	// InstanceCount repeats the draw with instance_id = 0..InstanceCount-1
	// (spec §4.8's instanced-draw supplement); 0 or 1 means a single,
	// non-instanced draw.
	InstanceCount uint32

	RasterState RasterStateHandle
	Framebuffer FramebufferHandle
	Viewport    Rect
	Scissor     Rect
}
