package swrast

import (
	"fmt"

	"github.com/swrast/swrast/internal/raster"
	"github.com/swrast/swrast/internal/rerr"
	"github.com/swrast/swrast/internal/vertex"
)

// ShaderHandle names a registered shader program: a paired vertex and
// fragment function value plus their declared varying/output counts
// (spec §4.6's "Shader program": "two function values (vertex +
// fragment), each declaring..."). Cull mode, depth test/mask, and
// blend mode — the fields the spec's Shader-program bullet and its
// Raster-state bullet both list — live on the RasterStateHandle a
// DrawCall references instead of being duplicated here: the source
// packs them into one state word regardless of which struct nominally
// declares them, and a single home avoids two copies drifting apart
// (an Open Question resolution, see DESIGN.md).
type ShaderHandle uint32

// VertexParam is the host vertex shader's entry parameter: a fetch
// helper bound to the active vertex array/uniform buffer, the vertex
// and instance IDs, and the slice to write varyings into (spec §4.7).
type VertexParam = vertex.VertexParam

// VertexFunc is the host vertex shader signature: `fn(param) -> Vec4`
// (spec §4.7), returning clip-space position.
type VertexFunc = vertex.ShaderFunc

// FragmentParam is the host fragment shader's entry parameter (spec
// §4.7).
type FragmentParam = raster.FragmentParam

// FragmentFunc is the host fragment shader signature: `fn(param) ->
// bool` (spec §4.7); returning false discards the fragment.
type FragmentFunc = raster.FragmentShaderFunc

// shader is the context-owned storage behind a ShaderHandle.
type shader struct {
	vertFn      VertexFunc
	fragFn      FragmentFunc
	numVaryings int
	numOutputs  int
	ubo         UniformBufferHandle
	hasUBO      bool
}

// ReserveShader registers a paired vertex/fragment shader program,
// declaring the varying count passed between stages and the color
// output count the fragment stage writes (spec §4.7).
func (c *Context) ReserveShader(vertFn VertexFunc, fragFn FragmentFunc, numVaryings, numOutputs int) ShaderHandle {
	slot := c.shaders.Alloc(&shader{vertFn: vertFn, fragFn: fragFn, numVaryings: numVaryings, numOutputs: numOutputs})
	return ShaderHandle(slot)
}

// DestroyShader frees a shader program's slot.
func (c *Context) DestroyShader(h ShaderHandle) { c.shaders.Free(uint32(h)) }

// SetShaderUniformBuffer binds the uniform buffer a shader program
// reads from (spec §9: "the shader stores the handle, the context owns
// the storage").
func (c *Context) SetShaderUniformBuffer(h ShaderHandle, ubo UniformBufferHandle) error {
	s, ok := c.shaders.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid shader handle", rerr.ErrInvalidHandle)
	}
	s.ubo, s.hasUBO = ubo, true
	return nil
}
