package swrast

import (
	"fmt"

	"github.com/swrast/swrast/internal/rerr"
	"github.com/swrast/swrast/internal/vertex"
)

// VertexArrayHandle names a bound-attribute vertex array object (spec
// §4.4).
type VertexArrayHandle uint32

// ComponentType is a vertex attribute binding's scalar storage type
// (spec §4.4).
type ComponentType = vertex.ComponentType

const (
	ComponentF32 = vertex.ComponentF32
	ComponentU32 = vertex.ComponentU32
	ComponentU16 = vertex.ComponentU16
	ComponentU8  = vertex.ComponentU8
)

// binding is one {vbo, offset, stride, components, type} entry (spec
// §4.4). All bindings in a vao reference the same vbo, matching the
// source's one-vbo-per-VAO invariant.
type binding struct {
	offset, stride, components int
	typ                        ComponentType
	bound                      bool
}

// vao is the context-owned storage behind a VertexArrayHandle.
type vao struct {
	ctx      *Context
	vbo      VertexBufferHandle
	hasVBO   bool
	ibo      IndexBufferHandle
	hasIBO   bool
	bindings []binding
}

// ReserveVertexArray allocates a new, empty vertex array and returns its
// handle.
func (c *Context) ReserveVertexArray() VertexArrayHandle {
	slot := c.vaos.Alloc(&vao{ctx: c})
	return VertexArrayHandle(slot)
}

// DestroyVertexArray frees a vertex array's slot.
func (c *Context) DestroyVertexArray(h VertexArrayHandle) { c.vaos.Free(uint32(h)) }

// SetVertexBuffer binds the vbo every subsequent binding slot reads
// from (spec §4.4).
func (c *Context) SetVertexBuffer(h VertexArrayHandle, vbo VertexBufferHandle) error {
	v, ok := c.vaos.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid vertex array handle", rerr.ErrInvalidHandle)
	}
	v.vbo, v.hasVBO = vbo, true
	return nil
}

// SetIndexBuffer binds the optional index buffer.
func (c *Context) SetIndexBuffer(h VertexArrayHandle, ibo IndexBufferHandle) error {
	v, ok := c.vaos.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid vertex array handle", rerr.ErrInvalidHandle)
	}
	v.ibo, v.hasIBO = ibo, true
	return nil
}

// SetNumBindings allocates n attribute binding slots (spec §4.4).
func (c *Context) SetNumBindings(h VertexArrayHandle, n int) error {
	v, ok := c.vaos.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid vertex array handle", rerr.ErrInvalidHandle)
	}
	v.bindings = make([]binding, n)
	return nil
}

// SetBinding configures binding slot, the absolute byte offset, stride,
// component count (1..4), and component type (spec §4.4).
func (c *Context) SetBinding(h VertexArrayHandle, slot, offset, stride, components int, typ ComponentType) error {
	v, ok := c.vaos.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid vertex array handle", rerr.ErrInvalidHandle)
	}
	if slot < 0 || slot >= len(v.bindings) {
		return fmt.Errorf("%w: binding slot out of range", rerr.ErrInvalidArgument)
	}
	if components < 1 || components > 4 {
		return fmt.Errorf("%w: components must be in 1..4", rerr.ErrInvalidArgument)
	}
	v.bindings[slot] = binding{offset: offset, stride: stride, components: components, typ: typ, bound: true}
	return nil
}

// NumBindings implements internal/vertex.VAO.
func (v *vao) NumBindings() int { return len(v.bindings) }

// Binding implements internal/vertex.VAO: returns the bound vbo's raw
// bytes along with the slot's layout.
func (v *vao) Binding(slot int) (data []byte, offset, stride, components int, typ vertex.ComponentType, ok bool) {
	if slot < 0 || slot >= len(v.bindings) || !v.bindings[slot].bound || !v.hasVBO {
		return nil, 0, 0, 0, 0, false
	}
	data, bufOK := v.ctx.VertexBufferBytes(v.vbo)
	if !bufOK {
		return nil, 0, 0, 0, 0, false
	}
	b := v.bindings[slot]
	return data, b.offset, b.stride, b.components, b.typ, true
}

// IndexBuffer implements internal/vertex.VAO.
func (v *vao) IndexBuffer() (vertex.IndexSource, bool) {
	if !v.hasIBO {
		return nil, false
	}
	b, ok := v.ctx.ibos.Get(uint32(v.ibo))
	if !ok {
		return nil, false
	}
	return indexSource{b: b}, true
}

// Offset computes the absolute byte offset into the bound vbo for
// (slot, vertexID) (spec §4.4).
func (v *vao) Offset(slot int, vertexID uint32) int {
	b := v.bindings[slot]
	return b.offset + b.stride*int(vertexID)
}
