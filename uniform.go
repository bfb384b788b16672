package swrast

import (
	"fmt"

	"github.com/swrast/swrast/internal/rerr"
	"github.com/swrast/swrast/internal/vertex"
)

// UniformBufferHandle names a fixed-size uniform arena bound to a
// shader (spec §4.3, §9: the context owns the storage, the shader just
// holds the handle).
type UniformBufferHandle uint32

// uniformBufferSize is the fixed uniform arena size (spec §4.3).
const uniformBufferSize = 1024

// ubo is the context-owned storage behind a UniformBufferHandle.
type ubo struct {
	data [uniformBufferSize]byte
}

// Bytes implements internal/vertex.UBO.
func (u *ubo) Bytes() []byte { return u.data[:] }

var _ vertex.UBO = (*ubo)(nil)

// ReserveUniformBuffer allocates a new, zeroed 1024-byte uniform arena.
func (c *Context) ReserveUniformBuffer() UniformBufferHandle {
	slot := c.ubos.Alloc(&ubo{})
	return UniformBufferHandle(slot)
}

// DestroyUniformBuffer frees a uniform buffer's slot.
func (c *Context) DestroyUniformBuffer(h UniformBufferHandle) { c.ubos.Free(uint32(h)) }

// WriteUniformBuffer copies src into the arena at byteOffset. Writes
// past the 1024-byte arena are silently truncated to the available
// space (spec §4.3 fixes the arena size; callers are responsible for
// staying within it).
func (c *Context) WriteUniformBuffer(h UniformBufferHandle, byteOffset int, src []byte) error {
	u, ok := c.ubos.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid uniform buffer handle", rerr.ErrInvalidHandle)
	}
	if byteOffset >= uniformBufferSize {
		return nil
	}
	copy(u.data[byteOffset:], src)
	return nil
}

// UniformBufferBytes returns the raw 1024-byte arena for direct reads
// from a host shader.
func (c *Context) UniformBufferBytes(h UniformBufferHandle) ([]byte, bool) {
	u, ok := c.ubos.Get(uint32(h))
	if !ok {
		return nil, false
	}
	return u.Bytes(), true
}

func (c *Context) uniformBuffer(h UniformBufferHandle) (vertex.UBO, bool) {
	u, ok := c.ubos.Get(uint32(h))
	if !ok {
		return nil, false
	}
	return u, true
}
