package swrast

import (
	"fmt"

	"github.com/swrast/swrast/internal/rerr"
)

// VertexBufferHandle names a raw byte-addressable vertex buffer (spec
// §4.3).
type VertexBufferHandle uint32

// IndexBufferHandle names an index buffer; reads always widen to u32
// regardless of storage width (spec §4.3).
type IndexBufferHandle uint32

// vbo is the context-owned storage behind a VertexBufferHandle: a plain
// byte slice, since vertex attribute fetch (internal/vertex.VAO.Binding)
// works directly on raw bytes at an offset/stride.
type vbo struct {
	data []byte
}

// ReserveVertexBuffer allocates size bytes of vertex storage and returns
// its handle.
func (c *Context) ReserveVertexBuffer(size int) (VertexBufferHandle, error) {
	if size <= 0 {
		return 0, fmt.Errorf("%w: vertex buffer size must be positive", rerr.ErrInvalidArgument)
	}
	slot := c.vbos.Alloc(&vbo{data: make([]byte, size)})
	return VertexBufferHandle(slot), nil
}

// DestroyVertexBuffer frees a vertex buffer's slot.
func (c *Context) DestroyVertexBuffer(h VertexBufferHandle) { c.vbos.Free(uint32(h)) }

// WriteVertexBuffer copies src into the buffer at byteOffset.
func (c *Context) WriteVertexBuffer(h VertexBufferHandle, byteOffset int, src []byte) error {
	b, ok := c.vbos.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid vertex buffer handle", rerr.ErrInvalidHandle)
	}
	copy(b.data[byteOffset:], src)
	return nil
}

// VertexBufferBytes returns the raw backing slice of a vertex buffer,
// for callers that want to build vertex data in place.
func (c *Context) VertexBufferBytes(h VertexBufferHandle) ([]byte, bool) {
	b, ok := c.vbos.Get(uint32(h))
	if !ok {
		return nil, false
	}
	return b.data, true
}

// IndexComponentType selects an index buffer's storage width (spec
// §4.3).
type IndexComponentType uint8

const (
	IndexU8 IndexComponentType = iota
	IndexU16
	IndexU32
)

// ibo is the context-owned storage behind an IndexBufferHandle.
type ibo struct {
	data []byte
	typ  IndexComponentType
	n    int
}

// ReserveIndexBuffer allocates an index buffer holding n indices of the
// given storage width.
func (c *Context) ReserveIndexBuffer(n int, typ IndexComponentType) (IndexBufferHandle, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: index buffer count must be positive", rerr.ErrInvalidArgument)
	}
	width := indexWidth(typ)
	slot := c.ibos.Alloc(&ibo{data: make([]byte, n*width), typ: typ, n: n})
	return IndexBufferHandle(slot), nil
}

// DestroyIndexBuffer frees an index buffer's slot.
func (c *Context) DestroyIndexBuffer(h IndexBufferHandle) { c.ibos.Free(uint32(h)) }

// WriteIndexBuffer writes indices (widened as needed) starting at index
// offset i.
func (c *Context) WriteIndexBuffer(h IndexBufferHandle, i int, indices []uint32) error {
	b, ok := c.ibos.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid index buffer handle", rerr.ErrInvalidHandle)
	}
	width := indexWidth(b.typ)
	for k, v := range indices {
		off := (i + k) * width
		switch b.typ {
		case IndexU8:
			b.data[off] = byte(v)
		case IndexU16:
			b.data[off], b.data[off+1] = byte(v), byte(v>>8)
		default:
			b.data[off] = byte(v)
			b.data[off+1] = byte(v >> 8)
			b.data[off+2] = byte(v >> 16)
			b.data[off+3] = byte(v >> 24)
		}
	}
	return nil
}

func indexWidth(typ IndexComponentType) int {
	switch typ {
	case IndexU8:
		return 1
	case IndexU16:
		return 2
	default:
		return 4
	}
}

// indexSource adapts an *ibo to internal/vertex.IndexSource, widening
// every read to u32 per spec §4.3.
type indexSource struct{ b *ibo }

func (s indexSource) Len() int { return s.b.n }

func (s indexSource) Index(i int) uint32 {
	off := i * indexWidth(s.b.typ)
	switch s.b.typ {
	case IndexU8:
		return uint32(s.b.data[off])
	case IndexU16:
		return uint32(s.b.data[off]) | uint32(s.b.data[off+1])<<8
	default:
		return uint32(s.b.data[off]) | uint32(s.b.data[off+1])<<8 |
			uint32(s.b.data[off+2])<<16 | uint32(s.b.data[off+3])<<24
	}
}
