// Package vertex implements the vertex processor (spec §4.8): per-draw
// vertex fetch, vertex shading, primitive assembly, Sutherland-Hodgman
// clipping, back-face culling, perspective divide/viewport mapping, and
// scanline binning.
//
// Its incremental, allocation-light processing loop follows an
// active-edge-table style adapted from 2D path scanline conversion to
// 3D triangle assembly (see DESIGN.md), and on
// original_source/softlight/include/softlight/SL_Context.hpp's draw()
// for the exact stage ordering (assemble, clip, cull, divide, bin).
package vertex

import (
	"encoding/binary"
	"math"

	"github.com/swrast/swrast/internal/vertmath"
)

// ComponentType is a VAO binding's scalar element type (spec §4.4).
type ComponentType uint8

const (
	ComponentF32 ComponentType = iota
	ComponentU32
	ComponentU16
	ComponentU8
)

// RenderMode selects primitive assembly (spec §4.8).
type RenderMode uint8

const (
	ModePoints RenderMode = iota
	ModeLines
	ModeTriangles
	ModeWireTriangles
)

// VAO is everything the vertex processor needs from a bound vertex
// array: its binding table and optional index buffer.
type VAO interface {
	NumBindings() int
	Binding(slot int) (vbo []byte, offset, stride, components int, typ ComponentType, ok bool)
	IndexBuffer() (ibo IndexSource, ok bool)
}

// IndexSource returns vertex indices regardless of storage width (spec
// §4.3: "reads return u32 regardless of storage width").
type IndexSource interface {
	Len() int
	Index(i int) uint32
}

// UBO is the opaque 1024-byte uniform arena (spec §4.3).
type UBO interface {
	Bytes() []byte
}

// VertexParam is the vertex shader's entry parameter (spec §4.7).
type VertexParam struct {
	VAO         VAO
	UBO         UBO
	VertID      uint32
	InstanceID  uint32
	VaryingsOut []vertmath.Vec4
}

// ShaderFunc is the host vertex shader function value (spec §4.7):
// returns clip-space position, writing varyings into param.VaryingsOut.
type ShaderFunc func(param *VertexParam) vertmath.Vec4

// Vertex is one shaded, not-yet-clipped vertex: clip-space position plus
// its varyings.
type Vertex struct {
	Clip     vertmath.Vec4
	Varyings []vertmath.Vec4
}

// Lerp linearly interpolates a vertex (used by clipping, spec §4.8 step 4).
func (v Vertex) Lerp(o Vertex, t float32) Vertex {
	out := Vertex{Clip: v.Clip.Lerp(o.Clip, t), Varyings: make([]vertmath.Vec4, len(v.Varyings))}
	for i := range out.Varyings {
		out.Varyings[i] = v.Varyings[i].Lerp(o.Varyings[i], t)
	}
	return out
}

// fetchComponent reads one float32 component out of a raw VBO byte
// slice at byteOffset, widening integer storage types to float.
func fetchComponent(vbo []byte, byteOffset int, typ ComponentType) float32 {
	switch typ {
	case ComponentF32:
		return float32FromBytes(vbo, byteOffset)
	case ComponentU32:
		return float32(uint32FromBytes(vbo, byteOffset))
	case ComponentU16:
		return float32(uint16(vbo[byteOffset]) | uint16(vbo[byteOffset+1])<<8)
	default: // ComponentU8
		return float32(vbo[byteOffset])
	}
}

func uint32FromBytes(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

func float32FromBytes(b []byte, off int) float32 {
	return math.Float32frombits(uint32FromBytes(b, off))
}
