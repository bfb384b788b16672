// Package texture implements the rendering core's texel storage (spec
// §3, §4.2): owned 1D/2D/3D texel arrays in linear or Z-ordered tile
// layout, wrap-mode coordinate mapping, and nearest/bilinear/trilinear
// sampling.
//
// Its owned byte slice plus width/height/stride/format, lazily-derived
// views, generalizes from a single 2D RGBA-ish buffer to an
// arbitrary-format, arbitrary-dimension, optionally-tiled texture,
// following the original C++ program's SR_Texture (its Z-order "chunk"
// mapping and fixed-point blit math, see
// original_source/soft_render/include/soft_render/SR_Texture.hpp).
package texture

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"

	"github.com/swrast/swrast/internal/color"
	"github.com/swrast/swrast/internal/rerr"
)

// WrapMode controls how out-of-[0,1] normalized coordinates are handled.
type WrapMode uint8

const (
	// WrapRepeat tiles the texture (fractional part of u).
	WrapRepeat WrapMode = iota
	// WrapCutoff returns a zero color for any sample outside [0,1]. This
	// single mode covers what the original source spells both CUTOFF and
	// BORDER in different files (spec §4.2).
	WrapCutoff
	// WrapClamp clamps to the [0,1] edge.
	WrapClamp
)

// TexelOrder selects between a simple linear layout and cache-friendly
// Z-ordered (Morton-like) tiles.
type TexelOrder uint8

const (
	OrderLinear TexelOrder = iota
	OrderSwizzled
)

// chunkSize is the edge length of one Z-order tile (spec §4.2: C=4).
const chunkSize = 4

// simdPad is the alignment padding applied to width/height so 4-/8-wide
// SIMD reads past the logical edge stay in bounds (spec §3).
const simdPad = 8

// allocAlign is the minimum byte alignment of the texel buffer (spec §3).
const allocAlign = 32

// Texture owns a heap buffer of texels addressed by an explicit coordinate
// mapping (linear or Z-ordered), with a fixed format, dimensions, wrap
// mode, and order, all chosen at allocation time.
type Texture struct {
	width, height, depth    uint16
	widthf, heightf, depthf float32

	format        color.Format
	bytesPerTexel int
	wrap          WrapMode
	order         TexelOrder

	// allocWidth/allocHeight are the SIMD-padded dimensions actually
	// backing texels; for OrderSwizzled they are additionally rounded up
	// to a multiple of chunkSize.
	allocWidth, allocHeight, allocDepth int

	texels []byte
}

// Init allocates (or re-allocates) the texture's backing storage. Calling
// Init on an already-initialized texture without Terminate is an error
// (spec §4.2): the implementation frees the previous allocation rather
// than leaking it, then reports ErrAlreadyInitialized so the caller still
// learns about the double-init.
func (t *Texture) Init(width, height, depth uint16, format color.Format, wrap WrapMode, order TexelOrder) error {
	if width == 0 || height == 0 || depth == 0 || !format.IsValid() {
		return fmt.Errorf("%w: texture dimensions and format must be non-zero/valid", rerr.ErrInvalidArgument)
	}

	alreadyInit := t.texels != nil

	t.width, t.height, t.depth = width, height, depth
	t.widthf, t.heightf, t.depthf = float32(width), float32(height), float32(depth)
	t.format = format
	t.bytesPerTexel = format.BytesPerPixel()
	t.wrap = wrap
	t.order = order

	t.allocWidth = padUp(int(width), simdPad)
	t.allocHeight = padUp(int(height), simdPad)
	t.allocDepth = int(depth)
	if order == OrderSwizzled {
		t.allocWidth = padUp(t.allocWidth, chunkSize)
		t.allocHeight = padUp(t.allocHeight, chunkSize)
		if depth > 1 {
			t.allocDepth = padUp(t.allocDepth, chunkSize)
		}
	}

	total := t.allocWidth * t.allocHeight * t.allocDepth * t.bytesPerTexel
	t.texels = make([]byte, total+allocAlign) // over-allocate for alignment headroom
	if off := alignOffset(t.texels, allocAlign); off != 0 {
		t.texels = t.texels[off:]
	}
	t.texels = t.texels[:total]

	if alreadyInit {
		return fmt.Errorf("%w: texture re-initialized without Terminate", rerr.ErrAlreadyInitialized)
	}
	return nil
}

func alignOffset(b []byte, align int) int {
	// Number of leading bytes to skip so the slice starts on an align-byte
	// boundary; Init's allocAlign bytes of headroom cover the skip.
	if len(b) == 0 {
		return 0
	}
	if r := int(uintptr(unsafe.Pointer(&b[0])) % uintptr(align)); r != 0 {
		return align - r
	}
	return 0
}

func padUp(v, mult int) int {
	if v%mult == 0 {
		return v
	}
	return (v/mult + 1) * mult
}

// Terminate releases the texture's storage, allowing a subsequent Init.
func (t *Texture) Terminate() {
	t.texels = nil
}

func (t *Texture) Width() uint16       { return t.width }
func (t *Texture) Height() uint16      { return t.height }
func (t *Texture) Depth() uint16       { return t.depth }
func (t *Texture) Widthf() float32     { return t.widthf }
func (t *Texture) Heightf() float32    { return t.heightf }
func (t *Texture) Depthf() float32     { return t.depthf }
func (t *Texture) Format() color.Format { return t.format }
func (t *Texture) BytesPerTexel() int  { return t.bytesPerTexel }
func (t *Texture) WrapMode() WrapMode  { return t.wrap }
func (t *Texture) Order() TexelOrder   { return t.order }

// MapCoordinate returns the texel index (not byte offset) for (x,y,z)
// under the texture's configured order (spec §4.2).
func (t *Texture) MapCoordinate(x, y, z uint32) int64 {
	if t.order == OrderLinear {
		return int64(x) + int64(t.allocWidth)*(int64(y)+int64(t.allocHeight)*int64(z))
	}
	return swizzledIndex(x, y, z, t.allocWidth, t.allocHeight, t.depth > 1)
}

// swizzledIndex implements the Z-order / tiled mapping of spec §4.2: the
// texture is divided into 4x4(x4) chunks, addressed first by a linear
// tile index, then by a row-major intra-tile offset.
func swizzledIndex(x, y, z uint32, allocW, allocH int, is3D bool) int64 {
	tileX, tileY, tileZ := x>>2, y>>2, z>>2
	innerX, innerY, innerZ := x&3, y&3, z&3

	tilesPerRow := int64(allocW) / chunkSize
	tilesPerSlice := tilesPerRow * (int64(allocH) / chunkSize)

	tileIndex := int64(tileX) + tilesPerRow*int64(tileY)
	chunkTexels := int64(chunkSize * chunkSize)
	if is3D {
		tileIndex += tilesPerSlice * int64(tileZ)
		chunkTexels = chunkSize * chunkSize * chunkSize
	}

	inner := int64(innerX) + int64(innerY)<<2
	if is3D {
		inner += int64(innerZ) << 4
	}

	return tileIndex*chunkTexels + inner
}

// texelOffset returns the byte offset of texel (x,y,z).
func (t *Texture) texelOffset(x, y, z uint32) int64 {
	return t.MapCoordinate(x, y, z) * int64(t.bytesPerTexel)
}

// RawTexel returns the byte slice backing texel (x,y,z), valid until the
// next Init/Terminate.
func (t *Texture) RawTexel(x, y, z uint32) []byte {
	off := t.texelOffset(x, y, z)
	return t.texels[off : off+int64(t.bytesPerTexel)]
}

// SetTexel writes a normalized color (per color.Decode/Encode's
// convention) to texel (x,y,z).
func (t *Texture) SetTexel(x, y, z uint32, v [4]float64) {
	color.Encode(t.format, v, t.RawTexel(x, y, z))
}

// Texel reads a normalized color from texel (x,y,z).
func (t *Texture) Texel(x, y, z uint32) [4]float64 {
	return color.Decode(t.format, t.RawTexel(x, y, z))
}

// wrap1D applies the wrap mode to one normalized coordinate. ok is false
// only for WrapCutoff coordinates outside [0,1], per spec §4.2; callers
// must return a zero color in that case.
func wrap1D(mode WrapMode, u float32) (wrapped float32, ok bool) {
	switch mode {
	case WrapRepeat:
		if u < 0 {
			u += math32.Ceil(-u)
		}
		return u - math32.Floor(u), true
	case WrapClamp:
		if u < 0 {
			return 0, true
		}
		if u > 1 {
			return 1, true
		}
		return u, true
	default: // WrapCutoff
		if u < 0 || u > 1 {
			return 0, false
		}
		return u, true
	}
}
