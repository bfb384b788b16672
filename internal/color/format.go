// Package color implements the rendering core's color model: typed pixel
// formats, cross-format casts, and the HSV/HSL/YCoCg conversions used by
// textures and framebuffer attachments (spec §3, §4.1).
//
// Per-pixel-type handling is a runtime dispatch table keyed by Format,
// rather than monomorphized generic code: the format set is data (28
// valid combinations plus Invalid), decided at texture/framebuffer
// creation time, not at compile time, so a table of small codec values
// reads closer to how the pipeline actually uses it (see DESIGN.md).
package color

import "fmt"

// ComponentType is the scalar storage type of one color component.
type ComponentType uint8

const (
	ComponentU8 ComponentType = iota
	ComponentU16
	ComponentU32
	ComponentU64
	ComponentF16
	ComponentF32
	ComponentF64

	componentTypeCount
)

// String returns a short name for the component type, used in format
// diagnostics.
func (t ComponentType) String() string {
	switch t {
	case ComponentU8:
		return "u8"
	case ComponentU16:
		return "u16"
	case ComponentU32:
		return "u32"
	case ComponentU64:
		return "u64"
	case ComponentF16:
		return "f16"
	case ComponentF32:
		return "f32"
	case ComponentF64:
		return "f64"
	default:
		return "invalid"
	}
}

// Format is a color format tag: a component count in [1,4] paired with a
// ComponentType. The zero value is the Invalid sentinel (spec §3).
type Format struct {
	Components uint8
	Type       ComponentType
}

// Invalid is the sentinel format with zero components.
var Invalid = Format{}

// New constructs a Format for the given component count (1..4) and type.
// Panics if components is out of range, since this is always a
// programmer-supplied constant at a texture/framebuffer creation site,
// never derived from untrusted input.
func New(components int, t ComponentType) Format {
	if components < 1 || components > 4 {
		panic(fmt.Sprintf("color: invalid component count %d", components))
	}
	return Format{Components: uint8(components), Type: t}
}

// IsValid reports whether f names a real format.
func (f Format) IsValid() bool {
	return f.Components >= 1 && f.Components <= 4 && f.Type < componentTypeCount
}

// ComponentsPerPixel returns the component count, 0 for Invalid.
func (f Format) ComponentsPerPixel() int {
	return int(f.Components)
}

// BytesPerPixel returns the total byte size of one pixel in this format.
func (f Format) BytesPerPixel() int {
	return int(f.Components) * f.Type.componentSize()
}

func (f Format) String() string {
	if !f.IsValid() {
		return "Invalid"
	}
	return fmt.Sprintf("%s x%d", f.Type, f.Components)
}

// Common named formats used throughout the pipeline: RGBA8 textures and
// framebuffer attachments, and the three depth-buffer formats spec §4.9
// allows (R16U, RF16, RF32).
var (
	R8      = New(1, ComponentU8)
	RG8     = New(2, ComponentU8)
	RGB8    = New(3, ComponentU8)
	RGBA8   = New(4, ComponentU8)
	R16U    = New(1, ComponentU16)
	RGBA16U = New(4, ComponentU16)
	RF16    = New(1, ComponentF16)
	RF32    = New(1, ComponentF32)
	RGBAF32 = New(4, ComponentF32)
)
