package swrast

import "github.com/swrast/swrast/internal/color"

// Color is a normalized (r,g,b,a) color in [0,1], the convention
// internal/color's Decode/Encode pair uses for every pixel format (spec
// §4.1). Vertex/fragment shader varyings and outputs use vertmath.Vec4
// instead (clip-space math needs float32 and a W component); Color is
// the public-facing type for API callers setting clear colors, blit
// source colors, and the like.
type Color struct {
	R, G, B, A float64
}

func (c Color) array() [4]float64 { return [4]float64{c.R, c.G, c.B, c.A} }

func colorFromArray(a [4]float64) Color { return Color{R: a[0], G: a[1], B: a[2], A: a[3]} }

// Format names a pixel's component layout and storage type (spec §3,
// §4.1). The named values below cover the formats the rasterizer and
// depth buffer use.
type Format struct{ f color.Format }

var (
	FormatR8      = Format{color.R8}
	FormatRG8     = Format{color.RG8}
	FormatRGB8    = Format{color.RGB8}
	FormatRGBA8   = Format{color.RGBA8}
	FormatR16U    = Format{color.R16U}
	FormatRGBA16U = Format{color.RGBA16U}
	FormatRF16    = Format{color.RF16}
	FormatRF32    = Format{color.RF32}
	FormatRGBAF32 = Format{color.RGBAF32}
)

// BytesPerPixel returns the per-pixel byte size of f (spec §4.1).
func (f Format) BytesPerPixel() int { return f.f.BytesPerPixel() }

// ComponentsPerPixel returns the component count of f (spec §4.1).
func (f Format) ComponentsPerPixel() int { return f.f.ComponentsPerPixel() }

// ColorCast re-encodes c as if it were stored in srcFormat and read back
// as dstFormat (spec §4.1's `color_cast<T,U>`): components beyond
// srcFormat's count read back as 0 (or 1 for a synthesized alpha),
// matching internal/color.Cast's rescaling rules (spec §3).
func ColorCast(c Color, srcFormat, dstFormat Format) Color {
	srcRaw := make([]byte, srcFormat.f.BytesPerPixel())
	color.Encode(srcFormat.f, c.array(), srcRaw)
	dstRaw := make([]byte, dstFormat.f.BytesPerPixel())
	color.Cast(dstFormat.f, srcFormat.f, srcRaw, dstRaw)
	return colorFromArray(color.Decode(dstFormat.f, dstRaw))
}

// RGBToHSV converts c to hue/saturation/value (spec §4.1).
func RGBToHSV(c Color) (h, s, v float64) {
	out := color.RGBToHSV(color.RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)})
	return float64(out.H), float64(out.S), float64(out.V)
}

// HSVToRGB converts hue/saturation/value back to a Color.
func HSVToRGB(h, s, v float64) Color {
	rgb := color.HSVToRGB(color.HSV{H: float32(h), S: float32(s), V: float32(v)})
	return Color{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B), A: 1}
}

// RGBToHSL converts c to hue/saturation/lightness (spec §4.1).
func RGBToHSL(c Color) (h, s, l float64) {
	out := color.RGBToHSL(color.RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)})
	return float64(out.H), float64(out.S), float64(out.L)
}

// HSLToRGB converts hue/saturation/lightness back to a Color.
func HSLToRGB(h, s, l float64) Color {
	rgb := color.HSLToRGB(color.HSL{H: float32(h), S: float32(s), L: float32(l)})
	return Color{R: float64(rgb.R), G: float64(rgb.G), B: float64(rgb.B), A: 1}
}

// RGBToYCoCg converts an 8-bit RGB triple to the lossless YCoCg-R
// transform (spec §4.1, "compact-framebuffer demo").
func RGBToYCoCg(r, g, b uint8) (y, co, cg uint8) {
	out := color.RGBToYCoCg(r, g, b)
	return out.Y, out.Co, out.Cg
}

// YCoCgToRGB reverses RGBToYCoCg exactly.
func YCoCgToRGB(y, co, cg uint8) (r, g, b uint8) {
	return color.YCoCgToRGB(color.YCoCgR{Y: y, Co: co, Cg: cg})
}

// FastU8ToUnit converts an 8-bit channel value to its normalized float
// form via the lookup-table fast path (spec §4.1).
func FastU8ToUnit(u uint8) float32 { return color.FastU8ToUnit(u) }
