// Package blend implements the rasterizer's fragment-to-attachment blend
// stage (spec §4.9): a closed set of five modes operating on normalized
// [4]float64 colors, the same representation internal/color's
// Decode/Encode pair uses, so a blended value casts cleanly to any
// attachment format afterward.
//
// A larger byte-domain Porter-Duff/HSL-separable blend zoo with
// div255 fast-math tricks was the starting point (see DESIGN.md); this
// package keeps that style — small named pure functions, one per mode,
// a dispatch table keyed by an enum — but works in the float domain
// because the rasterizer's fragment shader outputs and attachment
// texels already round-trip through internal/color's normalized float
// convention, and re-quantizing to bytes before blending would throw
// away precision for RF16/RF32 attachments.
package blend

// Mode selects the blend function applied when writing a fragment's
// shaded output to a color attachment (spec §4.6, §4.9).
type Mode uint8

const (
	Off Mode = iota
	Alpha
	PremultipliedAlpha
	Additive
	Screen
)

// Apply blends src over dst per mode, returning the new attachment
// value. Both colors are (r,g,b,a) in [0,1] convention.
func Apply(mode Mode, src, dst [4]float64) [4]float64 {
	switch mode {
	case Alpha:
		return alphaBlend(src, dst)
	case PremultipliedAlpha:
		return premultipliedBlend(src, dst)
	case Additive:
		return additiveBlend(src, dst)
	case Screen:
		return screenBlend(src, dst)
	default: // Off
		return src
	}
}

// alphaBlend: dst = src*src_a + dst*(1-src_a).
func alphaBlend(src, dst [4]float64) [4]float64 {
	a := src[3]
	inv := 1 - a
	var out [4]float64
	for i := 0; i < 4; i++ {
		out[i] = src[i]*a + dst[i]*inv
	}
	return out
}

// premultipliedBlend: dst = src + dst*(1-src_a). src is assumed
// already premultiplied by the fragment shader.
func premultipliedBlend(src, dst [4]float64) [4]float64 {
	inv := 1 - src[3]
	var out [4]float64
	for i := 0; i < 4; i++ {
		out[i] = src[i] + dst[i]*inv
	}
	return out
}

// additiveBlend: dst = clamp(src + dst).
func additiveBlend(src, dst [4]float64) [4]float64 {
	var out [4]float64
	for i := 0; i < 4; i++ {
		out[i] = clampUnit(src[i] + dst[i])
	}
	return out
}

// screenBlend: dst = 1 - (1-src)*(1-dst).
func screenBlend(src, dst [4]float64) [4]float64 {
	var out [4]float64
	for i := 0; i < 4; i++ {
		out[i] = 1 - (1-src[i])*(1-dst[i])
	}
	return out
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
