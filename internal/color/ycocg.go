package color

// YCoCgR is the lossless YCoCg-R transform of an 8-bit RGB triple, used
// by the compact-framebuffer demo (spec §4.1). Co and Cg are biased by
// 128 so they fit in uint8 the way the reference transform stores them.
type YCoCgR struct {
	Y, Co, Cg uint8
}

// RGBToYCoCg applies the reversible integer YCoCg-R transform.
func RGBToYCoCg(r, g, b uint8) YCoCgR {
	ri, gi, bi := int(r), int(g), int(b)

	co := ri - bi
	tmp := bi + (co >> 1)
	cg := gi - tmp
	y := tmp + (cg >> 1)

	return YCoCgR{
		Y:  uint8(clampInt(y, 0, 255)),
		Co: uint8(clampInt(co+128, 0, 255)),
		Cg: uint8(clampInt(cg+128, 0, 255)),
	}
}

// YCoCgToRGB inverts RGBToYCoCg exactly for any value it produced.
func YCoCgToRGB(c YCoCgR) (r, g, b uint8) {
	y := int(c.Y)
	co := int(c.Co) - 128
	cg := int(c.Cg) - 128

	tmp := y - (cg >> 1)
	gi := cg + tmp
	bi := tmp - (co >> 1)
	ri := bi + co

	return uint8(clampInt(ri, 0, 255)), uint8(clampInt(gi, 0, 255)), uint8(clampInt(bi, 0, 255))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
