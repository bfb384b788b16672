package color

// RGB, HSV, and HSL are plain float32 triples in [0,1] (alpha is handled
// by the caller at the pixel level; these conversions work on color only,
// keeping alpha out of color-space math).
type RGB struct{ R, G, B float32 }
type HSV struct{ H, S, V float32 }
type HSL struct{ H, S, L float32 }

// RGBToHSV converts an RGB triple to HSV using the standard piecewise
// formula. Hue is in [0,360). A zero-chroma input (gray) returns hue=0,
// saturation=0 rather than NaN, per spec §4.1 and the Open Question in
// spec §9 (the source's HSV/HSL code contains a suspected 0.f/0.5f typo
// in one branch; this implementation uses the mathematically correct
// formula throughout and does not reproduce it).
func RGBToHSV(c RGB) HSV {
	maxV := max3(c.R, c.G, c.B)
	minV := min3(c.R, c.G, c.B)
	chroma := maxV - minV

	v := maxV
	var s float32
	if maxV > 0 {
		s = chroma / maxV
	}

	if chroma == 0 {
		return HSV{H: 0, S: 0, V: v}
	}

	var h float32
	switch maxV {
	case c.R:
		h = 60 * modf32((c.G-c.B)/chroma, 6)
	case c.G:
		h = 60 * ((c.B-c.R)/chroma + 2)
	default: // c.B
		h = 60 * ((c.R-c.G)/chroma + 4)
	}
	if h < 0 {
		h += 360
	}
	return HSV{H: h, S: s, V: v}
}

// HSVToRGB converts an HSV triple (hue in [0,360)) back to RGB using the
// standard hue-sector formula.
func HSVToRGB(c HSV) RGB {
	if c.S == 0 {
		return RGB{R: c.V, G: c.V, B: c.V}
	}

	h := modf32(c.H, 360) / 60
	sector := int(h)
	frac := h - float32(sector)

	p := c.V * (1 - c.S)
	q := c.V * (1 - c.S*frac)
	t := c.V * (1 - c.S*(1-frac))

	switch sector % 6 {
	case 0:
		return RGB{R: c.V, G: t, B: p}
	case 1:
		return RGB{R: q, G: c.V, B: p}
	case 2:
		return RGB{R: p, G: c.V, B: t}
	case 3:
		return RGB{R: p, G: q, B: c.V}
	case 4:
		return RGB{R: t, G: p, B: c.V}
	default:
		return RGB{R: c.V, G: p, B: q}
	}
}

// RGBToHSL converts an RGB triple to HSL. Hue is in [0,360). A
// zero-chroma input returns hue=0, saturation=0.
func RGBToHSL(c RGB) HSL {
	maxV := max3(c.R, c.G, c.B)
	minV := min3(c.R, c.G, c.B)
	chroma := maxV - minV

	l := (maxV + minV) / 2

	if chroma == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float32
	if l <= 0.5 {
		s = chroma / (maxV + minV)
	} else {
		s = chroma / (2 - maxV - minV)
	}

	var h float32
	switch maxV {
	case c.R:
		h = 60 * modf32((c.G-c.B)/chroma, 6)
	case c.G:
		h = 60 * ((c.B-c.R)/chroma + 2)
	default:
		h = 60 * ((c.R-c.G)/chroma + 4)
	}
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: s, L: l}
}

// HSLToRGB converts an HSL triple back to RGB using the standard
// chroma = (1-|2L-1|)*S construction.
func HSLToRGB(c HSL) RGB {
	if c.S == 0 {
		return RGB{R: c.L, G: c.L, B: c.L}
	}

	chroma := (1 - absf32(2*c.L-1)) * c.S
	hp := modf32(c.H, 360) / 60
	x := chroma * (1 - absf32(modf32(hp, 2)-1))

	var r1, g1, b1 float32
	switch {
	case hp < 1:
		r1, g1, b1 = chroma, x, 0
	case hp < 2:
		r1, g1, b1 = x, chroma, 0
	case hp < 3:
		r1, g1, b1 = 0, chroma, x
	case hp < 4:
		r1, g1, b1 = 0, x, chroma
	case hp < 5:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	m := c.L - chroma/2
	return RGB{R: r1 + m, G: g1 + m, B: b1 + m}
}

// HSVToHSL converts via RGB, since the two color-space families share no
// direct closed-form conversion simpler than a round trip.
func HSVToHSL(c HSV) HSL { return RGBToHSL(HSVToRGB(c)) }

// HSLToHSV converts via RGB.
func HSLToHSV(c HSL) HSV { return RGBToHSV(HSLToRGB(c)) }

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// modf32 returns a floating-point modulo in [0, m).
func modf32(v, m float32) float32 {
	r := v
	for r < 0 {
		r += m
	}
	for r >= m {
		r -= m
	}
	return r
}
