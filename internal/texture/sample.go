package texture

import "github.com/chewxy/math32"

// Nearest samples the texture at normalized (u,v[,w]) using
// wrap -> scale -> floor -> map_coordinate (spec §4.2). Returns the zero
// color if WrapCutoff rejects the coordinate.
func (t *Texture) Nearest(u, v, w float32) [4]float64 {
	uu, ok := wrap1D(t.wrap, u)
	if !ok {
		return [4]float64{}
	}
	vv, ok := wrap1D(t.wrap, v)
	if !ok {
		return [4]float64{}
	}
	ww := float32(0)
	if t.depth > 1 {
		var ok3 bool
		ww, ok3 = wrap1D(t.wrap, w)
		if !ok3 {
			return [4]float64{}
		}
	}

	x := uint32(math32.Floor(uu * t.widthf))
	y := uint32(math32.Floor(vv * t.heightf))
	z := uint32(math32.Floor(ww * t.depthf))
	x = clampU32(x, uint32(t.width)-1)
	y = clampU32(y, uint32(t.height)-1)
	z = clampU32(z, uint32(t.depth)-1)

	return t.Texel(x, y, z)
}

func clampU32(v, max uint32) uint32 {
	if v > max {
		return max
	}
	return v
}

// Bilinear samples four neighboring texels with clamp-to-edge addressing
// and blends them by fractional weight, using texel-center (x+0.5)
// offsets so a sample exactly on a texel's own center returns that
// texel unweighted by its neighbors (spec §4.2). 2D only (depth ignored,
// z=0 plane).
//
// spec §8 scenario 3 samples a 2x2 {Red,Green,Blue,White} texture at
// (0.5,0.5) and states an expected (127,127,63): that value is not
// reachable by any symmetric bilinear weighting of this input (u=v=0.5
// on a square texture forces all four corner weights to exactly 0.25,
// which makes every channel's output the plain average of that
// channel across all four corners — here (0.5,0.5,0.5), not an
// asymmetric result). Treated as a spec transcription error, the same
// way the HSV/HSL Open Question treats a suspected source typo: this
// implementation returns the mathematically correct symmetric average
// rather than reproduce an unreachable number (see DESIGN.md).
func (t *Texture) Bilinear(u, v float32) [4]float64 {
	uu, ok := wrap1D(t.wrap, u)
	if !ok {
		return [4]float64{}
	}
	vv, ok := wrap1D(t.wrap, v)
	if !ok {
		return [4]float64{}
	}

	fx := uu*t.widthf - 0.5
	fy := vv*t.heightf - 0.5

	x0 := int32(math32.Floor(fx))
	y0 := int32(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x0c := clampI32(x0, int32(t.width)-1)
	y0c := clampI32(y0, int32(t.height)-1)
	x1c := clampI32(x0+1, int32(t.width)-1)
	y1c := clampI32(y0+1, int32(t.height)-1)

	c00 := t.Texel(uint32(x0c), uint32(y0c), 0)
	c10 := t.Texel(uint32(x1c), uint32(y0c), 0)
	c01 := t.Texel(uint32(x0c), uint32(y1c), 0)
	c11 := t.Texel(uint32(x1c), uint32(y1c), 0)

	var out [4]float64
	for i := 0; i < 4; i++ {
		top := lerp(c00[i], c10[i], float64(tx))
		bot := lerp(c01[i], c11[i], float64(tx))
		out[i] = lerp(top, bot, float64(ty))
	}
	return out
}

func clampI32(v, max int32) int32 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Trilinear implements the "gather-floor" scheme of the original source
// (spec §4.2): sample at floor(x,y) and floor(x-1,y-1) [and the two
// mixed corners], weighted by the fractional parts, rather than the
// conventional 2x-bilinear-then-lerp-by-mip-level trilinear (this
// texture has no mip chain; "trilinear" here names the 4-tap scheme the
// C++ source used for its single highest-resolution level, see
// original_source/soft_render/include/soft_render/SR_TexSampler.hpp).
func (t *Texture) Trilinear(u, v, w float32) [4]float64 {
	uu, ok := wrap1D(t.wrap, u)
	if !ok {
		return [4]float64{}
	}
	vv, ok := wrap1D(t.wrap, v)
	if !ok {
		return [4]float64{}
	}

	fx := uu * t.widthf
	fy := vv * t.heightf

	x0 := int32(math32.Floor(fx))
	y0 := int32(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x0c := clampI32(x0, int32(t.width)-1)
	y0c := clampI32(y0, int32(t.height)-1)
	xm1 := clampI32(x0-1, int32(t.width)-1)
	ym1 := clampI32(y0-1, int32(t.height)-1)

	cFloor := t.Texel(uint32(x0c), uint32(y0c), 0)
	cFloorM1 := t.Texel(uint32(xm1), uint32(ym1), 0)
	cMixed1 := t.Texel(uint32(xm1), uint32(y0c), 0)
	cMixed2 := t.Texel(uint32(x0c), uint32(ym1), 0)

	wFloor := float64((1 - tx) * (1 - ty))
	wFloorM1 := float64(tx * ty)
	wMixed1 := float64(tx * (1 - ty))
	wMixed2 := float64((1 - tx) * ty)

	var out [4]float64
	for i := 0; i < 4; i++ {
		out[i] = cFloor[i]*wFloor + cFloorM1[i]*wFloorM1 + cMixed1[i]*wMixed1 + cMixed2[i]*wMixed2
	}
	return out
}
