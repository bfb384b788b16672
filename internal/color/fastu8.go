package color

// u8UnitLUT is a precomputed table of u/255.0, used by FastU8ToUnit as the
// chosen realization of spec §4.1's "fast u8-to-float path".
//
// spec §4.1 permits (but does not require) an IEEE-754 bit-trick that
// reconstructs 1.0+u/255.0 and subtracts 1, provided results are
// bit-identical to u*(1.0/255.0). A 256-entry lookup table gives that
// same bit-exactness by construction rather than by argument about
// rounding, at the same O(1) cost per sample, so it is the documented
// divergence from the bit-trick description (see DESIGN.md).
var u8UnitLUT [256]float32

func init() {
	for i := range u8UnitLUT {
		u8UnitLUT[i] = float32(i) * (1.0 / 255.0)
	}
}

// FastU8ToUnit returns u/255.0 as a float32, via lookup table.
func FastU8ToUnit(u uint8) float32 {
	return u8UnitLUT[u]
}
