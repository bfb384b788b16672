package color

import "math"

// componentSize returns the byte width of one scalar of this type.
func (t ComponentType) componentSize() int {
	switch t {
	case ComponentU8:
		return 1
	case ComponentU16, ComponentF16:
		return 2
	case ComponentU32, ComponentF32:
		return 4
	case ComponentU64, ComponentF64:
		return 8
	default:
		return 0
	}
}

// isFloat reports whether the type is a floating-point component.
func (t ComponentType) isFloat() bool {
	return t == ComponentF16 || t == ComponentF32 || t == ComponentF64
}

// intMax returns the maximum representable value of an unsigned integer
// component type, as used by the cast rescaling rules in spec §3.
func (t ComponentType) intMax() float64 {
	switch t {
	case ComponentU8:
		return math.MaxUint8
	case ComponentU16:
		return math.MaxUint16
	case ComponentU32:
		return math.MaxUint32
	case ComponentU64:
		return math.MaxUint64
	default:
		return 0
	}
}

// decodeRaw reads one scalar component from raw, returning it as a plain
// numeric value: the stored integer for integer types (not normalized),
// or the float value for float types. Normalization to spec §3's nominal
// ranges happens one level up, in Decode.
func decodeRaw(t ComponentType, raw []byte) float64 {
	switch t {
	case ComponentU8:
		return float64(raw[0])
	case ComponentU16:
		return float64(le16(raw))
	case ComponentU32:
		return float64(le32(raw))
	case ComponentU64:
		return float64(le64(raw))
	case ComponentF16:
		return float64(Float16FromBits(le16(raw)).Float32())
	case ComponentF32:
		return float64(math.Float32frombits(le32(raw)))
	case ComponentF64:
		return math.Float64frombits(le64(raw))
	default:
		return 0
	}
}

// encodeRaw writes one scalar component into dst, the inverse of decodeRaw.
func encodeRaw(t ComponentType, v float64, dst []byte) {
	switch t {
	case ComponentU8:
		dst[0] = byte(clampRound(v, 0, math.MaxUint8))
	case ComponentU16:
		putLE16(dst, uint16(clampRound(v, 0, math.MaxUint16)))
	case ComponentU32:
		putLE32(dst, uint32(clampRound(v, 0, math.MaxUint32)))
	case ComponentU64:
		putLE64(dst, uint64(clampRound(v, 0, math.MaxUint64)))
	case ComponentF16:
		putLE16(dst, Float16FromFloat32(float32(v)).Bits())
	case ComponentF32:
		putLE32(dst, math.Float32bits(float32(v)))
	case ComponentF64:
		putLE64(dst, math.Float64bits(v))
	}
}

func clampRound(v, lo, hi float64) float64 {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return math.Round(v)
}

func le16(b []byte) uint16 { return uint16(b[0]) | uint16(b[1])<<8 }
func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
func le64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
func putLE16(b []byte, v uint16) { b[0] = byte(v); b[1] = byte(v >> 8) }
func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
func putLE64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * uint(i)))
	}
}

// Decode reads one pixel of format f from raw and returns up to 4
// normalized component values (spec §3): integer components are scaled
// to [0, 1] by dividing by TYPE_MAX, float components pass through
// unchanged (may fall outside [0,1]). Unused slots beyond
// f.ComponentsPerPixel() are zero.
func Decode(f Format, raw []byte) [4]float64 {
	var out [4]float64
	sz := f.Type.componentSize()
	n := int(f.Components)
	for i := 0; i < n; i++ {
		x := decodeRaw(f.Type, raw[i*sz:])
		if !f.Type.isFloat() {
			x /= f.Type.intMax()
		}
		out[i] = x
	}
	return out
}

// Encode writes up to 4 normalized component values into dst in format f,
// the inverse of Decode: integer components are scaled by TYPE_MAX and
// rounded, float components are stored as-is.
func Encode(f Format, v [4]float64, dst []byte) {
	sz := f.Type.componentSize()
	n := int(f.Components)
	for i := 0; i < n; i++ {
		x := v[i]
		if !f.Type.isFloat() {
			x *= f.Type.intMax()
		}
		encodeRaw(f.Type, x, dst[i*sz:])
	}
}

// Cast converts one pixel from format src to format dst, applying the
// rescaling rules of spec §3: int->int rescales TYPE_MAX to TYPE_MAX,
// int->float maps TYPE_MAX to 1.0, float->int maps 1.0 to TYPE_MAX
// (clamping outside [0,1]), float->float is a plain numeric cast.
// Missing source components (e.g. casting R8 to RGBA8) default to 0 for
// color channels and 1 for a synthesized alpha in slot 3.
func Cast(dst, src Format, srcRaw []byte, dstRaw []byte) {
	v := Decode(src, srcRaw)
	if src.Components < 4 && dst.Components == 4 {
		v[3] = 1
	}
	Encode(dst, v, dstRaw)
}
