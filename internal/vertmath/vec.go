// Package vertmath provides the small float32 vector toolkit the vertex
// processor and rasterizer use for clip-space math (spec §4.8, §4.9):
// Vec2/Vec3/Vec4 arithmetic and the Lerp used for Sutherland-Hodgman
// clip-edge interpolation. It has no matrix type; the perspective divide
// and viewport mapping are done in internal/vertex.
//
// Its vector API is generalized from 2D to the homogeneous
// 4-vectors a rasterizer needs, and uses float32 throughout via
// github.com/chewxy/math32 rather than float64 truncated per draw,
// the same choice a float32-oriented 3D math library would make for the
// same reason (see DESIGN.md).
package vertmath

import "github.com/chewxy/math32"

// Vec4 is a homogeneous clip-space vector, or an interpolated varying
// value (spec says varyings are Vec4).
type Vec4 struct {
	X, Y, Z, W float32
}

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Lerp linearly interpolates between v and o at parameter t in [0,1].
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
		W: v.W + (o.W-v.W)*t,
	}
}

// Vec3 is a 3-component vector used for screen-space positions after the
// perspective divide.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Vec2 is used for 2D screen/texture coordinate math.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Length returns the Euclidean length.
func (v Vec2) Length() float32 { return math32.Sqrt(v.X*v.X + v.Y*v.Y) }
