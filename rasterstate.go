package swrast

import (
	"fmt"

	"github.com/swrast/swrast/internal/blend"
	"github.com/swrast/swrast/internal/rerr"
	"github.com/swrast/swrast/internal/rstate"
)

// RasterStateHandle names a packed raster-state word (spec §4.6).
type RasterStateHandle uint32

// CullMode selects which winding is discarded during back-face culling
// (spec §4.6).
type CullMode = rstate.CullMode

const (
	CullBack  = rstate.CullBack
	CullFront = rstate.CullFront
	CullNone  = rstate.CullNone
)

// DepthTest selects the fragment depth comparison predicate (spec
// §4.6).
type DepthTest = rstate.DepthTest

const (
	DepthOff           = rstate.DepthOff
	DepthLess          = rstate.DepthLess
	DepthLessEqual     = rstate.DepthLessEqual
	DepthGreater       = rstate.DepthGreater
	DepthGreaterEqual  = rstate.DepthGreaterEqual
	DepthEqual         = rstate.DepthEqual
	DepthNotEqual      = rstate.DepthNotEqual
)

// BlendMode selects the fragment blend equation (spec §4.6).
type BlendMode = blend.Mode

const (
	BlendOff                 = blend.Off
	BlendAlpha               = blend.Alpha
	BlendPremultipliedAlpha  = blend.PremultipliedAlpha
	BlendAdditive            = blend.Additive
	BlendScreen              = blend.Screen
)

// Rect is a u16 viewport/scissor rectangle (spec §4.6).
type Rect = rstate.Rect

// DefaultViewport is the spec §4.6 default viewport/scissor rectangle,
// covering the full addressable u16 range.
func DefaultViewport() Rect { return rstate.DefaultViewport() }

// RasterState is the draw call's fixed-function configuration: cull
// mode, depth test/mask, and per-slot blend mode, bit-packed the way
// the source packs them into a single state word (spec §4.6).
type RasterState struct {
	Cull       CullMode
	DepthTest  DepthTest
	DepthMask  bool
	BlendModes []BlendMode // parallel to a framebuffer's color attachments
}

// DefaultRasterState matches spec §4.6's defaults: back-face culling,
// depth test off, depth writes enabled, blending off.
func DefaultRasterState() RasterState {
	return RasterState{
		Cull:      CullBack,
		DepthTest: DepthOff,
		DepthMask: true,
	}
}

// rasterState is the context-owned storage behind a RasterStateHandle.
type rasterState struct {
	state RasterState
}

// ReserveRasterState registers a raster state and returns its handle.
func (c *Context) ReserveRasterState(s RasterState) RasterStateHandle {
	slot := c.rasterStates.Alloc(&rasterState{state: s})
	return RasterStateHandle(slot)
}

// DestroyRasterState frees a raster state's slot.
func (c *Context) DestroyRasterState(h RasterStateHandle) { c.rasterStates.Free(uint32(h)) }

// SetRasterState replaces the state a handle names.
func (c *Context) SetRasterState(h RasterStateHandle, s RasterState) error {
	r, ok := c.rasterStates.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid raster state handle", rerr.ErrInvalidHandle)
	}
	r.state = s
	return nil
}

// Packed returns the spec §4.6 bit-packed encoding of the state the
// handle names (cull(2)|depth_test(3)|depth_mask(1)|blend(3) of the
// first color slot|reserved(7)).
func (c *Context) Packed(h RasterStateHandle) (uint16, bool) {
	r, ok := c.rasterStates.Get(uint32(h))
	if !ok {
		return 0, false
	}
	var firstBlend BlendMode
	if len(r.state.BlendModes) > 0 {
		firstBlend = r.state.BlendModes[0]
	}
	return rstate.Packed(r.state.Cull, r.state.DepthTest, r.state.DepthMask, uint8(firstBlend)), true
}
