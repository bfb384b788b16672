package swrast

import (
	"fmt"

	"github.com/swrast/swrast/internal/rerr"
	"github.com/swrast/swrast/internal/rlog"
	"github.com/swrast/swrast/internal/texture"
)

// TextureHandle names a texture owned by a Context (spec §4.2, §6).
type TextureHandle uint32

// WrapMode controls how out-of-[0,1] normalized texture coordinates are
// handled (spec §4.2).
type WrapMode = texture.WrapMode

const (
	WrapRepeat = texture.WrapRepeat
	WrapCutoff = texture.WrapCutoff
	WrapClamp  = texture.WrapClamp
)

// TexelOrder selects a texture's texel storage layout (spec §4.2).
type TexelOrder = texture.TexelOrder

const (
	OrderLinear   = texture.OrderLinear
	OrderSwizzled = texture.OrderSwizzled
)

// FilterMode selects the sampling kernel Sample uses.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota
	FilterBilinear
	FilterTrilinear
)

// TextureDesc describes a texture to be reserved (spec §4.2).
type TextureDesc struct {
	Width, Height, Depth uint16
	Format               Format
	Wrap                 WrapMode
	Order                TexelOrder
}

// ReserveTexture allocates a new texture and returns its handle (spec
// §4.2's init). The handle slot is taken from the freelist before a new
// one is appended, so handle values are reused once destroyed.
func (c *Context) ReserveTexture(desc TextureDesc) (TextureHandle, error) {
	if desc.Width == 0 || desc.Height == 0 || desc.Depth == 0 || !desc.Format.f.IsValid() {
		err := fmt.Errorf("%w: texture dimensions and format must be non-zero/valid", rerr.ErrInvalidArgument)
		rlog.Get().Error("swrast: ReserveTexture rejected", "error", err, "width", desc.Width, "height", desc.Height, "depth", desc.Depth)
		return 0, err
	}
	tex := &texture.Texture{}
	if err := tex.Init(desc.Width, desc.Height, desc.Depth, desc.Format.f, desc.Wrap, desc.Order); err != nil {
		rlog.Get().Error("swrast: texture init failed", "error", err)
		return 0, err
	}
	slot := c.textures.Alloc(tex)
	return TextureHandle(slot), nil
}

// DestroyTexture frees a texture and returns its slot to the freelist.
// Any framebuffer attachment still referencing it becomes invalid
// (spec §9's detach-before-destroy ordering is the caller's
// responsibility: see DESIGN.md).
func (c *Context) DestroyTexture(h TextureHandle) {
	if tex, ok := c.textures.Get(uint32(h)); ok {
		tex.Terminate()
	}
	c.textures.Free(uint32(h))
}

func (c *Context) texture(h TextureHandle) (*texture.Texture, bool) {
	return c.textures.Get(uint32(h))
}

// TextureDimensions returns a texture's width/height/depth.
func (c *Context) TextureDimensions(h TextureHandle) (w, ht, d uint16, ok bool) {
	tex, ok := c.texture(h)
	if !ok {
		return 0, 0, 0, false
	}
	return tex.Width(), tex.Height(), tex.Depth(), true
}

// SetTexel writes one normalized color into a texture (spec §4.2).
func (c *Context) SetTexel(h TextureHandle, x, y, z uint32, col Color) error {
	tex, ok := c.texture(h)
	if !ok {
		return fmt.Errorf("%w: invalid texture handle", rerr.ErrInvalidHandle)
	}
	tex.SetTexel(x, y, z, col.array())
	return nil
}

// Texel reads one normalized color from a texture.
func (c *Context) Texel(h TextureHandle, x, y, z uint32) Color {
	tex, ok := c.texture(h)
	if !ok {
		return Color{}
	}
	return colorFromArray(tex.Texel(x, y, z))
}

// Sample reads a texture at normalized (u,v,w) through the chosen filter
// (spec §4.2).
func (c *Context) Sample(h TextureHandle, u, v, w float32, filter FilterMode) Color {
	tex, ok := c.texture(h)
	if !ok {
		return Color{}
	}
	switch filter {
	case FilterBilinear:
		return colorFromArray(tex.Bilinear(u, v))
	case FilterTrilinear:
		return colorFromArray(tex.Trilinear(u, v, w))
	default:
		return colorFromArray(tex.Nearest(u, v, w))
	}
}
