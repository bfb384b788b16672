package swrast

import (
	"fmt"

	"github.com/swrast/swrast/internal/raster"
	"github.com/swrast/swrast/internal/rerr"
	"github.com/swrast/swrast/internal/texture"
)

// FramebufferHandle names a set of color/depth attachments (spec §4.5).
type FramebufferHandle uint32

// framebuffer is the context-owned storage behind a FramebufferHandle.
type framebuffer struct {
	color      []texture.View // reserved slots; zero-value View means unbound
	depth      texture.View
	hasDepth   bool
}

// ReserveFramebuffer allocates a new, empty framebuffer and returns its
// handle.
func (c *Context) ReserveFramebuffer() FramebufferHandle {
	slot := c.framebuffers.Alloc(&framebuffer{})
	return FramebufferHandle(slot)
}

// DestroyFramebuffer frees a framebuffer's slot. It does not touch the
// textures it referenced (spec §9: detach-before-destroy ordering for
// the underlying textures is the caller's responsibility).
func (c *Context) DestroyFramebuffer(h FramebufferHandle) { c.framebuffers.Free(uint32(h)) }

// ReserveColorBuffers sizes a framebuffer's color attachment slot array
// (spec §4.5).
func (c *Context) ReserveColorBuffers(h FramebufferHandle, n int) error {
	fb, ok := c.framebuffers.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid framebuffer handle", rerr.ErrInvalidHandle)
	}
	fb.color = make([]texture.View, n)
	return nil
}

// AttachColorBuffer stores a texture view in a reserved color slot
// (spec §4.5).
func (c *Context) AttachColorBuffer(h FramebufferHandle, slot int, tex TextureHandle) error {
	fb, ok := c.framebuffers.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid framebuffer handle", rerr.ErrInvalidHandle)
	}
	if slot < 0 || slot >= len(fb.color) {
		return fmt.Errorf("%w: color slot out of range", rerr.ErrInvalidArgument)
	}
	t, ok := c.texture(tex)
	if !ok {
		return fmt.Errorf("%w: invalid texture handle", rerr.ErrInvalidHandle)
	}
	fb.color[slot] = texture.ViewOf(t)
	return nil
}

// AttachDepthBuffer binds the depth attachment.
func (c *Context) AttachDepthBuffer(h FramebufferHandle, tex TextureHandle) error {
	fb, ok := c.framebuffers.Get(uint32(h))
	if !ok {
		return fmt.Errorf("%w: invalid framebuffer handle", rerr.ErrInvalidHandle)
	}
	t, ok := c.texture(tex)
	if !ok {
		return fmt.Errorf("%w: invalid texture handle", rerr.ErrInvalidHandle)
	}
	fb.depth, fb.hasDepth = texture.ViewOf(t), true
	return nil
}

// Valid reports whether a framebuffer is ready to be drawn into (spec
// §4.5): at least one attachment exists, all attachments share (W,H),
// and no reserved color slot holds a null view.
func (c *Context) Valid(h FramebufferHandle) bool {
	fb, ok := c.framebuffers.Get(uint32(h))
	if !ok {
		return false
	}
	return fb.valid()
}

func (fb *framebuffer) valid() bool {
	var w, ht uint16
	seen := false
	for _, v := range fb.color {
		if !v.IsValid() {
			return false
		}
		if !seen {
			w, ht, seen = v.Width(), v.Height(), true
		} else if v.Width() != w || v.Height() != ht {
			return false
		}
	}
	if fb.hasDepth {
		if !seen {
			w, ht, seen = fb.depth.Width(), fb.depth.Height(), true
		} else if fb.depth.Width() != w || fb.depth.Height() != ht {
			return false
		}
	}
	return seen
}

// ColorAttachments exposes a framebuffer's color attachments as
// raster.Attachment, for draw/blit/clear dispatch.
func (fb *framebuffer) colorAttachments() []raster.Attachment {
	out := make([]raster.Attachment, len(fb.color))
	for i, v := range fb.color {
		if v.IsValid() {
			out[i] = v
		}
	}
	return out
}

// height returns the shared height of a valid framebuffer's
// attachments, used to size the rasterizer's row-band partition.
func (fb *framebuffer) height() uint16 {
	for _, v := range fb.color {
		if v.IsValid() {
			return v.Height()
		}
	}
	if fb.hasDepth {
		return fb.depth.Height()
	}
	return 0
}

func (fb *framebuffer) depthAttachment() raster.Attachment {
	if !fb.hasDepth {
		return nil
	}
	return fb.depth
}
