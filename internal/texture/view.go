package texture

import "github.com/swrast/swrast/internal/color"

// View is a non-owning descriptor over a Texture's storage: framebuffer
// attachments hold Views, and a Texture produces one on request (spec
// §3). Keeping attachments as views rather than shared ownership of the
// Texture resolves the cyclic-reference concern spec §9 calls out
// between textures and framebuffers: the Context's destroy ordering
// (detach-before-destroy) is what keeps a View from outliving its
// backing storage, not reference counting.
type View struct {
	tex *Texture
}

// ViewOf creates a view over t. t must outlive the view.
func ViewOf(t *Texture) View { return View{tex: t} }

// IsValid reports whether the view references a texture.
func (v View) IsValid() bool { return v.tex != nil }

func (v View) Width() uint16        { return v.tex.Width() }
func (v View) Height() uint16       { return v.tex.Height() }
func (v View) Depth() uint16        { return v.tex.Depth() }
func (v View) Format() color.Format { return v.tex.Format() }
func (v View) WrapMode() WrapMode   { return v.tex.WrapMode() }
func (v View) Order() TexelOrder    { return v.tex.Order() }

func (v View) Texel(x, y, z uint32) [4]float64           { return v.tex.Texel(x, y, z) }
func (v View) SetTexel(x, y, z uint32, c [4]float64)      { v.tex.SetTexel(x, y, z, c) }
func (v View) Nearest(u, v2, w float32) [4]float64        { return v.tex.Nearest(u, v2, w) }
func (v View) Bilinear(u, v2 float32) [4]float64          { return v.tex.Bilinear(u, v2) }
func (v View) Trilinear(u, v2, w float32) [4]float64      { return v.tex.Trilinear(u, v2, w) }
func (v View) Texture() *Texture                          { return v.tex }
