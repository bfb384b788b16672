package swrast

import (
	"image"
	"image/color"

	ximagedraw "golang.org/x/image/draw"
)

// TextureToImage renders one Z-layer of a texture into a standard
// image.RGBA (spec §4.2's texel read path, surfaced as a standard
// library image for debug dumps and test assertions).
func (c *Context) TextureToImage(h TextureHandle, z uint32) (image.Image, bool) {
	tex, ok := c.texture(h)
	if !ok {
		return nil, false
	}
	w, ht := tex.Width(), tex.Height()
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(ht)))
	for y := uint32(0); y < uint32(ht); y++ {
		for x := uint32(0); x < uint32(w); x++ {
			v := tex.Texel(x, y, z)
			img.SetNRGBA(int(x), int(y), color.NRGBA{
				R: toByte(v[0]), G: toByte(v[1]), B: toByte(v[2]), A: toByte(v[3]),
			})
		}
	}
	return img, true
}

// RescaleImage nearest-neighbor scales src into a newly allocated
// (w,h)-sized image.
func RescaleImage(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	ximagedraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), ximagedraw.Over, nil)
	return dst
}
