package segment

import "image"

// Extract copies one region out of src into a freshly allocated sprite.
// The sprite is sized to the region's bounding box plus padding fully
// transparent pixels on every side. Member pixels keep their exact source
// RGBA values; pixels inside the box that are not members (holes,
// concavities) stay fully transparent.
//
// A region always has at least one member; receiving an empty one is a
// labeler bug and panics.
func Extract(src *image.NRGBA, reg Region, padding int) *image.NRGBA {
	if len(reg.Pixels) == 0 {
		panic("segment: extract from empty region")
	}
	if padding < 0 {
		padding = 0
	}

	w := reg.Bounds.Dx() + 2*padding
	h := reg.Bounds.Dy() + 2*padding
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	for _, p := range reg.Pixels {
		si := src.PixOffset(p.X, p.Y)
		di := dst.PixOffset(p.X-reg.Bounds.Min.X+padding, p.Y-reg.Bounds.Min.Y+padding)
		copy(dst.Pix[di:di+4], src.Pix[si:si+4])
	}

	return dst
}
