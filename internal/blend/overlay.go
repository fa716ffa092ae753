package blend

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Overlay composites src onto dst so that src's top-left pixel lands at
// (x, y) in dst coordinates. Blending is source-over. Pixels falling outside
// dst.Bounds() are clipped; a patch entirely off-surface is a no-op.
//
// *image.RGBA destinations with *image.RGBA or *image.NRGBA sources take a
// direct path. Every other combination goes through x/image/draw with the
// Over operator.
func Overlay(dst xdraw.Image, src image.Image, x, y int) {
	sb := src.Bounds()
	target := sb.Sub(sb.Min).Add(image.Pt(x, y))
	clip := target.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	sp := sb.Min.Add(clip.Min.Sub(target.Min))

	if d, ok := dst.(*image.RGBA); ok {
		switch s := src.(type) {
		case *image.NRGBA:
			overlayNRGBA(d, clip, s, sp)
			return
		case *image.RGBA:
			overlayRGBA(d, clip, s, sp)
			return
		}
	}
	xdraw.Draw(dst, clip, src, sp, xdraw.Over)
}

// overlayRGBA blends a premultiplied patch.
func overlayRGBA(dst *image.RGBA, r image.Rectangle, src *image.RGBA, sp image.Point) {
	w := r.Dx() * 4
	for row := 0; row < r.Dy(); row++ {
		di := dst.PixOffset(r.Min.X, r.Min.Y+row)
		si := src.PixOffset(sp.X, sp.Y+row)
		d := dst.Pix[di : di+w : di+w]
		s := src.Pix[si : si+w : si+w]
		for i := 0; i < w; i += 4 {
			sa := s[i+3]
			switch sa {
			case 0:
				continue
			case 255:
				copy(d[i:i+4], s[i:i+4])
				continue
			}
			d[i], d[i+1], d[i+2], d[i+3] = sourceOver(
				s[i], s[i+1], s[i+2], sa,
				d[i], d[i+1], d[i+2], d[i+3])
		}
	}
}

// overlayNRGBA blends a straight-alpha patch, premultiplying each source
// pixel on the fly.
func overlayNRGBA(dst *image.RGBA, r image.Rectangle, src *image.NRGBA, sp image.Point) {
	w := r.Dx() * 4
	for row := 0; row < r.Dy(); row++ {
		di := dst.PixOffset(r.Min.X, r.Min.Y+row)
		si := src.PixOffset(sp.X, sp.Y+row)
		d := dst.Pix[di : di+w : di+w]
		s := src.Pix[si : si+w : si+w]
		for i := 0; i < w; i += 4 {
			if s[i+3] == 0 {
				continue
			}
			sr, sg, sb, sa := premultiply(s[i], s[i+1], s[i+2], s[i+3])
			d[i], d[i+1], d[i+2], d[i+3] = sourceOver(
				sr, sg, sb, sa,
				d[i], d[i+1], d[i+2], d[i+3])
		}
	}
}
