package text

import (
	"image"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// lcdSamples is the number of horizontal coverage samples per pixel of a
// subpixel mask.
const lcdSamples = 3

// outlineBounds returns the pixel bounds of out scaled by scale and shifted
// by (fx, fy), with y growing downward.
func outlineBounds(out font.GlyphOutline, scale, fx, fy float32) image.Rectangle {
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for _, s := range out.Segments {
		for _, p := range s.ArgsSlice() {
			x, y := p.X*scale+fx, -p.Y*scale+fy
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
}

// rasterOutline fills out into a coverage mask. With LCD enabled the mask
// holds three samples per pixel.
func (c *GlyphCache) rasterOutline(out font.GlyphOutline, scale, fx, fy float32) *GlyphImage {
	r := outlineBounds(out, scale, fx, fy)
	if r.Empty() {
		return nil
	}
	sx := float32(1)
	if c.lcd {
		sx = lcdSamples
	}
	w, h := r.Dx()*int(sx), r.Dy()
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	pt := func(p ot.SegmentPoint) (float32, float32) {
		return (p.X*scale + fx - ox) * sx, -p.Y*scale + fy - oy
	}

	c.z.Reset(w, h)
	open := false
	for _, s := range out.Segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				c.z.ClosePath()
			}
			c.z.MoveTo(pt(s.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			c.z.LineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			c.z.QuadTo(bx, by, cx, cy)
		case ot.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			c.z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		c.z.ClosePath()
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	c.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	img := &GlyphImage{
		Content: ContentMask,
		Placement: Placement{
			Left:   r.Min.X,
			Top:    -r.Min.Y,
			Width:  r.Dx(),
			Height: r.Dy(),
		},
		Data: mask.Pix,
	}
	if c.lcd {
		img.Content = ContentSubpixelMask
	}
	return img
}
