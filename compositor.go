package imagetext

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/imagetext/internal/blend"
	"github.com/gogpu/imagetext/text"
)

// GlyphSource supplies rasterized glyphs. *text.GlyphCache implements it.
// Get returns nil for glyphs with nothing to draw.
type GlyphSource interface {
	Get(key text.CacheKey) *text.GlyphImage
}

// defaultTextColor tints glyphs of spans without a color.
var defaultTextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// composite draws every glyph of runs onto dst with the block's top-left
// corner at origin.
func composite(dst draw.Image, origin [2]float32, runs []text.LayoutRun, glyphs GlyphSource) {
	for _, run := range runs {
		lineY := int(math.Round(float64(run.LineY)))
		for _, g := range run.Glyphs {
			phys := g.Physical(origin, 1)
			img := glyphs.Get(phys.CacheKey)
			if img.Empty() {
				continue
			}
			x := phys.X + img.Placement.Left
			y := lineY + phys.Y - img.Placement.Top

			c := defaultTextColor
			if g.ColorOpt != nil {
				c = *g.ColorOpt
			}
			patch := glyphPatch(img, c)
			if patch == nil {
				continue
			}
			blend.Overlay(dst, patch, x, y)
		}
	}
}

// glyphPatch converts a glyph image into an image ready for overlay. Masks
// are tinted with c and keep their coverage as alpha; color glyphs are used
// as they are.
func glyphPatch(img *text.GlyphImage, c color.RGBA) image.Image {
	w, h := img.Placement.Width, img.Placement.Height
	if len(img.Data) < w*h*img.Content.BytesPerPixel() {
		Logger().Debug("short glyph image", "glyph", img)
		return nil
	}
	r := image.Rect(0, 0, w, h)

	switch img.Content {
	case text.ContentColor:
		return &image.RGBA{Pix: img.Data[:w*h*4], Stride: w * 4, Rect: r}
	case text.ContentSubpixelMask:
		patch := image.NewNRGBA(r)
		for i := range w * h {
			s := img.Data[i*3 : i*3+3]
			a := (uint32(s[0]) + uint32(s[1]) + uint32(s[2]) + 1) / 3
			setTint(patch.Pix[i*4:i*4+4], c, byte(a))
		}
		return patch
	default:
		patch := image.NewNRGBA(r)
		for i, a := range img.Data[:w*h] {
			setTint(patch.Pix[i*4:i*4+4], c, a)
		}
		return patch
	}
}

func setTint(px []byte, c color.RGBA, a byte) {
	px[0], px[1], px[2], px[3] = c.R, c.G, c.B, a
}
