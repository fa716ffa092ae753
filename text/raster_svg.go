package text

import (
	"bytes"
	"image"

	"github.com/go-text/typesetting/font"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// rasterSVG renders an OpenType SVG glyph. SVG glyph documents use font
// units with y growing downward and the origin on the baseline.
func rasterSVG(face *font.Face, gid font.GID, g font.GlyphSVG, scale, fx float32) *GlyphImage {
	ext, ok := face.GlyphExtents(gid)
	if !ok || ext.Width == 0 || ext.Height == 0 {
		return nil
	}
	left := roundInt(ext.XBearing*scale + fx)
	top := roundInt(-ext.YBearing * scale)
	w, h := roundInt(ext.Width*scale), roundInt(-ext.Height*scale)
	if w <= 0 || h <= 0 {
		return nil
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(g.Source), oksvg.IgnoreErrorMode)
	if err != nil {
		Logger().Debug("svg glyph parse failed", "glyph", gid, "err", err)
		return nil
	}
	icon.Transform = rasterx.Identity.
		Translate(float64(fx)-float64(left), -float64(top)).
		Scale(float64(scale), float64(scale))

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, out, out.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return &GlyphImage{
		Content:   ContentColor,
		Placement: Placement{Left: left, Top: -top, Width: w, Height: h},
		Data:      out.Pix,
	}
}
