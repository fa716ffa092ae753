package text

import (
	"bytes"
	"image"
	_ "image/jpeg" // JPG strikes
	_ "image/png"  // PNG strikes (sbix, CBDT)
	"math"

	"github.com/go-text/typesetting/font"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF strikes
)

// bitmapRect returns the pixel rectangle of a bitmap glyph relative to its
// origin, y growing downward. It prefers the face extents and falls back
// to the strike size.
func bitmapRect(face *font.Face, gid font.GID, w, h int, scale, fx float32) image.Rectangle {
	if ext, ok := face.GlyphExtents(gid); ok && ext.Width != 0 && ext.Height != 0 {
		left := roundInt(ext.XBearing*scale + fx)
		top := roundInt(-ext.YBearing * scale)
		return image.Rect(left, top, left+roundInt(ext.Width*scale), top+roundInt(-ext.Height*scale))
	}
	left := roundInt(fx)
	ppem, _ := face.Ppem()
	if ppem == 0 {
		return image.Rect(left, -h, left+w, 0)
	}
	k := scale * float32(face.Upem()) / float32(ppem)
	sw, sh := roundInt(float32(w)*k), roundInt(float32(h)*k)
	return image.Rect(left, -sh, left+sw, 0)
}

// rasterBitmap decodes an embedded bitmap strike and scales it to the
// requested size.
func rasterBitmap(face *font.Face, gid font.GID, bm font.GlyphBitmap, scale, fx float32) *GlyphImage {
	r := bitmapRect(face, gid, bm.Width, bm.Height, scale, fx)
	if r.Empty() {
		return nil
	}
	placement := Placement{Left: r.Min.X, Top: -r.Min.Y, Width: r.Dx(), Height: r.Dy()}

	switch bm.Format {
	case font.BlackAndWhite:
		src := image.NewAlpha(image.Rect(0, 0, bm.Width, bm.Height))
		for i := range src.Pix {
			if bitAt(bm.Data, i) {
				src.Pix[i] = 0xff
			}
		}
		dst := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		return &GlyphImage{Content: ContentMask, Placement: placement, Data: dst.Pix}
	case font.PNG, font.JPG, font.TIFF:
		src, _, err := image.Decode(bytes.NewReader(bm.Data))
		if err != nil {
			Logger().Warn("bitmap glyph decode failed", "glyph", gid, "err", err)
			return nil
		}
		dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		return &GlyphImage{Content: ContentColor, Placement: placement, Data: dst.Pix}
	default:
		return nil
	}
}

// bitAt reports whether bit i of a packed, most significant bit first
// bitmap is set.
func bitAt(data []byte, i int) bool {
	if i/8 >= len(data) {
		return false
	}
	return data[i/8]&(0x80>>(i%8)) != 0
}

func roundInt(v float32) int {
	return int(math.Round(float64(v)))
}
