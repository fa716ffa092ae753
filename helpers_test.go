package imagetext

import (
	"image"
	"image/color"
	"testing"
)

// testPainter returns a painter using only the bundled Go fonts.
func testPainter(t testing.TB, opts ...Option) *Painter {
	t.Helper()
	opts = append([]Option{WithoutSystemFonts(), WithLocale("en-US")}, opts...)
	p, err := NewPainter(opts...)
	if err != nil {
		t.Fatalf("NewPainter() error = %v", err)
	}
	return p
}

// inkBounds returns the bounds of the pixels of img with a non-zero alpha.
func inkBounds(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			r = r.Union(image.Rect(x, y, x+1, y+1))
		}
	}
	return r
}

// filled returns a w by h image of c.
func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
