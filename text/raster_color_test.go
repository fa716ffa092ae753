package text

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-text/typesetting/font"
)

// colorGlyph returns Go Regular with the glyph of 'H' and the scale of a
// 32px size, to stand in for a face carrying bitmap or SVG glyphs.
func colorGlyph(t *testing.T) (*font.Face, font.GID, float32) {
	t.Helper()

	face := testFontSystem(t).faceFor(DefaultAttrs(), 'H')
	if face == nil {
		t.Fatal("faceFor('H') = nil")
	}
	gid, ok := face.NominalGlyph('H')
	if !ok {
		t.Fatal("no glyph for 'H'")
	}
	return face, gid, 32 / float32(face.Upem())
}

// wantPlacement is the extents box of gid at scale.
func wantPlacement(t *testing.T, face *font.Face, gid font.GID, scale float32) Placement {
	t.Helper()

	ext, ok := face.GlyphExtents(gid)
	if !ok {
		t.Fatal("GlyphExtents('H') not found")
	}
	return Placement{
		Left:   roundInt(ext.XBearing * scale),
		Top:    -roundInt(-ext.YBearing * scale),
		Width:  roundInt(ext.Width * scale),
		Height: roundInt(-ext.Height * scale),
	}
}

func pixelAt(img *GlyphImage, x, y int) color.RGBA {
	i := (y*img.Placement.Width + x) * 4
	return color.RGBA{R: img.Data[i], G: img.Data[i+1], B: img.Data[i+2], A: img.Data[i+3]}
}

func encodePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()

	src := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			src.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

// TestRasterBitmap_PNG tests that a PNG strike is scaled into the extents
// box as premultiplied color.
func TestRasterBitmap_PNG(t *testing.T) {
	face, gid, scale := colorGlyph(t)
	bm := font.GlyphBitmap{
		Width:  8,
		Height: 8,
		Format: font.PNG,
		Data:   encodePNG(t, 8, 8, color.NRGBA{R: 0xff, A: 0xff}),
	}

	img := rasterBitmap(face, gid, bm, scale, 0)
	if img == nil {
		t.Fatal("rasterBitmap(PNG) = nil")
	}
	if img.Content != ContentColor {
		t.Errorf("Content = %s, want Color", img.Content)
	}
	if want := wantPlacement(t, face, gid, scale); img.Placement != want {
		t.Errorf("Placement = %+v, want %+v", img.Placement, want)
	}
	p := img.Placement
	if got := len(img.Data); got != p.Width*p.Height*4 {
		t.Fatalf("len(Data) = %d, want %d", got, p.Width*p.Height*4)
	}
	for _, pt := range []image.Point{{0, 0}, {p.Width / 2, p.Height / 2}, {p.Width - 1, p.Height - 1}} {
		if got, want := pixelAt(img, pt.X, pt.Y), (color.RGBA{R: 0xff, A: 0xff}); got != want {
			t.Errorf("pixel %v = %v, want %v", pt, got, want)
		}
	}
}

// TestRasterBitmap_Subpixel tests that the fractional pen offset moves a
// strike by whole pixels without resampling it.
func TestRasterBitmap_Subpixel(t *testing.T) {
	face, gid, scale := colorGlyph(t)
	bm := font.GlyphBitmap{Width: 8, Height: 8, Format: font.PNG, Data: encodePNG(t, 8, 8, color.NRGBA{B: 0xff, A: 0xff})}

	base := rasterBitmap(face, gid, bm, scale, 0)
	shifted := rasterBitmap(face, gid, bm, scale, 0.75)
	if base == nil || shifted == nil {
		t.Fatal("rasterBitmap(PNG) = nil")
	}
	ext, _ := face.GlyphExtents(gid)
	if got, want := shifted.Placement.Left, roundInt(ext.XBearing*scale+0.75); got != want {
		t.Errorf("Left at x+0.75 = %d, want %d", got, want)
	}
	if shifted.Placement.Width != base.Placement.Width {
		t.Errorf("Width at x+0.75 = %d, want %d", shifted.Placement.Width, base.Placement.Width)
	}
}

// TestRasterBitmap_BlackAndWhite tests that a packed 1-bit strike becomes a
// coverage mask.
func TestRasterBitmap_BlackAndWhite(t *testing.T) {
	face, gid, scale := colorGlyph(t)
	bm := font.GlyphBitmap{
		Width:  8,
		Height: 8,
		Format: font.BlackAndWhite,
		Data:   bytes.Repeat([]byte{0xff}, 8),
	}

	img := rasterBitmap(face, gid, bm, scale, 0)
	if img == nil {
		t.Fatal("rasterBitmap(BlackAndWhite) = nil")
	}
	if img.Content != ContentMask {
		t.Errorf("Content = %s, want Mask", img.Content)
	}
	p := img.Placement
	if got := len(img.Data); got != p.Width*p.Height {
		t.Fatalf("len(Data) = %d, want %d", got, p.Width*p.Height)
	}
	for i, v := range img.Data {
		if v != 0xff {
			t.Fatalf("Data[%d] = %#x, want 0xff", i, v)
		}
	}
}

func TestRasterBitmap_Invalid(t *testing.T) {
	face, gid, scale := colorGlyph(t)
	tests := []struct {
		name string
		bm   font.GlyphBitmap
	}{
		{"corrupt png", font.GlyphBitmap{Width: 8, Height: 8, Format: font.PNG, Data: []byte("not a png")}},
		{"corrupt jpg", font.GlyphBitmap{Width: 8, Height: 8, Format: font.JPG, Data: nil}},
		{"unknown format", font.GlyphBitmap{Width: 8, Height: 8, Format: 0xff}},
	}
	for _, tt := range tests {
		if img := rasterBitmap(face, gid, tt.bm, scale, 0); img != nil {
			t.Errorf("%s: rasterBitmap() = %s, want nil", tt.name, img)
		}
	}
}

// TestRasterSVG tests that an SVG glyph document in font units is drawn
// into the extents box.
func TestRasterSVG(t *testing.T) {
	face, gid, scale := colorGlyph(t)
	doc := `<svg xmlns="http://www.w3.org/2000/svg">` +
		`<rect x="0" y="-2000" width="3000" height="3000" fill="#00ff00"/></svg>`

	img := rasterSVG(face, gid, font.GlyphSVG{Source: []byte(doc)}, scale, 0)
	if img == nil {
		t.Fatal("rasterSVG() = nil")
	}
	if img.Content != ContentColor {
		t.Errorf("Content = %s, want Color", img.Content)
	}
	if want := wantPlacement(t, face, gid, scale); img.Placement != want {
		t.Errorf("Placement = %+v, want %+v", img.Placement, want)
	}

	p := img.Placement
	if c := pixelAt(img, p.Width/2, p.Height/2); c.R != 0 || c.B != 0 || c.G < 0xf0 || c.A < 0xf0 {
		t.Errorf("center pixel = %v, want opaque green", c)
	}
	green := 0
	for y := range p.Height {
		for x := range p.Width {
			if c := pixelAt(img, x, y); c.G > 0x80 && c.R == 0 && c.B == 0 {
				green++
			}
		}
	}
	if green < p.Width*p.Height/2 {
		t.Errorf("green pixels = %d of %d, want most of the box", green, p.Width*p.Height)
	}
}

// TestRasterSVG_Empty tests that a document without shapes yields a
// transparent image of the glyph box.
func TestRasterSVG_Empty(t *testing.T) {
	face, gid, scale := colorGlyph(t)
	img := rasterSVG(face, gid, font.GlyphSVG{Source: []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`)}, scale, 0)
	if img == nil {
		t.Fatal("rasterSVG() = nil")
	}
	for i, v := range img.Data {
		if v != 0 {
			t.Fatalf("Data[%d] = %#x, want transparent", i, v)
		}
	}
}
