package imagetext

import (
	"image"
	"image/color"
	"testing"
)

// TestNewPainter tests painter creation with the bundled fonts only.
func TestNewPainter(t *testing.T) {
	p := testPainter(t)
	if got := p.Locale(); got != "en-US" {
		t.Errorf("Locale() = %q, want %q", got, "en-US")
	}
	if p.FontSystem().HasSystemFonts() {
		t.Error("HasSystemFonts() = true, want false")
	}
	if p.FontSystem().IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

// TestNewPainter_Locale tests locale normalization.
func TestNewPainter_Locale(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"de_DE", "de-DE"},
		{" fr-CA ", "fr-CA"},
		{"C", "C"},
	}
	for _, tt := range tests {
		p := testPainter(t, WithLocale(tt.in))
		if got := p.Locale(); got != tt.want {
			t.Errorf("WithLocale(%q): Locale() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestPainter_MeasureEmpty tests that a block without spans measures zero
// and draws nothing.
func TestPainter_MeasureEmpty(t *testing.T) {
	p := testPainter(t)
	for _, b := range []TextBlock{NewTextBlock(), StringBlock("")} {
		w, h := p.Measure(b)
		if b.Spans == nil && (w != 0 || h != 0) {
			t.Errorf("Measure(%s) = (%v, %v), want (0, 0)", b, w, h)
		}
		dst := image.NewRGBA(image.Rect(0, 0, 32, 32))
		p.DrawText(dst, b)
		if r := inkBounds(dst); !r.Empty() {
			t.Errorf("DrawText(%s) ink = %v, want none", b, r)
		}
	}
}

// TestPainter_MeasureIdempotent tests that measuring twice gives the same
// extent.
func TestPainter_MeasureIdempotent(t *testing.T) {
	p := testPainter(t)
	b := StringBlock("measure me twice").WithTextAlign(TextAlignCenter)
	w1, h1 := p.Measure(b)
	w2, h2 := p.Measure(b)
	if w1 != w2 || h1 != h2 {
		t.Errorf("Measure() = (%v, %v) then (%v, %v)", w1, h1, w2, h2)
	}
	if w1 <= 0 || h1 != DefaultFontSize {
		t.Errorf("Measure() = (%v, %v), want positive width and height %v", w1, h1, DefaultFontSize)
	}
}

// TestPainter_MeasureConstraints tests wrapping and clipping.
func TestPainter_MeasureConstraints(t *testing.T) {
	p := testPainter(t)

	free := StringBlock("hello world hello world")
	fw, fh := p.Measure(free)
	if fh != 32 {
		t.Errorf("unwrapped height = %v, want 32", fh)
	}

	w, h := p.Measure(free.WithMaxWidth(150))
	if w > 150 {
		t.Errorf("wrapped width = %v, want <= 150", w)
	}
	if w >= fw || h < 64 {
		t.Errorf("wrapped = (%v, %v), want narrower than %v and at least two lines", w, h, fw)
	}

	_, h = p.Measure(StringBlock("one\ntwo\nthree").WithMaxHeight(40))
	if h != 32 {
		t.Errorf("clipped height = %v, want 32", h)
	}

	_, h = p.Measure(NewTextBlock(NewSpan("one\ntwo").WithLineHeight(1.5)))
	if h != 96 {
		t.Errorf("line height 1.5 height = %v, want 96", h)
	}
}

// TestPainter_GlyphCacheReuse tests that drawing a block twice rasterizes
// each glyph once.
func TestPainter_GlyphCacheReuse(t *testing.T) {
	p := testPainter(t)
	dst := image.NewRGBA(image.Rect(0, 0, 256, 64))
	b := StringBlock("abc")

	p.DrawText(dst, b)
	first := p.GlyphCacheStats()
	p.DrawText(dst, b)
	second := p.GlyphCacheStats()

	if second.Len != first.Len {
		t.Errorf("Len = %d after second draw, want %d", second.Len, first.Len)
	}
	if second.Hits <= first.Hits {
		t.Errorf("Hits = %d after second draw, want more than %d", second.Hits, first.Hits)
	}
}

// TestPainter_DrawTextSubImage tests that blocks are placed relative to the
// bounds of the destination.
func TestPainter_DrawTextSubImage(t *testing.T) {
	p := testPainter(t)
	full := image.NewRGBA(image.Rect(0, 0, 200, 100))
	sub := full.SubImage(image.Rect(100, 50, 200, 100)).(*image.RGBA)

	p.DrawText(sub, StringBlock("H"))

	r := inkBounds(full)
	if r.Empty() {
		t.Fatal("nothing drawn")
	}
	if !r.In(image.Rect(100, 50, 200, 100)) {
		t.Errorf("ink = %v, want inside the sub-image", r)
	}
}

// TestPainter_SpanColors tests that every span keeps its color.
func TestPainter_SpanColors(t *testing.T) {
	p := testPainter(t)
	red := color.RGBA{R: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	dst := image.NewRGBA(image.Rect(0, 0, 200, 40))

	p.DrawText(dst, NewTextBlock(NewSpan("HH").WithColor(red), NewSpan("HH").WithColor(blue)))

	var reds, blues int
	for i := 0; i < len(dst.Pix); i += 4 {
		px := dst.Pix[i : i+4]
		switch {
		case px[3] == 0:
		case px[0] > 0 && px[2] == 0:
			reds++
		case px[2] > 0 && px[0] == 0:
			blues++
		}
	}
	if reds == 0 || blues == 0 {
		t.Errorf("red pixels = %d, blue pixels = %d, want both", reds, blues)
	}
}
