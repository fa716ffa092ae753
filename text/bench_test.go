package text

import (
	"strings"
	"testing"
)

const benchParagraph = "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs."

// BenchmarkShape_Line benchmarks shaping a single unwrapped line.
func BenchmarkShape_Line(b *testing.B) {
	buf := testBuffer(b)
	for b.Loop() {
		buf.SetText(benchParagraph, DefaultAttrs(), ShapingAdvanced)
		buf.ShapeUntilScroll(true)
	}
}

// BenchmarkShape_Wrapped benchmarks shaping several paragraphs wrapped at a
// fixed width.
func BenchmarkShape_Wrapped(b *testing.B) {
	buf := testBuffer(b)
	buf.SetSize(ptr(300), nil)
	src := strings.Repeat(benchParagraph+"\n", 8)
	for b.Loop() {
		buf.SetText(src, DefaultAttrs(), ShapingAdvanced)
		buf.ShapeUntilScroll(true)
	}
}

// BenchmarkShape_Basic benchmarks shaping without bidi and script analysis.
func BenchmarkShape_Basic(b *testing.B) {
	buf := testBuffer(b)
	for b.Loop() {
		buf.SetText(benchParagraph, DefaultAttrs(), ShapingBasic)
		buf.ShapeUntilScroll(true)
	}
}

// BenchmarkLayoutRuns benchmarks iterating an already shaped buffer.
func BenchmarkLayoutRuns(b *testing.B) {
	buf := testBuffer(b)
	buf.SetSize(ptr(300), nil)
	buf.SetText(strings.Repeat(benchParagraph+"\n", 8), DefaultAttrs(), ShapingAdvanced)
	buf.ShapeUntilScroll(true)
	for b.Loop() {
		_ = buf.LayoutRuns()
	}
}

// BenchmarkGlyphCache_Hit benchmarks fetching a cached glyph.
func BenchmarkGlyphCache_Hit(b *testing.B) {
	key := glyphKey(b, testFontSystem(b), 'g', 32, 0)
	c := NewGlyphCache()
	c.Get(key)
	for b.Loop() {
		_ = c.Get(key)
	}
}

// BenchmarkRasterize_Outline benchmarks rasterizing an outline glyph.
func BenchmarkRasterize_Outline(b *testing.B) {
	key := glyphKey(b, testFontSystem(b), 'g', 32, 0)
	c := NewGlyphCache()
	for b.Loop() {
		_ = c.Rasterize(key)
	}
}

// BenchmarkRasterize_LCD benchmarks rasterizing an outline glyph for LCD.
func BenchmarkRasterize_LCD(b *testing.B) {
	key := glyphKey(b, testFontSystem(b), 'g', 32, 0)
	c := NewGlyphCache(WithLCD(true))
	for b.Loop() {
		_ = c.Rasterize(key)
	}
}
