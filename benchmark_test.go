package imagetext

import (
	"image"
	"testing"
)

// BenchmarkMeasure benchmarks measuring a two line block.
func BenchmarkMeasure(b *testing.B) {
	p := testPainter(b)
	block := StringBlock("hello world\nhere is a new line")
	for b.Loop() {
		_, _ = p.Measure(block)
	}
}

// BenchmarkDrawText benchmarks drawing a two line block with a warm glyph
// cache.
func BenchmarkDrawText(b *testing.B) {
	p := testPainter(b)
	dst := image.NewRGBA(image.Rect(0, 0, 512, 512))
	block := StringBlock("hello world\nhere is a new line")
	for b.Loop() {
		p.DrawText(dst, block)
	}
}

// BenchmarkDrawText_Centered benchmarks a block that is shaped twice.
func BenchmarkDrawText_Centered(b *testing.B) {
	p := testPainter(b)
	dst := image.NewRGBA(image.Rect(0, 0, 512, 512))
	block := StringBlock("hello world\nhere is a new line").
		WithTextAlign(TextAlignCenter).
		WithAlignment(TextBlockPosition{X: CenterAtCanvasCenter(), Y: CenterAtCanvasCenter()})
	for b.Loop() {
		p.DrawText(dst, block)
	}
}
