// Package text is the shaping engine behind imagetext.
//
// It turns styled rich text into positioned glyph runs and rasterizes
// those glyphs on demand:
//
//   - FontSystem: the font database (system discovery plus registered
//     font data) and face resolution with fallback, backed by
//     go-text/typesetting/fontscan.
//   - Buffer: rich text split into paragraphs, a soft box size, per-line
//     alignment and incremental layout (HarfBuzz shaping, bidi and script
//     segmentation, line wrapping).
//   - LayoutRun / LayoutGlyph: the laid-out result, one run per visual line.
//   - GlyphCache: rasterized glyph images keyed by CacheKey, covering
//     outline, bitmap (PNG/JPEG/TIFF), and SVG glyphs.
//
// # Example
//
//	fs := text.NewFontSystem("en-US")
//	if err := fs.AddFontData("", goregular.TTF); err != nil {
//	    log.Fatal(err)
//	}
//
//	buf := text.NewBuffer(fs, text.Relative(32, 1.2))
//	buf.SetText("Hello, world", text.DefaultAttrs(), text.ShapingAdvanced)
//	buf.ShapeUntilScroll(true)
//
//	cache := text.NewGlyphCache()
//	for _, run := range buf.LayoutRuns() {
//	    for _, g := range run.Glyphs {
//	        img := cache.Get(g.Physical([2]float32{0, 0}, 1).CacheKey)
//	        _ = img // composite it
//	    }
//	}
//
// None of the types in this package are safe for concurrent use.
package text
