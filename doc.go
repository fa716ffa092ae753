// Package imagetext draws styled text blocks onto raster images.
//
// # Overview
//
// A [TextBlock] is a sequence of [Span] values, each with its own size,
// weight, color and optional font family, plus block-level constraints:
// an optional maximum width and height, a line alignment and a two-axis
// placement on the target surface. A [Painter] shapes the block with font
// fallback, bidirectional text and emoji support, measures it, places it
// and composites every glyph onto an [image/draw.Image] with source-over
// blending.
//
// # Quick Start
//
//	p, err := imagetext.NewPainter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	img := image.NewRGBA(image.Rect(0, 0, 512, 512))
//	block := imagetext.NewTextBlock(
//	    imagetext.NewSpan("hello world\n"),
//	    imagetext.NewSpan("here is a new line").WithColor(color.RGBA{R: 255, A: 255}),
//	).WithAlignment(imagetext.TextBlockPosition{
//	    X: imagetext.CenterAtCanvasCenter(),
//	    Y: imagetext.CenterAtCanvasCenter(),
//	})
//	p.DrawText(img, block)
//
// # Placement
//
// Each axis of [TextBlockPosition] anchors the block independently:
// [StartAt], [EndAt] and [CenterAt] put the start edge, end edge or middle
// of the block at a coordinate, and [CenterAtCanvasCenter] centers it on
// the surface.
//
// # Line Alignment
//
// Lines are aligned within the block with [TextAlign]. Every alignment
// other than left needs the width of the block, so such blocks are laid out
// twice: once to measure them and once against the measured width.
//
// # Fonts
//
// By default a painter indexes the system fonts and keeps the Go fonts as
// last-resort fallback. [WithoutSystemFonts], [WithFontData],
// [WithFontFiles] and [WithFontSystem] control the font collection.
//
// # Concurrency
//
// A Painter caches shaping state and rasterized glyphs and must not be used
// from several goroutines at once. The package-level [DrawText] serializes
// calls to its shared painter.
//
// # Logging
//
// imagetext is silent by default. [SetLogger] routes its diagnostics and
// those of package text to a [log/slog] logger.
package imagetext
