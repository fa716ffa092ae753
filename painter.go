package imagetext

import (
	"image/draw"
	"sync"

	"github.com/gogpu/imagetext/text"
)

// Painter draws text blocks onto images. It owns a font database and a
// glyph cache, both of which are mutated while drawing.
//
// A Painter must not be used concurrently. Use one Painter per goroutine or
// guard a shared one with a mutex.
type Painter struct {
	fonts  *text.FontSystem
	glyphs *text.GlyphCache
	locale string
}

// NewPainter creates a painter. By default it indexes the system fonts,
// registers the Go fonts as fallback and detects the locale from the
// environment.
func NewPainter(opts ...Option) (*Painter, error) {
	cfg := defaultPainterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	locale := cfg.locale
	switch {
	case locale != "":
		if tag, ok := normalizeLocale(locale); ok {
			locale = tag
		}
	case cfg.fontSystem != nil:
		locale = cfg.fontSystem.Locale()
	default:
		locale = DetectLocale()
	}

	fonts, err := buildFontSystem(cfg, locale)
	if err != nil {
		return nil, err
	}
	p := &Painter{
		fonts:  fonts,
		glyphs: text.NewGlyphCache(text.WithCacheSize(cfg.glyphCacheSize), text.WithLCD(cfg.lcd)),
		locale: fonts.Locale(),
	}
	Logger().Info("painter ready",
		"locale", p.locale,
		"systemFonts", fonts.HasSystemFonts(),
		"fonts", fonts.Sources(),
		"lcd", cfg.lcd)
	return p, nil
}

// Locale returns the locale used for shaping.
func (p *Painter) Locale() string { return p.locale }

// FontSystem returns the font database of the painter.
func (p *Painter) FontSystem() *text.FontSystem { return p.fonts }

// GlyphCacheStats returns glyph cache usage counters.
func (p *Painter) GlyphCacheStats() text.CacheStats { return p.glyphs.Stats() }

// Measure returns the width and height block takes once laid out. It does
// not draw anything.
func (p *Painter) Measure(block TextBlock) (width, height float32) {
	return measure(p.shapeBlock(block))
}

// DrawText lays out block, places it on dst according to its alignment and
// draws its glyphs with source-over blending. Glyphs outside dst are
// clipped; glyphs without an image are skipped.
func (p *Painter) DrawText(dst draw.Image, block TextBlock) {
	buf := p.shapeBlock(block)
	runs := buf.LayoutRuns()
	if len(runs) == 0 {
		return
	}
	w, h := measuredWidth(runs), measuredHeight(runs, buf.Metrics())
	b := dst.Bounds()
	x, y := Resolve(block.Alignment, w, h, b.Dx(), b.Dy())
	x, y = x+float32(b.Min.X), y+float32(b.Min.Y)
	Logger().Debug("draw text block", "block", block, "width", w, "height", h, "x", x, "y", y)
	composite(dst, [2]float32{x, y}, runs, p.glyphs)
}

var (
	defaultPainterOnce sync.Once
	defaultPainterMu   sync.Mutex
	defaultPainter     *Painter
	defaultPainterErr  error
)

// DrawText draws block onto dst with a shared painter built from the
// system fonts on first use.
func DrawText(dst draw.Image, block TextBlock) error {
	defaultPainterOnce.Do(func() {
		defaultPainter, defaultPainterErr = NewPainter()
	})
	if defaultPainterErr != nil {
		return defaultPainterErr
	}
	defaultPainterMu.Lock()
	defer defaultPainterMu.Unlock()
	defaultPainter.DrawText(dst, block)
	return nil
}
