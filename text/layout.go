package text

import (
	"image/color"
	"math"

	"github.com/go-text/typesetting/font"
)

// LayoutGlyph is a shaped glyph positioned within its line. Positions are
// in pixels relative to the line origin at the left edge of the buffer.
type LayoutGlyph struct {
	// Start and End are the rune range of the line text the glyph covers.
	Start, End int
	// FontSize is the em size the glyph was shaped at.
	FontSize float32
	// Face is the face that provides the glyph.
	Face    *font.Face
	GlyphID font.GID
	// X is the pen position of the glyph and W its advance.
	X, Y, W float32
	// XOffset and YOffset are the shaper offsets from the pen position.
	// YOffset grows upward.
	XOffset, YOffset float32
	// Level is the bidi embedding level: odd for right-to-left glyphs.
	Level uint8
	// ColorOpt overrides the default text color when set.
	ColorOpt *color.RGBA
	// Metadata is copied from the span attributes.
	Metadata int
}

// PhysicalGlyph is a glyph placed on the pixel grid.
type PhysicalGlyph struct {
	CacheKey CacheKey
	// X and Y are the whole pixel origin of the glyph image.
	X, Y int
}

// Physical places the glyph on the pixel grid after translating by offset
// and scaling by scale. The fractional part of x is kept in the cache key
// as a subpixel bin. y is floored to a whole pixel so that baselines above
// and below zero snap in the same direction.
func (g LayoutGlyph) Physical(offset [2]float32, scale float32) PhysicalGlyph {
	x := (g.X+g.XOffset)*scale + offset[0]
	y := float32(math.Floor(float64((g.Y-g.YOffset)*scale + offset[1])))
	key, ix, iy := NewCacheKey(g.Face, g.GlyphID, g.FontSize*scale, x, y)
	return PhysicalGlyph{CacheKey: key, X: ix, Y: iy}
}

// RTL reports whether the glyph belongs to a right-to-left run.
func (g LayoutGlyph) RTL() bool { return g.Level%2 == 1 }

// LayoutLine is one visual line of a wrapped paragraph.
type LayoutLine struct {
	// W is the width of the line, excluding trailing whitespace.
	W float32
	// MaxAscent and MaxDescent are the largest ascent and descent of the
	// runs on the line. Both are positive.
	MaxAscent, MaxDescent float32
	// Glyphs are in visual order.
	Glyphs []LayoutGlyph
}

// LayoutRun is a laid out visual line together with its vertical
// placement in the buffer.
type LayoutRun struct {
	// LineIndex is the index of the paragraph the run belongs to.
	LineIndex int
	// Text is the paragraph text.
	Text string
	// RTL reports a right-to-left paragraph.
	RTL bool
	// Glyphs are in visual order.
	Glyphs []LayoutGlyph
	// LineY is the baseline.
	LineY float32
	// LineTop is the top of the line box.
	LineTop float32
	// LineHeight is the height of the line box.
	LineHeight float32
	// LineW is the width of the line.
	LineW float32
}

// HighlightBounds returns the horizontal extent of the glyphs in the rune
// range [start, end) of the run text, or ok false if none are covered.
func (r LayoutRun) HighlightBounds(start, end int) (x, w float32, ok bool) {
	minX, maxX := float32(math.Inf(1)), float32(math.Inf(-1))
	for _, g := range r.Glyphs {
		if g.End <= start || g.Start >= end {
			continue
		}
		minX = min(minX, g.X)
		maxX = max(maxX, g.X+g.W)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return minX, maxX - minX, true
}
