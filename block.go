package imagetext

import (
	"fmt"
	"image/color"
)

// DefaultFontSize is the font size of spans created by NewSpan and of the
// base metrics of an empty block, in pixels.
const DefaultFontSize float32 = 32

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Weight is a font weight on the usual 100 to 900 scale.
type Weight uint16

// Common font weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Span is a run of text sharing one style.
type Span struct {
	// Text may contain line feeds, which start new lines.
	Text string
	// FontSize is the em size in pixels.
	FontSize float32
	Weight   Weight
	// Color is premultiplied 8-bit RGBA.
	Color color.RGBA
	// Family overrides the block font. Empty uses the block font.
	Family string
	// LineHeight is relative to FontSize. Zero means 1.
	LineHeight float32
}

// NewSpan returns a span of text in 32px normal weight opaque white.
func NewSpan(text string) Span {
	return Span{
		Text:     text,
		FontSize: DefaultFontSize,
		Weight:   WeightNormal,
		Color:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// WithFontSize returns a copy of s with the font size set.
func (s Span) WithFontSize(size float32) Span {
	s.FontSize = size
	return s
}

// WithWeight returns a copy of s with the weight set.
func (s Span) WithWeight(w Weight) Span {
	s.Weight = w
	return s
}

// WithColor returns a copy of s with the color set.
func (s Span) WithColor(c color.RGBA) Span {
	s.Color = c
	return s
}

// WithFamily returns a copy of s with the font family set.
func (s Span) WithFamily(family string) Span {
	s.Family = family
	return s
}

// WithLineHeight returns a copy of s with the relative line height set.
func (s Span) WithLineHeight(rel float32) Span {
	s.LineHeight = rel
	return s
}

// lineHeight returns the relative line height with the default applied.
func (s Span) lineHeight() float32 {
	if s.LineHeight <= 0 {
		return 1
	}
	return s.LineHeight
}

// TextAlign is the horizontal alignment of lines within a block.
type TextAlign uint8

const (
	// TextAlignLeft aligns lines to the left edge.
	TextAlignLeft TextAlign = iota
	// TextAlignRight aligns lines to the right edge.
	TextAlignRight
	// TextAlignEnd aligns lines to the end of their paragraph direction.
	TextAlignEnd
	// TextAlignCenter centers lines.
	TextAlignCenter
	// TextAlignJustified stretches wrapped lines to the block width.
	TextAlignJustified
)

// String returns the string representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "Left"
	case TextAlignRight:
		return "Right"
	case TextAlignEnd:
		return "End"
	case TextAlignCenter:
		return "Center"
	case TextAlignJustified:
		return "Justified"
	default:
		return unknownStr
	}
}

// needsReshape reports whether the alignment is only meaningful once the
// block width is known.
func (a TextAlign) needsReshape() bool {
	switch a {
	case TextAlignRight, TextAlignEnd, TextAlignCenter, TextAlignJustified:
		return true
	default:
		return false
	}
}

// TextBlock is a styled block of text with its layout constraints and its
// placement on the surface.
type TextBlock struct {
	Spans []Span
	// MaxWidth wraps lines. Nil means unbounded.
	MaxWidth *float32
	// MaxHeight clips lines. Nil means unbounded.
	MaxHeight *float32
	TextAlign TextAlign
	Alignment TextBlockPosition
	// Font is the default family of spans without one.
	Font string
}

// NewTextBlock returns a block holding spans, placed at the top-left corner.
func NewTextBlock(spans ...Span) TextBlock {
	return TextBlock{Spans: spans}
}

// StringBlock returns a block holding s as a single default span.
func StringBlock(s string) TextBlock {
	return NewTextBlock(NewSpan(s))
}

// WithSpans returns a copy of b with its spans replaced.
func (b TextBlock) WithSpans(spans ...Span) TextBlock {
	b.Spans = spans
	return b
}

// WithAlignment returns a copy of b placed at pos.
func (b TextBlock) WithAlignment(pos TextBlockPosition) TextBlock {
	b.Alignment = pos
	return b
}

// WithMaxWidth returns a copy of b wrapping at w pixels.
func (b TextBlock) WithMaxWidth(w float32) TextBlock {
	b.MaxWidth = &w
	return b
}

// WithMaxHeight returns a copy of b clipped at h pixels.
func (b TextBlock) WithMaxHeight(h float32) TextBlock {
	b.MaxHeight = &h
	return b
}

// WithTextAlign returns a copy of b with the line alignment set.
func (b TextBlock) WithTextAlign(a TextAlign) TextBlock {
	b.TextAlign = a
	return b
}

// WithFont returns a copy of b with the default family set.
func (b TextBlock) WithFont(family string) TextBlock {
	b.Font = family
	return b
}

// String implements fmt.Stringer.
func (b TextBlock) String() string {
	return fmt.Sprintf("TextBlock{%d spans, %s, %s}", len(b.Spans), b.TextAlign, b.Alignment)
}
