package text

import "fmt"

// Content is the pixel format of a GlyphImage.
type Content uint8

const (
	// ContentMask is one coverage byte per pixel.
	ContentMask Content = iota
	// ContentSubpixelMask is three coverage bytes per pixel, one per LCD
	// stripe in RGB order.
	ContentSubpixelMask
	// ContentColor is premultiplied RGBA, four bytes per pixel.
	ContentColor
)

// String returns the string representation of the content kind.
func (c Content) String() string {
	switch c {
	case ContentMask:
		return "Mask"
	case ContentSubpixelMask:
		return "SubpixelMask"
	case ContentColor:
		return "Color"
	default:
		return unknownStr
	}
}

// BytesPerPixel returns the size of one pixel of c.
func (c Content) BytesPerPixel() int {
	switch c {
	case ContentSubpixelMask:
		return 3
	case ContentColor:
		return 4
	default:
		return 1
	}
}

// Placement positions a glyph image relative to the glyph origin. Left is
// the offset of the left edge to the right of the origin and Top the offset
// of the top edge above the baseline.
type Placement struct {
	Left, Top     int
	Width, Height int
}

// GlyphImage is a rasterized glyph.
type GlyphImage struct {
	Content   Content
	Placement Placement
	// Data holds Height rows of Width pixels, without padding.
	Data []byte
}

// Empty reports whether the image has no pixels.
func (g *GlyphImage) Empty() bool {
	return g == nil || g.Placement.Width <= 0 || g.Placement.Height <= 0
}

// String implements fmt.Stringer.
func (g *GlyphImage) String() string {
	if g == nil {
		return "<nil>"
	}
	p := g.Placement
	return fmt.Sprintf("%s %dx%d@(%d,%d)", g.Content, p.Width, p.Height, p.Left, p.Top)
}
