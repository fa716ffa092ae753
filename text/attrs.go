package text

import (
	"image/color"
	"sort"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
)

// Attrs are the style attributes of a span of text.
type Attrs struct {
	// Family is the requested font family, or a generic family such as
	// fontscan.SansSerif. Empty means fontscan.SansSerif.
	Family string
	// Weight is the requested font weight. Zero means font.WeightNormal.
	Weight font.Weight
	// Color overrides the glyph color. Nil leaves color to the renderer.
	Color *color.RGBA
	// Metrics overrides the buffer metrics for this span. Only FontSize is
	// used for shaping; line height stays uniform across the buffer.
	Metrics *Metrics
	// Metadata is an opaque value copied to every glyph of the span.
	Metadata int
}

// DefaultAttrs returns sans-serif, normal weight attributes.
func DefaultAttrs() Attrs {
	return Attrs{Family: fontscan.SansSerif, Weight: font.WeightNormal}
}

// family returns the requested family with the generic fallback applied.
func (a Attrs) family() string {
	if a.Family == "" {
		return fontscan.SansSerif
	}
	return a.Family
}

// aspect returns the fontscan aspect for the attributes.
func (a Attrs) aspect() font.Aspect {
	asp := font.Aspect{Weight: a.Weight}
	asp.SetDefaults()
	return asp
}

// fontSize returns the span font size, or fallback when not overridden.
func (a Attrs) fontSize(fallback float32) float32 {
	if a.Metrics != nil && a.Metrics.FontSize > 0 {
		return a.Metrics.FontSize
	}
	return fallback
}

// Span is one piece of rich text with its attributes.
type Span struct {
	Text  string
	Attrs Attrs
}

// attrsSpan applies attrs to the rune range [start, end) of a line.
type attrsSpan struct {
	start, end int
	attrs      Attrs
}

// attrsList maps rune offsets of a line to attributes. Ranges are sorted
// and do not overlap; gaps use defaults.
type attrsList struct {
	defaults Attrs
	spans    []attrsSpan
}

func (l *attrsList) add(start, end int, a Attrs) {
	if start >= end {
		return
	}
	l.spans = append(l.spans, attrsSpan{start: start, end: end, attrs: a})
}

// at returns the attributes covering rune offset i.
func (l *attrsList) at(i int) Attrs {
	k := sort.Search(len(l.spans), func(k int) bool { return l.spans[k].end > i })
	if k < len(l.spans) && l.spans[k].start <= i {
		return l.spans[k].attrs
	}
	return l.defaults
}

// ranges returns contiguous ranges covering [0, n), filling gaps with the
// default attributes.
func (l *attrsList) ranges(n int) []attrsSpan {
	out := make([]attrsSpan, 0, len(l.spans)+1)
	pos := 0
	for _, s := range l.spans {
		if s.start > pos {
			out = append(out, attrsSpan{start: pos, end: s.start, attrs: l.defaults})
		}
		out = append(out, s)
		pos = s.end
	}
	if pos < n {
		out = append(out, attrsSpan{start: pos, end: n, attrs: l.defaults})
	}
	return out
}
