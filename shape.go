package imagetext

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/imagetext/text"
)

// textAlign maps a block alignment to the shaping engine alignment.
func textAlign(a TextAlign) text.Align {
	switch a {
	case TextAlignRight:
		return text.AlignRight
	case TextAlignEnd:
		return text.AlignEnd
	case TextAlignCenter:
		return text.AlignCenter
	case TextAlignJustified:
		return text.AlignJustified
	default:
		return text.AlignLeft
	}
}

// baseMetrics returns the buffer metrics of a block: the size and relative
// line height of its first span.
func baseMetrics(block TextBlock) text.Metrics {
	if len(block.Spans) == 0 {
		return text.Relative(DefaultFontSize, 1)
	}
	first := block.Spans[0]
	return text.Relative(first.FontSize, first.lineHeight())
}

// spanAttrs returns the shaping attributes of span inside a block whose
// default family is blockFont.
func spanAttrs(span Span, blockFont string) text.Attrs {
	family := span.Family
	if family == "" {
		family = blockFont
	}
	c := span.Color
	m := text.Relative(span.FontSize, span.lineHeight())
	return text.Attrs{
		Family:  family,
		Weight:  font.Weight(span.Weight),
		Color:   &c,
		Metrics: &m,
	}
}

// shapeBlock lays out block. Alignments other than left are laid out a
// second time against the measured width, since they need a definite box.
func (p *Painter) shapeBlock(block TextBlock) *text.Buffer {
	buf := text.NewBuffer(p.fonts, baseMetrics(block))
	if len(block.Spans) == 0 {
		return buf
	}

	defaults := text.DefaultAttrs()
	if block.Font != "" {
		defaults.Family = block.Font
	}
	spans := make([]text.Span, len(block.Spans))
	for i, s := range block.Spans {
		spans[i] = text.Span{Text: s.Text, Attrs: spanAttrs(s, block.Font)}
	}

	buf.SetSize(block.MaxWidth, block.MaxHeight)
	buf.SetRichText(spans, defaults, text.ShapingAdvanced)
	align := textAlign(block.TextAlign)
	lines := buf.Lines()
	for i := range lines {
		lines[i].SetAlign(align)
	}
	buf.ShapeUntilScroll(true)

	if block.TextAlign.needsReshape() {
		w := measuredWidth(buf.LayoutRuns())
		buf.SetSize(&w, block.MaxHeight)
		buf.ShapeUntilScroll(true)
		Logger().Debug("reshaped block", "align", block.TextAlign, "width", w)
	}
	return buf
}
