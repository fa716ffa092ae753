package text

import (
	"slices"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/imagetext/text/emoji"
)

// baseRTL reports whether the first strong character of text is
// right-to-left. Paragraphs without strong characters are left-to-right.
func baseRTL(text []rune) bool {
	for _, r := range text {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}

// layoutLine shapes, wraps and aligns one paragraph.
func (b *Buffer) layoutLine(line *BufferLine) {
	line.rtl = baseRTL(line.text)
	if len(line.text) == 0 || b.fs.IsEmpty() {
		line.layout = []LayoutLine{b.emptyLine(line.attrs.defaults)}
		return
	}

	dir := di.DirectionLTR
	if line.rtl {
		dir = di.DirectionRTL
	}
	outs := b.shapeParagraph(line, dir)
	if len(outs) == 0 {
		line.layout = []LayoutLine{b.emptyLine(line.attrs.defaults)}
		return
	}

	maxWidth := maxFixed
	if b.width != nil {
		maxWidth = floatToFixedCeil(*b.width)
	}
	cfg := shaping.WrapConfig{Direction: dir, BreakPolicy: shaping.WhenNecessary}
	wrapped, _ := b.wrapper.WrapParagraphF(cfg, maxWidth, line.text, shaping.NewSliceIterator(outs))

	layout := make([]LayoutLine, 0, len(wrapped))
	for _, wl := range wrapped {
		layout = append(layout, b.convertLine(line, wl))
	}
	b.align(line, layout)
	line.layout = layout
}

// shapeParagraph shapes every attribute range of the paragraph, splitting
// emoji sequences so they can resolve to an emoji font.
func (b *Buffer) shapeParagraph(line *BufferLine, dir di.Direction) []shaping.Output {
	b.outs = b.outs[:0]
	for _, rng := range line.attrs.ranges(len(line.text)) {
		size := floatToFixed(rng.attrs.fontSize(b.metrics.FontSize))
		for _, run := range emoji.Segment(line.text, rng.start, rng.end) {
			b.fs.query(rng.attrs, run.Emoji)
			input := shaping.Input{
				Text:      line.text,
				RunStart:  run.Start,
				RunEnd:    run.End,
				Direction: dir,
				Size:      size,
				Language:  b.fs.Language(),
			}
			var inputs []shaping.Input
			if line.shaping == ShapingAdvanced {
				inputs = b.seg.Split(input, b.fs)
			} else {
				input.Script = scriptOf(line.text[run.Start:run.End])
				b.fs.SetScript(input.Script)
				inputs = shaping.SplitByFace(input, b.fs)
			}
			for _, in := range inputs {
				if in.Face == nil {
					Logger().Warn("no face for text run", "start", in.RunStart, "end", in.RunEnd)
					continue
				}
				b.outs = append(b.outs, b.shaper.Shape(in))
			}
		}
	}
	return b.outs
}

// scriptOf returns the first non common script of text.
func scriptOf(text []rune) language.Script {
	for _, r := range text {
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Common
}

// convertLine flattens a wrapped line into glyphs in visual order.
func (b *Buffer) convertLine(line *BufferLine, wl shaping.Line) LayoutLine {
	runs := slices.Clone([]shaping.Output(wl))
	slices.SortStableFunc(runs, func(a, c shaping.Output) int {
		return int(a.VisualIndex) - int(c.VisualIndex)
	})

	var (
		ll  LayoutLine
		pen float32
	)
	for _, run := range runs {
		ll.MaxAscent = max(ll.MaxAscent, fixedToFloat(run.LineBounds.Ascent))
		ll.MaxDescent = max(ll.MaxDescent, -fixedToFloat(run.LineBounds.Descent))

		var level uint8
		if run.Direction.Progression() == di.TowardTopLeft {
			level = 1
		}
		size := fixedToFloat(run.Size)
		for _, g := range run.Glyphs {
			start := g.TextIndex()
			attrs := line.attrs.at(start)
			w := fixedToFloat(g.Advance)
			ll.Glyphs = append(ll.Glyphs, LayoutGlyph{
				Start:    start,
				End:      start + g.RunesCount(),
				FontSize: size,
				Face:     run.Face,
				GlyphID:  g.GlyphID,
				X:        pen,
				W:        w,
				XOffset:  fixedToFloat(g.XOffset),
				YOffset:  fixedToFloat(g.YOffset),
				Level:    level,
				ColorOpt: attrs.Color,
				Metadata: attrs.Metadata,
			})
			pen += w
		}
	}
	ll.W = pen
	return ll
}

// emptyLine returns the layout of a paragraph without text. Its vertical
// metrics come from the face that would render a space.
func (b *Buffer) emptyLine(attrs Attrs) LayoutLine {
	var ll LayoutLine
	if b.fs.IsEmpty() {
		return ll
	}
	face := b.fs.faceFor(attrs, ' ')
	if face == nil {
		return ll
	}
	ext, ok := face.FontHExtents()
	upem := float32(face.Upem())
	if !ok || upem == 0 {
		return ll
	}
	scale := attrs.fontSize(b.metrics.FontSize) / upem
	ll.MaxAscent = ext.Ascender * scale
	ll.MaxDescent = -ext.Descender * scale
	return ll
}

// align shifts the glyphs of every visual line according to the paragraph
// alignment. Without a box width every line stays start aligned.
func (b *Buffer) align(line *BufferLine, layout []LayoutLine) {
	a := line.align
	if a == AlignEnd {
		a = AlignRight
		if line.rtl {
			a = AlignLeft
		}
	}
	if a == AlignLeft || b.width == nil {
		return
	}
	width := *b.width

	for i := range layout {
		ll := &layout[i]
		extra := width - ll.W
		if extra <= 0 {
			continue
		}
		switch a {
		case AlignRight:
			shiftGlyphs(ll.Glyphs, extra)
		case AlignCenter:
			shiftGlyphs(ll.Glyphs, extra/2)
		case AlignJustified:
			if i == len(layout)-1 {
				continue
			}
			if justify(line.text, ll, extra) {
				ll.W = width
			}
		}
	}
}

func shiftGlyphs(glyphs []LayoutGlyph, dx float32) {
	for i := range glyphs {
		glyphs[i].X += dx
	}
}

// justify spreads extra over the word gaps of ll. Trailing spaces, whose
// advances the wrapper already zeroed, do not count. It reports whether any
// gap was found.
func justify(text []rune, ll *LayoutLine, extra float32) bool {
	isGap := func(g LayoutGlyph) bool {
		return g.W > 0 && g.Start < len(text) && unicode.IsSpace(text[g.Start])
	}
	gaps := 0
	for _, g := range ll.Glyphs {
		if isGap(g) {
			gaps++
		}
	}
	if gaps == 0 {
		return false
	}
	per := extra / float32(gaps)
	var dx float32
	for i := range ll.Glyphs {
		g := &ll.Glyphs[i]
		g.X += dx
		if isGap(*g) {
			g.W += per
			dx += per
		}
	}
	return true
}
