package text

import (
	"strings"

	"github.com/go-text/typesetting/shaping"
)

// BufferLine is one paragraph of a Buffer: the text between two line
// feeds, its attributes and its cached layout.
type BufferLine struct {
	text    []rune
	attrs   attrsList
	align   Align
	shaping Shaping

	// layout is nil until the line is shaped.
	layout []LayoutLine
	rtl    bool
}

// Text returns the paragraph text.
func (l *BufferLine) Text() string { return string(l.text) }

// Align returns the paragraph alignment.
func (l *BufferLine) Align() Align { return l.align }

// SetAlign changes the paragraph alignment. It reports whether the
// alignment changed, in which case the line must be laid out again.
func (l *BufferLine) SetAlign(a Align) bool {
	if l.align == a {
		return false
	}
	l.align = a
	l.layout = nil
	return true
}

// Shaped reports whether the line holds a layout.
func (l *BufferLine) Shaped() bool { return l.layout != nil }

// Layout returns the wrapped visual lines of the paragraph, or nil when
// the line has not been shaped.
func (l *BufferLine) Layout() []LayoutLine { return l.layout }

// RTL reports whether the paragraph base direction is right-to-left.
func (l *BufferLine) RTL() bool { return l.rtl }

// Buffer holds styled text and lays it out within an optional box.
//
// A Buffer is not safe for concurrent use. It shares its FontSystem, which
// must not be used concurrently either.
type Buffer struct {
	fs      *FontSystem
	metrics Metrics
	width   *float32
	height  *float32
	lines   []BufferLine

	shaper  shaping.HarfbuzzShaper
	seg     shaping.Segmenter
	wrapper shaping.LineWrapper
	outs    []shaping.Output
}

// NewBuffer creates an empty buffer that shapes with fs using m.
func NewBuffer(fs *FontSystem, m Metrics) *Buffer {
	return &Buffer{fs: fs, metrics: m}
}

// FontSystem returns the font system the buffer shapes with.
func (b *Buffer) FontSystem() *FontSystem { return b.fs }

// Metrics returns the buffer metrics.
func (b *Buffer) Metrics() Metrics { return b.metrics }

// SetMetrics changes the buffer metrics and invalidates all layouts.
func (b *Buffer) SetMetrics(m Metrics) {
	if m == b.metrics {
		return
	}
	b.metrics = m
	b.resetLayouts()
}

// Size returns the box size. Nil means unbounded.
func (b *Buffer) Size() (width, height *float32) { return b.width, b.height }

// SetSize sets the box used for wrapping and clipping. A nil width
// disables wrapping and a nil height disables clipping. Layouts are
// invalidated only when the width changes.
func (b *Buffer) SetSize(width, height *float32) {
	if !sameSize(b.width, width) {
		b.resetLayouts()
	}
	b.width = copyFloat(width)
	b.height = copyFloat(height)
}

// SetText replaces the buffer contents with plain text styled by attrs.
func (b *Buffer) SetText(text string, attrs Attrs, s Shaping) {
	b.SetRichText([]Span{{Text: text, Attrs: attrs}}, attrs, s)
}

// SetRichText replaces the buffer contents with spans. Line feeds inside
// span text start new paragraphs; "\r\n" counts as one line feed. Runes not
// covered by a span use defaults.
func (b *Buffer) SetRichText(spans []Span, defaults Attrs, s Shaping) {
	b.lines = b.lines[:0]
	cur := BufferLine{attrs: attrsList{defaults: defaults}, shaping: s}
	for _, span := range spans {
		parts := strings.Split(span.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				b.lines = append(b.lines, cur)
				cur = BufferLine{attrs: attrsList{defaults: defaults}, shaping: s}
			}
			part = strings.TrimSuffix(part, "\r")
			if part == "" {
				continue
			}
			start := len(cur.text)
			cur.text = append(cur.text, []rune(part)...)
			cur.attrs.add(start, len(cur.text), span.Attrs)
		}
	}
	b.lines = append(b.lines, cur)
}

// Lines returns the paragraphs of the buffer. The slice aliases the buffer,
// so alignment changes made through it take effect on the next layout.
func (b *Buffer) Lines() []BufferLine { return b.lines }

func (b *Buffer) resetLayouts() {
	for i := range b.lines {
		b.lines[i].layout = nil
	}
}

// ShapeUntilScroll lays out paragraphs from the top until the box height
// is filled. Paragraphs below the box are left unshaped; with prune set
// their cached layouts are dropped too.
func (b *Buffer) ShapeUntilScroll(prune bool) {
	lineHeight := b.metrics.LineHeight
	var total float32
	for i := range b.lines {
		line := &b.lines[i]
		if b.height != nil && total >= *b.height {
			if prune {
				line.layout = nil
			}
			continue
		}
		if line.layout == nil {
			b.layoutLine(line)
		}
		total += float32(len(line.layout)) * lineHeight
	}
}

// LayoutRuns returns the laid out visual lines from the top of the buffer
// that fit entirely within the box height. Enumeration stops at the first
// unshaped paragraph.
func (b *Buffer) LayoutRuns() []LayoutRun {
	lineHeight := b.metrics.LineHeight
	var (
		runs []LayoutRun
		top  float32
	)
	for i := range b.lines {
		line := &b.lines[i]
		if line.layout == nil {
			break
		}
		for _, ll := range line.layout {
			if b.height != nil && top+lineHeight > *b.height {
				return runs
			}
			glyphHeight := ll.MaxAscent + ll.MaxDescent
			runs = append(runs, LayoutRun{
				LineIndex:  i,
				Text:       string(line.text),
				RTL:        line.rtl,
				Glyphs:     ll.Glyphs,
				LineY:      top + (lineHeight-glyphHeight)/2 + ll.MaxAscent,
				LineTop:    top,
				LineHeight: lineHeight,
				LineW:      ll.W,
			})
			top += lineHeight
		}
	}
	return runs
}

func sameSize(a, b *float32) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyFloat(v *float32) *float32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
