package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Align is the horizontal alignment of the lines of a paragraph within the
// buffer width.
type Align uint8

const (
	// AlignLeft aligns lines to the left edge.
	AlignLeft Align = iota
	// AlignRight aligns lines to the right edge.
	AlignRight
	// AlignEnd aligns lines to the end edge: right for left-to-right
	// paragraphs, left for right-to-left ones.
	AlignEnd
	// AlignCenter centers lines.
	AlignCenter
	// AlignJustified stretches word gaps so that every wrapped line except
	// the last of a paragraph spans the full width.
	AlignJustified
)

// String returns the string representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignRight:
		return "Right"
	case AlignEnd:
		return "End"
	case AlignCenter:
		return "Center"
	case AlignJustified:
		return "Justified"
	default:
		return unknownStr
	}
}

// NeedsWidth reports whether the alignment depends on a definite box width.
// Only AlignLeft lays out identically with and without one.
func (a Align) NeedsWidth() bool {
	return a != AlignLeft
}

// Shaping selects the shaping fidelity.
type Shaping uint8

const (
	// ShapingBasic shapes each span with the first face that covers its
	// text, skipping bidi and script segmentation.
	ShapingBasic Shaping = iota
	// ShapingAdvanced runs full bidi, script and per-rune face segmentation
	// before shaping.
	ShapingAdvanced
)

// String returns the string representation of the shaping mode.
func (s Shaping) String() string {
	switch s {
	case ShapingBasic:
		return "Basic"
	case ShapingAdvanced:
		return "Advanced"
	default:
		return unknownStr
	}
}
