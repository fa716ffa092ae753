package text

import "fmt"

// Metrics are the font size and line height of a Buffer, in pixels.
type Metrics struct {
	// FontSize is the em size used for shaping.
	FontSize float32
	// LineHeight is the distance between consecutive line tops.
	LineHeight float32
}

// Relative returns Metrics whose line height is lineHeight times fontSize.
// A non-positive lineHeight is treated as 1.
func Relative(fontSize, lineHeight float32) Metrics {
	if lineHeight <= 0 {
		lineHeight = 1
	}
	return Metrics{FontSize: fontSize, LineHeight: fontSize * lineHeight}
}

// Scale returns the metrics multiplied by s.
func (m Metrics) Scale(s float32) Metrics {
	return Metrics{FontSize: m.FontSize * s, LineHeight: m.LineHeight * s}
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return fmt.Sprintf("%gpx/%gpx", m.FontSize, m.LineHeight)
}
