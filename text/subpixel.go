package text

import "math"

// SubpixelBin is the quarter-pixel bucket a glyph origin falls into along
// one axis. Glyphs are rasterized once per bin, so a cache holds at most
// four variants per axis of a glyph at a given size.
type SubpixelBin uint8

const (
	// SubpixelZero is an origin on a whole pixel.
	SubpixelZero SubpixelBin = iota
	// SubpixelOne is an origin a quarter pixel past a whole pixel.
	SubpixelOne
	// SubpixelTwo is an origin half a pixel past a whole pixel.
	SubpixelTwo
	// SubpixelThree is an origin three quarters past a whole pixel.
	SubpixelThree
)

// String returns the string representation of the bin.
func (b SubpixelBin) String() string {
	switch b {
	case SubpixelZero:
		return "Zero"
	case SubpixelOne:
		return "One"
	case SubpixelTwo:
		return "Two"
	case SubpixelThree:
		return "Three"
	default:
		return unknownStr
	}
}

// Float returns the fractional offset the bin stands for.
func (b SubpixelBin) Float() float32 {
	return float32(b) * 0.25
}

// NewSubpixelBin splits pos into a whole pixel and the nearest quarter
// pixel bin, so that float32(ip) + bin.Float() approximates pos.
func NewSubpixelBin(pos float32) (ip int, bin SubpixelBin) {
	if math.IsNaN(float64(pos)) {
		return 0, SubpixelZero
	}
	trunc := int(pos)
	fract := pos - float32(trunc)
	if pos < 0 {
		switch {
		case fract > -0.125:
			return trunc, SubpixelZero
		case fract > -0.375:
			return trunc - 1, SubpixelThree
		case fract > -0.625:
			return trunc - 1, SubpixelTwo
		case fract > -0.875:
			return trunc - 1, SubpixelOne
		default:
			return trunc - 1, SubpixelZero
		}
	}
	switch {
	case fract < 0.125:
		return trunc, SubpixelZero
	case fract < 0.375:
		return trunc, SubpixelOne
	case fract < 0.625:
		return trunc, SubpixelTwo
	case fract < 0.875:
		return trunc, SubpixelThree
	default:
		return trunc + 1, SubpixelZero
	}
}
