package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnsupportedFont is returned when font data cannot be parsed as a
	// TrueType/OpenType font or collection.
	ErrUnsupportedFont = errors.New("text: unsupported font data")
)
