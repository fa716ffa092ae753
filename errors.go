package imagetext

import (
	"errors"
	"fmt"

	"github.com/gogpu/imagetext/text"
)

// Sentinel errors returned while building a Painter.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = text.ErrEmptyFontData

	// ErrFontNotFound is returned when a font file name cannot be found in
	// the system font directories.
	ErrFontNotFound = errors.New("imagetext: font not found")

	// ErrNoFonts is returned when a painter would have no font at all.
	ErrNoFonts = errors.New("imagetext: no fonts available")
)

// FontLoadError reports a font that could not be loaded.
type FontLoadError struct {
	// Name is the family, file name or path of the font.
	Name string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("imagetext: load font %q: %v", e.Name, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }
