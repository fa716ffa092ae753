package text

import (
	"fmt"
	"math"

	"github.com/go-text/typesetting/font"
)

// CacheKey identifies one rasterized glyph image: a glyph of a face at a
// pixel size and subpixel origin.
type CacheKey struct {
	Face     *font.Face
	GlyphID  font.GID
	SizeBits uint32
	XBin     SubpixelBin
	YBin     SubpixelBin
}

// NewCacheKey builds the key for glyph id of face drawn at size with its
// origin at (x, y). It returns the whole pixel part of the origin as well.
func NewCacheKey(face *font.Face, id font.GID, size float32, x, y float32) (CacheKey, int, int) {
	ix, xbin := NewSubpixelBin(x)
	iy, ybin := NewSubpixelBin(y)
	return CacheKey{
		Face:     face,
		GlyphID:  id,
		SizeBits: math.Float32bits(size),
		XBin:     xbin,
		YBin:     ybin,
	}, ix, iy
}

// Size returns the pixel size encoded in the key.
func (k CacheKey) Size() float32 {
	return math.Float32frombits(k.SizeBits)
}

// String implements fmt.Stringer.
func (k CacheKey) String() string {
	return fmt.Sprintf("glyph %d @%gpx (%s,%s)", k.GlyphID, k.Size(), k.XBin, k.YBin)
}
