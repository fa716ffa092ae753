package text

import (
	"math"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/vector"

	"github.com/gogpu/imagetext/internal/cache"
)

// DefaultGlyphCacheSize is the number of glyph images a GlyphCache keeps
// by default.
const DefaultGlyphCacheSize = 4096

// CacheOption configures a GlyphCache.
type CacheOption func(*cacheConfig)

type cacheConfig struct {
	size int
	lcd  bool
}

// WithCacheSize bounds the number of cached glyph images. Zero means
// unbounded.
func WithCacheSize(n int) CacheOption {
	return func(c *cacheConfig) {
		c.size = n
	}
}

// WithLCD rasterizes outline glyphs as subpixel masks with three horizontal
// samples per pixel.
func WithLCD(enabled bool) CacheOption {
	return func(c *cacheConfig) {
		c.lcd = enabled
	}
}

// CacheStats reports glyph cache usage.
type CacheStats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the fraction of lookups served from the cache.
func (s CacheStats) HitRate() float64 {
	return cache.Stats(s).HitRate()
}

// GlyphCache rasterizes glyphs on demand and keeps the results in an LRU
// cache keyed by CacheKey. Glyphs without a visual representation are
// cached as nil.
//
// GlyphCache is not safe for concurrent use with the FontSystem whose faces
// it rasterizes.
type GlyphCache struct {
	images *cache.Cache[CacheKey, *GlyphImage]
	lcd    bool
	z      vector.Rasterizer
}

// NewGlyphCache creates a glyph cache.
func NewGlyphCache(opts ...CacheOption) *GlyphCache {
	cfg := cacheConfig{size: DefaultGlyphCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GlyphCache{
		images: cache.New[CacheKey, *GlyphImage](cfg.size),
		lcd:    cfg.lcd,
	}
}

// Get returns the image of the glyph identified by key, rasterizing it on
// first use. It returns nil for glyphs with nothing to draw.
func (c *GlyphCache) Get(key CacheKey) *GlyphImage {
	return c.images.GetOrCreate(key, func() *GlyphImage {
		img := c.Rasterize(key)
		Logger().Debug("glyph rasterized", "key", key, "image", img)
		return img
	})
}

// Stats returns cache usage counters.
func (c *GlyphCache) Stats() CacheStats {
	return CacheStats(c.images.Stats())
}

// Clear drops every cached image.
func (c *GlyphCache) Clear() {
	c.images.Clear()
}

// Rasterize renders the glyph identified by key without consulting the
// cache. Color glyphs win over outlines: bitmap strikes and SVG documents
// are used when present, COLR glyphs fall back to their outline.
func (c *GlyphCache) Rasterize(key CacheKey) *GlyphImage {
	face := key.Face
	size := key.Size()
	if face == nil || size <= 0 || math.IsNaN(float64(size)) {
		return nil
	}
	upem := float32(face.Upem())
	if upem == 0 {
		return nil
	}
	scale := size / upem
	ppem := uint16(min(math.Round(float64(size)), math.MaxUint16))
	face.SetPpem(ppem, ppem)

	fx, fy := key.XBin.Float(), key.YBin.Float()
	var img *GlyphImage
	switch data := face.GlyphData(key.GlyphID).(type) {
	case font.GlyphOutline:
		img = c.rasterOutline(data, scale, fx, fy)
	case font.GlyphBitmap:
		img = rasterBitmap(face, key.GlyphID, data, scale, fx)
		if img == nil && data.Outline != nil {
			img = c.rasterOutline(*data.Outline, scale, fx, fy)
		}
	case font.GlyphSVG:
		img = rasterSVG(face, key.GlyphID, data, scale, fx)
		if img == nil {
			img = c.rasterOutline(data.Outline, scale, fx, fy)
		}
	case font.GlyphColor:
		if out, ok := face.GlyphDataOutline(tables.GlyphID(key.GlyphID)); ok {
			img = c.rasterOutline(out, scale, fx, fy)
		}
	}
	if img.Empty() {
		return nil
	}
	return img
}
