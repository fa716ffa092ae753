package imagetext

import "github.com/gogpu/imagetext/text"

// Option configures a Painter during creation.
//
// Example:
//
//	// System fonts, detected locale
//	p, err := imagetext.NewPainter()
//
//	// Only the caller's fonts, fixed locale
//	p, err := imagetext.NewPainter(
//	    imagetext.WithoutSystemFonts(),
//	    imagetext.WithFontData("Inter", interTTF),
//	    imagetext.WithLocale("de-DE"),
//	)
type Option func(*painterConfig)

// fontData is font file content registered under an optional family name.
type fontData struct {
	family string
	data   []byte
}

// painterConfig holds optional configuration for Painter creation.
type painterConfig struct {
	systemFonts    bool
	fallbackFonts  bool
	fonts          []fontData
	fontFiles      []string
	fontSystem     *text.FontSystem
	locale         string
	cacheDir       string
	glyphCacheSize int
	lcd            bool
}

// defaultPainterConfig returns the default painter options.
func defaultPainterConfig() painterConfig {
	return painterConfig{
		systemFonts:    true,
		fallbackFonts:  true,
		glyphCacheSize: text.DefaultGlyphCacheSize,
	}
}

// WithoutSystemFonts skips indexing the fonts installed on the system.
// Only fonts given through other options and the fallback fonts are used.
func WithoutSystemFonts() Option {
	return func(c *painterConfig) {
		c.systemFonts = false
	}
}

// WithoutFallbackFonts skips registering the bundled Go fonts. A painter
// without system fonts and without fallback fonts needs at least one font
// option.
func WithoutFallbackFonts() Option {
	return func(c *painterConfig) {
		c.fallbackFonts = false
	}
}

// WithFontData registers a font file or collection held in memory. A
// non-empty family replaces the family name stored in the font.
func WithFontData(family string, data []byte) Option {
	return func(c *painterConfig) {
		c.fonts = append(c.fonts, fontData{family: family, data: data})
	}
}

// WithFontFiles registers font files. Each name is either a path or a file
// name such as "DejaVuSans.ttf" looked up in the system font directories.
func WithFontFiles(names ...string) Option {
	return func(c *painterConfig) {
		c.fontFiles = append(c.fontFiles, names...)
	}
}

// WithFontSystem uses a caller-built font collection. System font indexing
// and fallback fonts are skipped; fonts from other options are added to fs.
// The painter takes ownership of fs.
func WithFontSystem(fs *text.FontSystem) Option {
	return func(c *painterConfig) {
		c.fontSystem = fs
	}
}

// WithLocale sets the locale used for shaping, as a BCP 47 tag. Without it
// the system locale is detected.
func WithLocale(tag string) Option {
	return func(c *painterConfig) {
		c.locale = tag
	}
}

// WithCacheDir sets the directory of the system font index.
func WithCacheDir(dir string) Option {
	return func(c *painterConfig) {
		c.cacheDir = dir
	}
}

// WithGlyphCacheSize bounds the number of rasterized glyphs kept in memory.
// Zero means unbounded.
func WithGlyphCacheSize(n int) Option {
	return func(c *painterConfig) {
		if n >= 0 {
			c.glyphCacheSize = n
		}
	}
}

// WithLCD enables subpixel (LCD) rasterization of outline glyphs.
func WithLCD(enabled bool) Option {
	return func(c *painterConfig) {
		c.lcd = enabled
	}
}
