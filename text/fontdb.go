package text

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/go-text/typesetting/language"
)

// FontSystem is the font database used for shaping: system fonts discovered
// by fontscan plus any font data registered by the caller. It resolves a
// face for every rune according to the current family query and script.
//
// FontSystem is not safe for concurrent use.
type FontSystem struct {
	fontMap *fontscan.FontMap
	locale  string
	lang    language.Language

	system   bool
	families map[string]struct{}
	sources  int
}

// NewFontSystem creates an empty font database for locale, a BCP 47 tag
// such as "en-US". The locale steers script-specific fallback choices.
func NewFontSystem(locale string) *FontSystem {
	return &FontSystem{
		fontMap:  fontscan.NewFontMap(fontscanLogger{}),
		locale:   locale,
		lang:     language.NewLanguage(locale),
		families: make(map[string]struct{}),
	}
}

// Locale returns the locale the font system was created with.
func (fs *FontSystem) Locale() string { return fs.locale }

// Language returns the shaping language derived from the locale.
func (fs *FontSystem) Language() language.Language { return fs.lang }

// LoadSystemFonts indexes the fonts installed on the system. The index is
// cached under cacheDir; an empty cacheDir lets fontscan pick the platform
// cache directory.
func (fs *FontSystem) LoadSystemFonts(cacheDir string) error {
	if err := fs.fontMap.UseSystemFonts(cacheDir); err != nil {
		return fmt.Errorf("text: load system fonts: %w", err)
	}
	fs.system = true
	Logger().Debug("system fonts indexed", "cacheDir", cacheDir)
	return nil
}

// AddFontData registers a font file or collection held in memory. When
// family is not empty it replaces the family name stored in the font.
func (fs *FontSystem) AddFontData(family string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	id := fmt.Sprintf("memory:%d", fs.sources+1)
	if family != "" {
		id = fmt.Sprintf("memory:%d:%s", fs.sources+1, family)
	}
	return fs.addResource(bytes.NewReader(data), id, family)
}

// AddFontFile reads and registers the font file at path.
func (fs *FontSystem) AddFontFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("text: read font %s: %w", filepath.Base(path), err)
	}
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	return fs.addResource(bytes.NewReader(data), path, "")
}

func (fs *FontSystem) addResource(r font.Resource, id, family string) error {
	if err := fs.fontMap.AddFont(r, id, family); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnsupportedFont, id, err)
	}
	fs.sources++
	if family == "" {
		if faces, err := font.ParseTTC(r); err == nil && len(faces) > 0 {
			family = faces[0].Describe().Family
		}
	}
	if family != "" {
		fs.families[font.NormalizeFamily(family)] = struct{}{}
	}
	return nil
}

// HasSystemFonts reports whether system fonts were indexed.
func (fs *FontSystem) HasSystemFonts() bool { return fs.system }

// Sources returns the number of font resources registered by the caller.
func (fs *FontSystem) Sources() int { return fs.sources }

// IsEmpty reports whether no font can be resolved at all.
func (fs *FontSystem) IsEmpty() bool { return !fs.system && fs.sources == 0 }

// Families returns the normalized family names registered by the caller,
// sorted.
func (fs *FontSystem) Families() []string {
	out := make([]string, 0, len(fs.families))
	for f := range fs.families {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// FamilyOf returns the family name of a face previously resolved by the
// font system, or "" when unknown.
func (fs *FontSystem) FamilyOf(face *font.Face) string {
	if face == nil {
		return ""
	}
	family, _ := fs.fontMap.FontMetadata(face.Font)
	return family
}

// FontMap exposes the underlying fontscan map.
func (fs *FontSystem) FontMap() *fontscan.FontMap { return fs.fontMap }

// ResolveFace returns the face for r under the current query and script.
// It implements shaping.Fontmap.
func (fs *FontSystem) ResolveFace(r rune) *font.Face {
	return fs.fontMap.ResolveFace(r)
}

// SetScript implements shaping.FontmapScript.
func (fs *FontSystem) SetScript(s language.Script) {
	fs.fontMap.SetScript(s)
}

// query configures face resolution for attrs. Emoji runs try the generic
// emoji family before the requested one.
func (fs *FontSystem) query(attrs Attrs, emoji bool) {
	families := []string{attrs.family()}
	if emoji {
		families = []string{fontscan.Emoji, attrs.family()}
	}
	fs.fontMap.SetQuery(fontscan.Query{Families: families, Aspect: attrs.aspect()})
}

// faceFor resolves the face used for r with attrs.
func (fs *FontSystem) faceFor(attrs Attrs, r rune) *font.Face {
	fs.query(attrs, false)
	fs.fontMap.SetScript(language.LookupScript(r))
	return fs.fontMap.ResolveFace(r)
}
