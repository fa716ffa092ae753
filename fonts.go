package imagetext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/imagetext/text"
)

// fallbackFonts are the bundled Go fonts registered as last resort.
var fallbackFonts = []fontData{
	{data: goregular.TTF},
	{data: gobold.TTF},
	{data: goitalic.TTF},
	{data: gobolditalic.TTF},
	{family: "monospace", data: gomono.TTF},
}

// buildFontSystem assembles the font database described by cfg.
func buildFontSystem(cfg painterConfig, locale string) (*text.FontSystem, error) {
	fs := cfg.fontSystem
	own := fs == nil
	if own {
		fs = text.NewFontSystem(locale)
		if cfg.systemFonts {
			if err := fs.LoadSystemFonts(cfg.cacheDir); err != nil {
				Logger().Warn("system fonts unavailable", "err", err)
			}
		}
	}

	for _, f := range cfg.fonts {
		if err := fs.AddFontData(f.family, f.data); err != nil {
			return nil, &FontLoadError{Name: fontName(f.family), Err: err}
		}
	}
	for _, name := range cfg.fontFiles {
		path, err := resolveFontFile(name)
		if err != nil {
			return nil, &FontLoadError{Name: name, Err: err}
		}
		if err := fs.AddFontFile(path); err != nil {
			return nil, &FontLoadError{Name: name, Err: err}
		}
	}

	if own && cfg.fallbackFonts {
		for _, f := range fallbackFonts {
			if err := fs.AddFontData(f.family, f.data); err != nil {
				return nil, fmt.Errorf("imagetext: register fallback font: %w", err)
			}
		}
	}

	if fs.IsEmpty() {
		return nil, ErrNoFonts
	}
	return fs, nil
}

// resolveFontFile returns name when it is an existing path, otherwise the
// first matching file in the system font directories.
func resolveFontFile(name string) (string, error) {
	if filepath.IsAbs(name) || filepath.Dir(name) != "." {
		if _, err := os.Stat(name); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", ErrFontNotFound
			}
			return "", err
		}
		return name, nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		Logger().Debug("font lookup failed", "name", name, "err", err)
		return "", ErrFontNotFound
	}
	return path, nil
}

func fontName(family string) string {
	if family == "" {
		return "<data>"
	}
	return family
}
