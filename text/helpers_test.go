package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// testFontSystem creates a font system holding only Go Regular.
func testFontSystem(t testing.TB) *FontSystem {
	t.Helper()

	fs := NewFontSystem("en-US")
	if err := fs.AddFontData("", goregular.TTF); err != nil {
		t.Fatalf("AddFontData(goregular) error = %v", err)
	}
	return fs
}

// testBuffer creates a buffer with Go Regular at 32px and line height 1.
func testBuffer(t testing.TB) *Buffer {
	t.Helper()
	return NewBuffer(testFontSystem(t), Relative(32, 1))
}

func ptr(v float32) *float32 { return &v }
