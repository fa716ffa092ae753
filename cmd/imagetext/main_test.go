package main

import (
	"image"
	"image/color"
	"testing"
)

func TestVerticalGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	top := color.RGBA{B: 255, A: 255}
	bottom := color.RGBA{R: 255, B: 128, A: 255}
	verticalGradient(img, top, bottom)

	if got := img.RGBAAt(3, 0); got != top {
		t.Errorf("top row = %v, want %v", got, top)
	}
	if got := img.RGBAAt(0, 2); got != bottom {
		t.Errorf("bottom row = %v, want %v", got, bottom)
	}
	if want := (color.RGBA{R: 128, B: 192, A: 255}); img.RGBAAt(1, 1) != want {
		t.Errorf("middle row = %v, want %v", img.RGBAAt(1, 1), want)
	}
}
