// Command imagetext draws a text block onto a gradient and saves it as PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/imagetext"
	"github.com/gogpu/imagetext/markup"
)

func main() {
	var (
		width   = flag.Int("width", 512, "image width")
		height  = flag.Int("height", 512, "image height")
		output  = flag.String("output", "output.png", "output file")
		input   = flag.String("markup", "", "markup file describing the text block")
		locale  = flag.String("locale", "", "BCP 47 locale used for shaping (default: detected)")
		lcd     = flag.Bool("lcd", false, "subpixel glyph rendering")
		verbose = flag.Bool("v", false, "log layout details")
	)
	flag.Parse()

	if *verbose {
		imagetext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	block := imagetext.StringBlock("hello world\nhere is a new line")
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("Failed to open markup: %v", err)
		}
		block, err = markup.Parse(*input, f)
		_ = f.Close()
		if err != nil {
			log.Fatalf("Failed to parse markup: %v", err)
		}
	}

	opts := []imagetext.Option{imagetext.WithLCD(*lcd)}
	if *locale != "" {
		opts = append(opts, imagetext.WithLocale(*locale))
	}
	p, err := imagetext.NewPainter(opts...)
	if err != nil {
		log.Fatalf("Failed to create painter: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	verticalGradient(img, color.RGBA{B: 255, A: 255}, color.RGBA{R: 255, B: 128, A: 255})
	p.DrawText(img, block)

	if err := savePNG(img, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Text saved to %s (%dx%d)\n", *output, *width, *height)
}

// verticalGradient fills img with a linear blend from top to bottom.
func verticalGradient(img *image.RGBA, top, bottom color.RGBA) {
	b := img.Bounds()
	span := max(b.Dy()-1, 1)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t := float64(y-b.Min.Y) / float64(span)
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: lerp(top.A, bottom.A, t),
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
