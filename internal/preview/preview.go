// Package preview renders a horizontal strip of a gradient to a PNG
// image so the result can be inspected without opening GIMP.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/colorgrad"
)

// Default strip dimensions.
const (
	DefaultWidth  = 512
	DefaultHeight = 64
)

// Render samples the color stops across a w-by-h horizontal strip.
// Stops are spaced evenly, matching the segment layout of the emitted
// gradient file, and blended in RGB the way GIMP's linear blending
// function does.
func Render(colors []colorful.Color, w, h int) (*image.RGBA, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("preview needs at least 2 color stops, got %d", len(colors))
	}
	if w < 2 || h < 1 {
		return nil, fmt.Errorf("preview dimensions %dx%d too small", w, h)
	}

	stops := make([]color.Color, len(colors))
	for i, c := range colors {
		stops[i] = c
	}
	grad, err := colorgrad.NewGradient().Colors(stops...).Build()
	if err != nil {
		return nil, fmt.Errorf("building preview gradient: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		c := grad.At(float64(x) / float64(w-1))
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
	return img, nil
}

// WritePNG renders the stops and writes the strip to path, creating
// parent directories as needed.
func WritePNG(path string, colors []colorful.Color, w, h int) error {
	img, err := Render(colors, w, h)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating preview directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding preview: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing preview file: %w", err)
	}
	return nil
}
