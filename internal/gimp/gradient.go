// Package gimp builds GIMP gradients from ordered color stops and
// serializes them in the .ggr text format GIMP reads from its
// gradients folder.
package gimp

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Selector values written into each segment line. GIMP defines several
// blending functions, coloring types, and endpoint color types; this
// generator only emits the defaults.
const (
	// BlendLinear selects the linear blending function.
	BlendLinear = 0
	// ColoringRGB selects plain RGB coloring.
	ColoringRGB = 0
	// EndpointFixed selects the fixed endpoint color type.
	EndpointFixed = 0
)

// RGBA holds one segment endpoint color with normalized channels in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Segment is one linear interval of a gradient. Left, Mid, and Right
// are positions in [0, 1]; Mid is always the arithmetic mean of the
// endpoints for segments produced by Build.
type Segment struct {
	Left  float64
	Mid   float64
	Right float64
	// LeftColor and RightColor are the endpoint colors, alpha included.
	LeftColor  RGBA
	RightColor RGBA
	// Blending, Coloring, LeftType, and RightType are the GIMP segment
	// selectors, fixed to the defaults above.
	Blending  int
	Coloring  int
	LeftType  int
	RightType int
}

// Gradient is an ordered sequence of segments plus the gradient name
// written into the file header.
type Gradient struct {
	Name     string
	Segments []Segment
}

// Build converts an ordered sequence of color stops into a gradient of
// len(colors)-1 segments partitioning [0, 1] into equal-width
// intervals. Adjacent segments share their boundary position exactly:
// segment i's right endpoint and segment i+1's left endpoint are the
// same value. Alpha is fixed at 1.0 on every endpoint.
func Build(name string, colors []colorful.Color) (*Gradient, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("gradient %q needs at least 2 color stops, got %d", name, len(colors))
	}

	n := len(colors) - 1
	segments := make([]Segment, n)
	for i := 0; i < n; i++ {
		left := float64(i) / float64(n)
		right := float64(i+1) / float64(n)
		segments[i] = Segment{
			Left:       left,
			Mid:        (left + right) / 2,
			Right:      right,
			LeftColor:  RGBA{R: colors[i].R, G: colors[i].G, B: colors[i].B, A: 1.0},
			RightColor: RGBA{R: colors[i+1].R, G: colors[i+1].G, B: colors[i+1].B, A: 1.0},
			Blending:   BlendLinear,
			Coloring:   ColoringRGB,
			LeftType:   EndpointFixed,
			RightType:  EndpointFixed,
		}
	}
	return &Gradient{Name: name, Segments: segments}, nil
}
