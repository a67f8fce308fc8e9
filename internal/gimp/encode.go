package gimp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatHeader is the literal first line of every GIMP gradient file.
const FormatHeader = "GIMP Gradient"

// Encode writes the gradient in the GIMP gradient text format: a
// three-line header (format identifier, "Name: <name>", segment count)
// followed by one line per segment. Each segment line carries 15
// space-separated fields: the three positions, left RGBA, right RGBA,
// and the four selectors.
//
// Floats are formatted with strconv.FormatFloat('g', -1), the shortest
// representation that parses back to the same value; GIMP's reader is
// tolerant of precision, so round-trippability is the only requirement.
func (g *Gradient) Encode(w io.Writer) error {
	var b strings.Builder
	b.WriteString(FormatHeader)
	b.WriteByte('\n')
	b.WriteString("Name: ")
	b.WriteString(g.Name)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(len(g.Segments)))
	b.WriteByte('\n')
	for _, s := range g.Segments {
		writeSegment(&b, s)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing gradient: %w", err)
	}
	return nil
}

// String returns the serialized gradient text.
func (g *Gradient) String() string {
	var b strings.Builder
	_ = g.Encode(&b) // writes to a strings.Builder cannot fail
	return b.String()
}

func writeSegment(b *strings.Builder, s Segment) {
	floats := [11]float64{
		s.Left, s.Mid, s.Right,
		s.LeftColor.R, s.LeftColor.G, s.LeftColor.B, s.LeftColor.A,
		s.RightColor.R, s.RightColor.G, s.RightColor.B, s.RightColor.A,
	}
	for i, f := range floats {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	for _, sel := range [4]int{s.Blending, s.Coloring, s.LeftType, s.RightType} {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(sel))
	}
	b.WriteByte('\n')
}
