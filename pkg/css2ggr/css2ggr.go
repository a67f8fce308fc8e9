package css2ggr

import (
	"io"
	"log/slog"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/opd-ai/css2ggr/internal/css"
	"github.com/opd-ai/css2ggr/internal/gimp"
)

// logger records pipeline stages at debug level. Silent unless a
// caller installs a real handler via SetLogger.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger installs a structured logger for pipeline stage logging.
// Passing nil restores the default discard logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = l
}

// Parse extracts the normalized color stops from a CSS linear-gradient
// declaration. Failures are one of the css package sentinel kinds.
func Parse(input string) ([]colorful.Color, error) {
	tokens, err := css.ParseGradient(input)
	if err != nil {
		return nil, err
	}
	colors, err := css.ParseColors(tokens)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed gradient", "stops", len(colors))
	return colors, nil
}

// Convert parses input and builds the named gradient. It performs no
// I/O; use ConvertTo or gimp.WriteFile to persist the result.
func Convert(input, name string) (*gimp.Gradient, error) {
	colors, err := Parse(input)
	if err != nil {
		return nil, err
	}
	g, err := gimp.Build(name, colors)
	if err != nil {
		return nil, err
	}
	logger.Debug("built gradient", "name", name, "segments", len(g.Segments))
	return g, nil
}

// ConvertTo converts input and writes the serialized gradient to path.
// Nothing is written when any pipeline stage fails.
func ConvertTo(path, input, name string) error {
	g, err := Convert(input, name)
	if err != nil {
		return err
	}
	if err := gimp.WriteFile(path, g); err != nil {
		return err
	}
	logger.Debug("wrote gradient file", "path", path)
	return nil
}
