package css

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a 6-digit hex color token to a normalized
// color with each channel in [0, 1]. The leading "#" is optional.
// Shorthand forms like "#fff" are rejected: the accepted grammar is
// exactly two hex digits per channel.
func ParseHexColor(token string) (colorful.Color, error) {
	hex := strings.TrimPrefix(token, "#")
	if len(hex) != 6 || !isHexDigits(hex) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
	}
	return c, nil
}

// ParseColors converts each token in order, failing on the first
// malformed one.
func ParseColors(tokens []string) ([]colorful.Color, error) {
	colors := make([]colorful.Color, len(tokens))
	for i, token := range tokens {
		c, err := ParseHexColor(token)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	return colors, nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
