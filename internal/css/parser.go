// Package css parses the restricted subset of CSS gradient syntax this
// tool accepts: a linear-gradient declaration with a left-to-right
// direction and 6-digit hex color stops.
package css

import (
	"fmt"
	"strings"
)

const funcPrefix = "linear-gradient("

// ParseGradient extracts the ordered color-stop tokens from a CSS
// linear-gradient declaration such as
//
//	linear-gradient(to right, #fbb040, #fdb453, #ffb865)
//
// The direction clause is everything inside the parentheses up to the
// first comma. It is accepted when it merely contains "to right", so a
// clause like "to right top" passes as well; this matches the behavior
// gradient authors relied on and is intentionally not tightened.
//
// Tokens are returned whitespace-trimmed and in declaration order. No
// color validation happens here; malformed tokens are caught by
// ParseHexColor.
func ParseGradient(input string) ([]string, error) {
	s := strings.TrimSpace(input)
	if !strings.HasPrefix(s, funcPrefix) || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}

	body := s[len(funcPrefix) : len(s)-1]
	direction, rest, ok := strings.Cut(body, ",")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, input)
	}
	if !strings.Contains(direction, "to right") {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDirection, strings.TrimSpace(direction))
	}

	parts := strings.Split(rest, ",")
	colors := make([]string, 0, len(parts))
	for _, part := range parts {
		colors = append(colors, strings.TrimSpace(part))
	}
	if len(colors) < 2 {
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrTooFewColors, len(colors))
	}
	return colors, nil
}
