package css

import "errors"

// Parse failures are reported as one of these sentinel kinds. Callers
// dispatch on them with errors.Is; the actual errors returned wrap the
// kind together with the offending input.
var (
	// ErrInvalidFormat indicates the input does not match the expected
	// linear-gradient(...) shape.
	ErrInvalidFormat = errors.New("invalid CSS gradient format")
	// ErrUnsupportedDirection indicates a direction other than left-to-right.
	ErrUnsupportedDirection = errors.New("unsupported gradient direction")
	// ErrTooFewColors indicates fewer than two color stops were present.
	ErrTooFewColors = errors.New("too few color stops")
	// ErrInvalidColor indicates a color token is not a 6-digit hex value.
	ErrInvalidColor = errors.New("invalid color")
)
