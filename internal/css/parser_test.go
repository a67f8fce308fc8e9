package css

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseGradient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"three stops",
			"linear-gradient(to right, #fbb040, #fdb453, #ffb865)",
			[]string{"#fbb040", "#fdb453", "#ffb865"},
		},
		{
			"two stops",
			"linear-gradient(to right, #ff0000, #00ff00)",
			[]string{"#ff0000", "#00ff00"},
		},
		{
			"five stops",
			"linear-gradient(to right, #fbb040, #fdb453, #ffb865, #ffbc76, #ffc186)",
			[]string{"#fbb040", "#fdb453", "#ffb865", "#ffbc76", "#ffc186"},
		},
		{
			"irregular whitespace",
			"linear-gradient(to right,#ff0000 ,  #00ff00)",
			[]string{"#ff0000", "#00ff00"},
		},
		{
			"surrounding whitespace",
			"  linear-gradient(to right, #ff0000, #00ff00)  ",
			[]string{"#ff0000", "#00ff00"},
		},
		{
			// Containment check, not equality: compound directions
			// that still head rightward are accepted.
			"compound direction",
			"linear-gradient(to right top, #ff0000, #00ff00)",
			[]string{"#ff0000", "#00ff00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGradient(tt.input)
			if err != nil {
				t.Fatalf("ParseGradient(%q) failed: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseGradient(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseGradientErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrInvalidFormat},
		{"not a gradient", "radial-gradient(circle, #fff000, #000fff)", ErrInvalidFormat},
		{"missing closing paren", "linear-gradient(to right, #ff0000, #00ff00", ErrInvalidFormat},
		{"no comma", "linear-gradient(to right)", ErrInvalidFormat},
		{"to left", "linear-gradient(to left, #fff000, #000fff)", ErrUnsupportedDirection},
		{"to bottom", "linear-gradient(to bottom, #ff0000, #00ff00)", ErrUnsupportedDirection},
		{"angle direction", "linear-gradient(45deg, #ff0000, #00ff00)", ErrUnsupportedDirection},
		{"single color", "linear-gradient(to right, #fbb040)", ErrTooFewColors},
		{"direction only", "linear-gradient(to right,)", ErrTooFewColors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGradient(tt.input)
			if err == nil {
				t.Fatalf("ParseGradient(%q) = %v, want error", tt.input, got)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseGradient(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParseGradientDefersColorValidation(t *testing.T) {
	// Malformed tokens pass through the parser untouched; the color
	// converter is responsible for rejecting them.
	got, err := ParseGradient("linear-gradient(to right, #xyz123, #000000)")
	if err != nil {
		t.Fatalf("ParseGradient failed: %v", err)
	}
	want := []string{"#xyz123", "#000000"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseGradient = %v, want %v", got, want)
	}
}
