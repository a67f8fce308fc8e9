package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGradientDir(t *testing.T) {
	dir := DefaultGradientDir()
	if dir == "" {
		t.Fatal("DefaultGradientDir returned empty string")
	}
	if !strings.Contains(dir, "gradients") {
		t.Errorf("DefaultGradientDir() = %q, want a GIMP gradients path", dir)
	}
	if !strings.Contains(dir, filepath.Join("GIMP", "2.10")) {
		t.Errorf("DefaultGradientDir() = %q, want a GIMP 2.10 path", dir)
	}
}

func TestExpandPath(t *testing.T) {
	home := homeDir()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde prefix", "~/gradients", filepath.Join(home, "gradients")},
		{"absolute untouched", "/tmp/gradients", "/tmp/gradients"},
		{"relative untouched", "out/gradients", "out/gradients"},
		{"tilde mid-path untouched", "/tmp/~x", "/tmp/~x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
