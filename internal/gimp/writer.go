package gimp

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile serializes the gradient to path, creating parent
// directories as needed. An existing file at path is overwritten.
func WriteFile(path string, g *Gradient) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating gradient directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating gradient file: %w", err)
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing gradient file: %w", err)
	}
	return nil
}
