package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Options holds the settings for one conversion run.
type Options struct {
	// Gradient is the raw CSS linear-gradient declaration.
	Gradient string
	// Name is the gradient name written into the file header and used
	// as the output file name.
	Name string
	// OutputDir is the directory the .ggr file is written to.
	OutputDir string
	// PreviewPath, when non-empty, is where a PNG preview strip is
	// also written.
	PreviewPath string
}

// DefaultOptions returns Options with the default gradient name and
// the platform gradients directory. The gradient string has no
// default; it is always caller-supplied.
func DefaultOptions() Options {
	return Options{
		Name:      DefaultName,
		OutputDir: DefaultGradientDir(),
	}
}

// ValidationError describes a rejected option value.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ve.Field, ve.Message)
}

// Validate checks the options before the pipeline runs, so failures
// surface as argument errors rather than write errors.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Gradient) == "" {
		return ValidationError{Field: "gradient", Message: "CSS gradient string is required"}
	}
	if o.Name == "" {
		return ValidationError{Field: "name", Message: "gradient name must not be empty"}
	}
	if strings.ContainsAny(o.Name, `/\`) {
		return ValidationError{Field: "name", Message: "gradient name must not contain path separators"}
	}
	if o.OutputDir == "" {
		return ValidationError{Field: "output", Message: "output directory must not be empty"}
	}
	return nil
}

// OutputPath returns the resolved .ggr destination for these options.
func (o Options) OutputPath() string {
	return filepath.Join(ExpandPath(o.OutputDir), o.Name+".ggr")
}
