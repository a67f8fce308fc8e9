// Package config carries the explicit configuration for a conversion
// run: the gradient name, the output directory, and their platform
// defaults. Nothing here is ambient; the CLI builds an Options value
// and passes it down.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultName is the gradient name used when none is given. It doubles
// as the output file name (with a .ggr extension).
const DefaultName = "Custom Gradient"

// DefaultGradientDir returns the folder GIMP 2.10 scans for user
// gradients on the current platform.
func DefaultGradientDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Application Support", "GIMP", "2.10", "gradients")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "GIMP", "2.10", "gradients")
		}
		return filepath.Join(homeDir(), "GIMP", "2.10", "gradients")
	default:
		return filepath.Join(homeDir(), ".config", "GIMP", "2.10", "gradients")
	}
}

// ExpandPath resolves a leading "~" or "~/" to the user's home
// directory so the file writer never sees shell shorthand.
func ExpandPath(path string) string {
	if path == "~" {
		return homeDir()
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(homeDir(), path[2:])
	}
	return path
}

func homeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}
