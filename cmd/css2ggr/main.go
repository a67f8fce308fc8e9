// Package main provides the css2ggr command, which converts a CSS
// linear-gradient declaration into a GIMP gradient (.ggr) file in the
// user's gradients folder.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/opd-ai/css2ggr/internal/config"
	"github.com/opd-ai/css2ggr/internal/css"
	"github.com/opd-ai/css2ggr/internal/gimp"
	"github.com/opd-ai/css2ggr/internal/preview"
	"github.com/opd-ai/css2ggr/pkg/css2ggr"
)

// Version is the current version of css2ggr.
// This default value can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

// Exit codes, one per error kind, so scripts can tell failures apart.
const (
	exitOK        = 0
	exitUsage     = 1
	exitFormat    = 2
	exitDirection = 3
	exitTooFew    = 4
	exitColor     = 5
	exitWrite     = 6
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("css2ggr", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", config.DefaultName, "Name of the GIMP gradient")
	output := fs.String("output", config.DefaultGradientDir(), "Output directory for the .ggr file")
	previewPath := fs.String("preview", "", "Also write a PNG preview strip to this path")
	debug := fs.Bool("debug", false, "Enable debug logging to stderr")
	version := fs.Bool("v", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, `Usage: css2ggr [flags] "linear-gradient(to right, #fbb040, #fdb453, #ffb865)"`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *version {
		fmt.Fprintf(stdout, "css2ggr version %s\n", Version)
		return exitOK
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	if *debug {
		handler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		css2ggr.SetLogger(slog.New(handler))
	}

	opts := config.Options{
		Gradient:    fs.Arg(0),
		Name:        *name,
		OutputDir:   *output,
		PreviewPath: *previewPath,
	}
	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid arguments: %v\n", err)
		return exitUsage
	}

	colors, err := css2ggr.Parse(opts.Gradient)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return parseExitCode(err)
	}
	g, err := gimp.Build(opts.Name, colors)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	path := opts.OutputPath()
	if err := gimp.WriteFile(path, g); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitWrite
	}
	fmt.Fprintf(stdout, "GIMP gradient saved to: %s\n", path)

	if opts.PreviewPath != "" {
		p := config.ExpandPath(opts.PreviewPath)
		if err := preview.WritePNG(p, colors, preview.DefaultWidth, preview.DefaultHeight); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitWrite
		}
		fmt.Fprintf(stdout, "Preview image saved to: %s\n", p)
	}
	return exitOK
}

// parseExitCode maps a parse-stage error kind to its exit code.
func parseExitCode(err error) int {
	switch {
	case errors.Is(err, css.ErrUnsupportedDirection):
		return exitDirection
	case errors.Is(err, css.ErrTooFewColors):
		return exitTooFew
	case errors.Is(err, css.ErrInvalidColor):
		return exitColor
	case errors.Is(err, css.ErrInvalidFormat):
		return exitFormat
	}
	return exitUsage
}
