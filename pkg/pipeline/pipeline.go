// Package pipeline provides the target generation pipeline.
//
// This package implements the complete configure → layout → render → write
// sequence used by the command line. Keeping it here means every entry point
// validates, names and writes documents the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: Validate the configuration and compute page geometry once
//  2. Render: Draw the layout in each requested format (PDF, SVG, PNG, JSON)
//  3. Write: Store each artifact atomically
//
// Validation happens before any stage runs, so an invalid configuration never
// produces output.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Formats: []string{"pdf", "png"},
//	    Output:  "target",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := runner.Write(ctx, result, result.Output)
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/render/sink"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultFormat is the output format when none is requested.
const DefaultFormat = sink.FormatPDF

// DefaultDPI is the PNG preview resolution.
const DefaultDPI = sink.DefaultDPI

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Config describes the target. Nil means [config.Default].
	Config *config.Config

	// Formats lists the outputs to produce, in order.
	Formats []string
	// Output is the destination path. With several formats its extension is
	// replaced by each format name.
	Output string
	// DPI is the PNG resolution.
	DPI float64
	// CreationDate fixes the PDF timestamp; zero means the time of rendering.
	CreationDate time.Time

	// Runtime options
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Layout is the computed page geometry shared by all formats.
	Layout layout.Layout

	// Formats lists the rendered formats in request order.
	Formats []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Output is the destination path from the options.
	Output string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayoutTime time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
	Bytes      int
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !sink.IsFormat(format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(sink.Formats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid and none is repeated.
func ValidateFormats(formats []string) error {
	seen := make(map[string]bool, len(formats))
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
		if seen[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "format %q requested twice", f)
		}
		seen[f] = true
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and checks every option.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills in unset options.
//
// Without an explicit Output, the configured output path is used with its
// extension matched to the single requested format, so "-f svg" writes
// target.svg rather than an SVG named target.pdf. With several formats the
// extension is dropped and each format appends its own.
func (o *Options) SetDefaults() {
	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Output == "" {
		out := o.Config.Output
		if out == "" {
			out = config.DefaultOutput
		}
		if len(o.Formats) == 1 {
			out = trimExt(out) + "." + o.Formats[0]
		} else {
			out = trimExt(out)
		}
		o.Output = out
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks formats, the output path and the target configuration.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if o.Config == nil {
		return errors.New(errors.ErrCodeInvalidConfiguration, "configuration is required")
	}
	return o.Config.Validate()
}

// sinkOptions returns the sink options for these pipeline options.
func (o *Options) sinkOptions() []sink.Option {
	opts := []sink.Option{
		sink.WithTitle(o.Config.Title),
		sink.WithDPI(o.DPI),
		sink.WithLogger(o.Logger),
	}
	if !o.CreationDate.IsZero() {
		opts = append(opts, sink.WithCreationDate(o.CreationDate))
	}
	return opts
}

// OutputPaths maps each format to its destination. A single format is
// written to output unchanged; several formats share output's base name with
// the format as extension.
func OutputPaths(output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := trimExt(output)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
