package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/moatarget/pkg/errors"
	moaio "github.com/matzehuels/moatarget/pkg/io"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/observability"
)

// outputPerm is the permission of written documents.
const outputPerm = 0o644

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute validates opts, computes the layout once and renders every
// requested format. Nothing is written to disk; see [Runner.Write].
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Formats: opts.Formats,
		Output:  opts.Output,
	}

	// Stage 1: Layout
	layoutStart := time.Now()
	l, err := r.ComputeLayout(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Debug("computed layout",
		"boxes_per_inch", l.Geometry.BoxesPerInch,
		"spacing", l.Geometry.Spacing,
		"duration", result.Stats.LayoutTime)

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(ctx, l, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayout validates the configuration and lays out the page.
func (r *Runner) ComputeLayout(ctx context.Context, opts Options) (layout.Layout, error) {
	opts.SetDefaults()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Config.Grid.BoxesPerInch)
	start := time.Now()

	l, err := layout.Compute(*opts.Config)
	hooks.OnLayoutComplete(ctx, time.Since(start), err)
	return l, err
}

// Write stores every artifact of result atomically, naming files after
// output as described by [OutputPaths]. It returns the written paths in
// format order. Files written before a failure are kept.
func (r *Runner) Write(ctx context.Context, result *Result, output string) ([]string, error) {
	if result == nil || len(result.Formats) == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "nothing to write")
	}
	start := time.Now()
	hooks := observability.Output()
	targets := OutputPaths(output, result.Formats)

	written := make([]string, 0, len(result.Formats))
	for _, format := range result.Formats {
		if err := ctx.Err(); err != nil {
			return written, errors.Wrap(errors.ErrCodeRenderingFailure, err, "write cancelled")
		}
		path := targets[format]
		data, ok := result.Artifacts[format]
		if !ok {
			return written, errors.New(errors.ErrCodeInternal, "no %s artifact to write", format)
		}
		if err := moaio.WriteFileAtomic(path, data, outputPerm); err != nil {
			hooks.OnWriteError(ctx, path, err)
			return written, err
		}
		hooks.OnWrite(ctx, path, len(data))
		r.Logger.Debug("wrote output", "path", path, "size", formatBytes(len(data)))
		written = append(written, path)
	}
	result.Stats.WriteTime = time.Since(start)
	return written, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
