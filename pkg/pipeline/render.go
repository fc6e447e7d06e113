package pipeline

import (
	"context"

	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. The first
// failing format aborts the run.
func Render(ctx context.Context, l layout.Layout, opts Options) (map[string][]byte, error) {
	sinkOpts := opts.sinkOptions()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := sink.Render(ctx, format, l, sinkOpts...)
		if err != nil {
			return nil, err
		}
		opts.Logger.Debug("rendered", "format", format, "bytes", len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}
