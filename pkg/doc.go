// Package pkg provides the libraries behind moatarget, a generator for
// printable MOA grid shooting targets.
//
// # Overview
//
// A target is a square grid on a US Letter page with a filled bullseye, a
// thick crosshair, emphasized 1-inch lines, a 1-inch reference ruler and a
// table that says how many grid boxes span one minute of angle at each
// shooting distance.
//
// # Architecture
//
// The data flow through moatarget:
//
//	[config] package (defaults, TOML/YAML files, validation)
//	         ↓
//	[layout] package (page geometry, computed once)
//	         ↓
//	[render] package (table → ruler → target → finalize on a Canvas)
//	         ↓
//	[render/sink] package (PDF, SVG, PNG canvases and JSON export)
//	         ↓
//	[io] package (atomic writes)
//
// [pipeline] ties these stages together and [moa] classifies grid density
// for the distance table.
//
// # Quick Start
//
//	cfg := config.Default()
//	cfg.Grid.BoxesPerInch = 4
//
//	runner := pipeline.NewRunner(nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Config:  &cfg,
//	    Formats: []string{"pdf", "svg"},
//	    Output:  "target",
//	})
//	if err != nil {
//	    return err
//	}
//	paths, err := runner.Write(ctx, result, result.Output)
//
// # Units
//
// All geometry is expressed as [units.Length] values in PostScript points,
// 72 to the inch, with the origin at the bottom-left corner of the page.
//
// [config]: https://pkg.go.dev/github.com/matzehuels/moatarget/pkg/config
// [layout]: https://pkg.go.dev/github.com/matzehuels/moatarget/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/moatarget/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/moatarget/pkg/render/sink
// [io]: https://pkg.go.dev/github.com/matzehuels/moatarget/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/moatarget/pkg/pipeline
// [moa]: https://pkg.go.dev/github.com/matzehuels/moatarget/pkg/moa
// [units.Length]: https://pkg.go.dev/github.com/matzehuels/moatarget/pkg/units#Length
package pkg
