// Package render draws a computed target layout onto a drawing surface.
//
// # Overview
//
// Rendering is split in two: [layout] computes where everything goes, and
// this package turns that layout into drawing calls on a [Canvas]. The
// concrete surfaces (PDF, SVG, PNG) live in the [sink] subpackage.
//
//	l, err := layout.Compute(config.Default())
//	c := sink.NewPDFCanvas(l.Page)
//	err = render.Renderer{Format: "pdf"}.Render(ctx, l, c, w)
//
// # Phases
//
// A document is drawn in four phases, always in this order:
//
//   - table: the distance/MOA table, right-aligned at the top of the margin box
//   - ruler: the 1-inch reference segment and its label
//   - target: bullseye, grid lines and crosshair inside the target frame
//   - finalize: the canvas serializes the page to the writer
//
// The first failing phase aborts the document; its error is reported as
// RENDERING_FAILURE.
//
// # Coordinates
//
// Canvas coordinates are points in a y-up page space with the origin at the
// bottom-left corner. A [Frame] gives a local origin to a sub-area of the
// page, the way the ruler and target are described.
//
// [layout]: github.com/matzehuels/moatarget/pkg/layout
// [sink]: github.com/matzehuels/moatarget/pkg/render/sink
package render
