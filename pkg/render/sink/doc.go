// Package sink provides the output formats for a rendered target.
//
// Each vector or raster format is a [render.Canvas] implementation:
//
//   - [NewPDFCanvas]: a single-page PDF using the standard Helvetica font
//   - [NewSVGCanvas]: an SVG 1.1 document
//   - [NewPNGCanvas]: a raster preview, 150 DPI unless set with [WithDPI]
//
// [RenderJSON] exports the computed layout itself rather than drawing it.
//
// [Render] picks the right one by format name and runs the full drawing
// sequence:
//
//	data, err := sink.Render(ctx, sink.FormatPDF, l, sink.WithTitle("MOA Grid Target"))
//
// All canvases share the same y-up point coordinate space and convert to
// their native orientation internally.
//
// [render.Canvas]: github.com/matzehuels/moatarget/pkg/render.Canvas
package sink
