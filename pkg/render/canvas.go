package render

import (
	"io"

	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/units"
)

// Canvas is a single-page drawing surface.
//
// Drawing calls do not return errors. A canvas records the first failure and
// reports it from Err and Finish, so a phase can issue its calls and check
// once at the end.
type Canvas interface {
	// PageSize returns the page dimensions the canvas was created with.
	PageSize() layout.Bounds

	SetStrokeColor(c config.Color)
	SetFillColor(c config.Color)
	SetLineWidth(w units.Length)

	// Line strokes a straight segment with the stroke color and line width.
	Line(from, to layout.Point)
	// FillRect fills r with the fill color.
	FillRect(r layout.Rect)
	// StrokeRect strokes the outline of r, centered on its edges.
	StrokeRect(r layout.Rect)

	SetFontSize(size units.Length)
	// TextWidth measures s in the current font size.
	TextWidth(s string) units.Length
	// Text draws s with its baseline starting at p, using the fill color.
	Text(s string, p layout.Point)

	// Err returns the first drawing error, if any.
	Err() error
	// Finish serializes the page to w. The canvas must not be used after.
	Finish(w io.Writer) error
}

// Font metrics shared by every surface. They match Helvetica, the standard
// PDF font, closely enough for the sans-serif faces used by the raster and
// vector sinks.
const (
	fontAscent     = 0.718
	fontLineHeight = 0.925
)

// ascent returns the distance from the top of a line box to the baseline.
func ascent(size units.Length) units.Length { return size.Mul(fontAscent) }

// lineHeight returns the height of one line of text.
func lineHeight(size units.Length) units.Length { return size.Mul(fontLineHeight) }
