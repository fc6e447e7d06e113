package render

import (
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/units"
)

// Align is the horizontal alignment of text in a box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Frame is a local coordinate system for a rectangular area of the page.
// Its origin is the area's bottom-left corner and y grows upwards.
type Frame struct {
	c      Canvas
	bounds layout.Rect
}

// NewFrame returns a frame over bounds, given in page coordinates.
func NewFrame(c Canvas, bounds layout.Rect) Frame {
	return Frame{c: c, bounds: bounds}
}

// Width returns the frame width.
func (f Frame) Width() units.Length { return f.bounds.W }

// Height returns the frame height.
func (f Frame) Height() units.Length { return f.bounds.H }

// ToPage converts a frame-local point into page coordinates.
func (f Frame) ToPage(p layout.Point) layout.Point {
	return layout.Pt(p.X+f.bounds.X, p.Y+f.bounds.Y)
}

func (f Frame) rectToPage(r layout.Rect) layout.Rect {
	r.X += f.bounds.X
	r.Y += f.bounds.Y
	return r
}

// Line strokes a segment between two local points.
func (f Frame) Line(from, to layout.Point) {
	f.c.Line(f.ToPage(from), f.ToPage(to))
}

// HLine strokes a horizontal segment at local y spanning the frame width.
func (f Frame) HLine(y units.Length) {
	f.Line(layout.Pt(0, y), layout.Pt(f.Width(), y))
}

// VLine strokes a vertical segment at local x spanning the frame height.
func (f Frame) VLine(x units.Length) {
	f.Line(layout.Pt(x, 0), layout.Pt(x, f.Height()))
}

// FillRect fills a rectangle given in local coordinates.
func (f Frame) FillRect(r layout.Rect) {
	f.c.FillRect(f.rectToPage(r))
}

// StrokeBounds strokes the outline of the frame itself.
func (f Frame) StrokeBounds() {
	f.c.StrokeRect(f.bounds)
}

// Text draws s inside a local box whose top edge is at box.Top(). The first
// baseline sits one font ascent below the top.
func (f Frame) Text(s string, box layout.Rect, align Align, size units.Length) {
	f.c.SetFontSize(size)
	x := box.X
	switch align {
	case AlignCenter:
		x += (box.W - f.c.TextWidth(s)).Half()
	case AlignRight:
		x += box.W - f.c.TextWidth(s)
	}
	f.c.Text(s, f.ToPage(layout.Pt(x, box.Top()-ascent(size))))
}
