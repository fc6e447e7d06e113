package layout

import "github.com/matzehuels/moatarget/pkg/units"

// Point is a position in y-up coordinates (origin at the bottom-left).
type Point struct {
	X units.Length `json:"x"`
	Y units.Length `json:"y"`
}

// Pt builds a point from two lengths.
func Pt(x, y units.Length) Point { return Point{X: x, Y: y} }

// Add translates p by o.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X units.Length `json:"x"`
	Y units.Length `json:"y"`
	W units.Length `json:"w"`
	H units.Length `json:"h"`
}

// RectFromTopLeft builds a rectangle from its top-left corner and size.
func RectFromTopLeft(tl Point, w, h units.Length) Rect {
	return Rect{X: tl.X, Y: tl.Y - h, W: w, H: h}
}

// Left returns the left edge.
func (r Rect) Left() units.Length { return r.X }

// Right returns the right edge.
func (r Rect) Right() units.Length { return r.X + r.W }

// Bottom returns the bottom edge.
func (r Rect) Bottom() units.Length { return r.Y }

// Top returns the top edge.
func (r Rect) Top() units.Length { return r.Y + r.H }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.X, Y: r.Top()} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{X: r.Right(), Y: r.Y} }

// Center returns the center point.
func (r Rect) Center() Point { return Point{X: r.X + r.W.Half(), Y: r.Y + r.H.Half()} }

// Bounds is the usable width and height of a drawing area.
type Bounds struct {
	Width  units.Length `json:"width"`
	Height units.Length `json:"height"`
}

// US Letter page in points and the default page margin.
var (
	Letter     = Bounds{Width: units.FromInches(8.5), Height: units.FromInches(11)}
	PageMargin = units.FromInches(0.5)
)

// MarginBox returns the area inside a uniform margin, in page coordinates.
func (b Bounds) MarginBox(margin units.Length) Rect {
	return Rect{X: margin, Y: margin, W: b.Width - 2*margin, H: b.Height - 2*margin}
}

// Size returns the bounds of r.
func (r Rect) Size() Bounds { return Bounds{Width: r.W, Height: r.H} }
