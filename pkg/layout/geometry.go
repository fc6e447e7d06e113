package layout

import (
	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/units"
)

// Geometry holds the concrete sizes derived from a grid configuration and
// the square target centered in a drawing area.
type Geometry struct {
	BoxesPerInch     int `json:"boxes_per_inch"`
	BoxesPerSide     int `json:"boxes_per_side"`
	BoxesPerBullSide int `json:"boxes_per_bull_side"`

	Spacing    units.Length `json:"spacing"`
	SideLength units.Length `json:"side_length"`
	BullLength units.Length `json:"bull_length"`
	// Delta is half the base line width; strokes are shifted by it so they
	// land on box boundaries instead of straddling them.
	Delta units.Length `json:"delta"`

	Bounds Bounds `json:"bounds"`
	Target Rect   `json:"target"`
}

// ComputeGeometry derives spacing, side and bull lengths and the centered
// target square. It fails with INVALID_CONFIGURATION when the grid is invalid
// or the target does not fit in bounds.
func ComputeGeometry(grid config.Grid, bounds Bounds) (Geometry, error) {
	if err := grid.Validate(); err != nil {
		return Geometry{}, err
	}
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return Geometry{}, errors.New(errors.ErrCodeInvalidConfiguration, "page bounds must be positive, got %s x %s", bounds.Width, bounds.Height)
	}

	spacing := units.Inch.Div(float64(grid.BoxesPerInch))
	side := spacing.Mul(float64(grid.BoxesPerSide()))
	bull := spacing.Mul(float64(grid.BoxesPerBullSide()))
	if side > bounds.Width || side > bounds.Height {
		return Geometry{}, errors.New(errors.ErrCodeInvalidConfiguration, "target side %s does not fit in %s x %s", side, bounds.Width, bounds.Height)
	}

	left := (bounds.Width - side).Half()
	bottom := (bounds.Height - side).Half()

	return Geometry{
		BoxesPerInch:     grid.BoxesPerInch,
		BoxesPerSide:     grid.BoxesPerSide(),
		BoxesPerBullSide: grid.BoxesPerBullSide(),
		Spacing:          spacing,
		SideLength:       side,
		BullLength:       bull,
		Delta:            grid.LineWidth.Half(),
		Bounds:           bounds,
		Target:           Rect{X: left, Y: bottom, W: side, H: side},
	}, nil
}

// TopLeft returns the top-left corner of the centered target square.
func (g Geometry) TopLeft() Point { return g.Target.TopLeft() }

// BottomRight returns the bottom-right corner of the centered target square.
func (g Geometry) BottomRight() Point { return g.Target.BottomRight() }

// Margins returns the space between the target square and each edge of the
// bounds.
func (g Geometry) Margins() (left, right, bottom, top units.Length) {
	return g.Target.Left(),
		g.Bounds.Width - g.Target.Right(),
		g.Target.Bottom(),
		g.Bounds.Height - g.Target.Top()
}

// CrosshairOffset is the distance from the grid origin to its center line.
// An odd box count rounds down to a whole box.
func (g Geometry) CrosshairOffset() units.Length {
	return g.Spacing.Mul(float64(g.BoxesPerSide / 2))
}

// GridLine is one interior line of the grid, drawn both vertically and
// horizontally at Offset from the grid origin.
type GridLine struct {
	Index  int          `json:"index"`
	Offset units.Length `json:"offset"`
	Width  units.Length `json:"width"`
	Inch   bool         `json:"inch,omitempty"`
}

// GridLines returns the interior lines 1..BoxesPerSide-1. Lines on a whole
// inch use the inch line width when there is more than one box per inch.
func GridLines(grid config.Grid, g Geometry) []GridLine {
	if g.BoxesPerSide < 2 {
		return nil
	}
	lines := make([]GridLine, 0, g.BoxesPerSide-1)
	for i := 1; i < g.BoxesPerSide; i++ {
		inch := g.BoxesPerInch > 1 && i%g.BoxesPerInch == 0
		width := grid.LineWidth
		if inch {
			width = grid.InchLineWidth
		}
		lines = append(lines, GridLine{
			Index:  i,
			Offset: g.Spacing.Mul(float64(i)),
			Width:  width,
			Inch:   inch,
		})
	}
	return lines
}

// TargetFrame returns the box, in full-page coordinates, that holds the grid.
// It is one line width larger than the target on each axis and shifted by
// Delta so the outer stroke lines up with the box boundaries.
func TargetFrame(g Geometry, lineWidth units.Length) Rect {
	size := g.SideLength + lineWidth
	left := g.Delta + (g.Bounds.Width-g.SideLength).Half() - lineWidth
	top := (g.Bounds.Height+g.SideLength).Half() + lineWidth
	return RectFromTopLeft(Pt(left, top), size, size)
}

// BullRect returns the bullseye square in target-frame coordinates.
func BullRect(g Geometry) Rect {
	tl := Pt(
		g.Delta+(g.SideLength-g.BullLength).Half(),
		g.Delta+(g.SideLength+g.BullLength).Half(),
	)
	return RectFromTopLeft(tl, g.BullLength, g.BullLength)
}
