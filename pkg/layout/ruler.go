package layout

import (
	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/units"
)

// Ruler is a horizontal 1-inch reference segment with end ticks and a
// centered label. Coordinates are relative to the bounds it was computed in.
type Ruler struct {
	Left           units.Length `json:"left"`
	Right          units.Length `json:"right"`
	Y              units.Length `json:"y"`
	TickHalfHeight units.Length `json:"tick_half_height"`
	// LabelTop is the top edge of the label box, which spans Left..Right.
	LabelTop units.Length `json:"label_top"`
	Label    string       `json:"label"`
}

// Width returns the length of the ruler segment.
func (r Ruler) Width() units.Length { return r.Right - r.Left }

// ComputeRuler places the ruler flush with the right edge of a target of
// side g.SideLength centered in bounds, style.Offset beyond its top edge.
// The segment is one line width short of an inch so that, with the end ticks
// stroked, the outer tick edges are exactly one inch apart.
func ComputeRuler(g Geometry, bounds Bounds, lineWidth units.Length, style config.Ruler) Ruler {
	right := (bounds.Width-g.SideLength).Half() + g.SideLength
	width := units.Inch - lineWidth
	y := (bounds.Height-g.SideLength).Half() + g.SideLength + style.Offset
	return Ruler{
		Left:           right - width,
		Right:          right,
		Y:              y,
		TickHalfHeight: style.TickHeight,
		LabelTop:       y + style.Offset,
		Label:          style.Label,
	}
}
