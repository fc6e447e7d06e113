package render

import (
	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/layout"
	"github.com/matzehuels/moatarget/pkg/moa"
	"github.com/matzehuels/moatarget/pkg/units"
)

// TableCell is one positioned cell of the distance table.
type TableCell struct {
	Text string
	// Box is the cell outline in page coordinates, padding included.
	Box layout.Rect
	// Baseline is where the cell text starts.
	Baseline layout.Point
}

// TableLayout is the distance table placed on the page.
type TableLayout struct {
	Bounds       layout.Rect
	ColumnWidths []units.Length
	RowHeight    units.Length
	Cells        [][]TableCell
}

// LayoutTable places rows as a two-column table flush with the top-right
// corner of area. Each column is as wide as its widest text plus padding on
// both sides. measure returns the width of a string at style.FontSize.
func LayoutTable(rows []moa.Row, style config.Table, area layout.Rect, measure func(string) units.Length) TableLayout {
	const columns = 2
	widths := make([]units.Length, columns)
	for _, row := range rows {
		for i, text := range row.Cells() {
			widths[i] = max(widths[i], measure(text))
		}
	}
	var total units.Length
	for i := range widths {
		widths[i] += 2 * style.Padding
		total += widths[i]
	}

	rowHeight := lineHeight(style.FontSize) + 2*style.Padding
	height := rowHeight.Mul(float64(len(rows)))
	t := TableLayout{
		Bounds:       layout.RectFromTopLeft(layout.Pt(area.Right()-total, area.Top()), total, height),
		ColumnWidths: widths,
		RowHeight:    rowHeight,
		Cells:        make([][]TableCell, len(rows)),
	}

	top := area.Top()
	for r, row := range rows {
		x := t.Bounds.X
		cells := make([]TableCell, 0, columns)
		for i, text := range row.Cells() {
			box := layout.RectFromTopLeft(layout.Pt(x, top), widths[i], rowHeight)
			cells = append(cells, TableCell{
				Text:     text,
				Box:      box,
				Baseline: layout.Pt(x+style.Padding, top-style.Padding-ascent(style.FontSize)),
			})
			x += widths[i]
		}
		t.Cells[r] = cells
		top -= rowHeight
	}
	return t
}

// drawTable strokes every cell border and writes the cell text.
func drawTable(c Canvas, t TableLayout, style config.Table, borderWidth units.Length) {
	c.SetFontSize(style.FontSize)
	c.SetLineWidth(borderWidth)
	c.SetStrokeColor(style.BorderColor)
	for _, row := range t.Cells {
		for _, cell := range row {
			c.StrokeRect(cell.Box)
		}
	}
	c.SetFillColor(style.TextColor)
	for _, row := range t.Cells {
		for _, cell := range row {
			c.Text(cell.Text, cell.Baseline)
		}
	}
}
