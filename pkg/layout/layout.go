package layout

import (
	"github.com/matzehuels/moatarget/pkg/config"
	"github.com/matzehuels/moatarget/pkg/moa"
	"github.com/matzehuels/moatarget/pkg/units"
)

// Crosshair is the pair of heavy center lines, drawn in target-frame
// coordinates at Offset on both axes.
type Crosshair struct {
	Offset units.Length `json:"offset"`
	Width  units.Length `json:"width"`
}

// Layout is everything a sink needs to draw one target page. It is computed
// once per configuration and shared by every output format.
type Layout struct {
	Title string `json:"title"`

	// Page is the full page; Margin is the margin box in page coordinates.
	Page   Bounds `json:"page"`
	Margin Rect   `json:"margin"`

	Geometry Geometry `json:"geometry"`
	// Ruler is relative to the margin box.
	Ruler Ruler `json:"ruler"`
	// Frame is the target bounding box in page coordinates. Bull, GridLines
	// and Crosshair are relative to it.
	Frame     Rect       `json:"frame"`
	Bull      Rect       `json:"bull"`
	GridLines []GridLine `json:"grid_lines"`
	Crosshair Crosshair  `json:"crosshair"`

	Rows []moa.Row `json:"rows"`

	Grid       config.Grid  `json:"grid"`
	TableStyle config.Table `json:"table_style"`
	RulerStyle config.Ruler `json:"ruler_style"`
}

// Compute validates cfg and lays out a US Letter page with half-inch margins.
func Compute(cfg config.Config) (Layout, error) {
	return ComputeOn(cfg, Letter, PageMargin)
}

// ComputeOn lays out cfg on a page of the given size and uniform margin.
//
// The target is centered on the full page while the ruler is placed within
// the margin box; with uniform margins both share the same center.
func ComputeOn(cfg config.Config, page Bounds, margin units.Length) (Layout, error) {
	if err := cfg.Validate(); err != nil {
		return Layout{}, err
	}

	g, err := ComputeGeometry(cfg.Grid, page)
	if err != nil {
		return Layout{}, err
	}
	box := page.MarginBox(margin)
	if _, err := ComputeGeometry(cfg.Grid, box.Size()); err != nil {
		return Layout{}, err
	}

	return Layout{
		Title:     cfg.Title,
		Page:      page,
		Margin:    box,
		Geometry:  g,
		Ruler:     ComputeRuler(g, box.Size(), cfg.Grid.LineWidth, cfg.Ruler),
		Frame:     TargetFrame(g, cfg.Grid.LineWidth),
		Bull:      BullRect(g),
		GridLines: GridLines(cfg.Grid, g),
		Crosshair: Crosshair{
			Offset: g.CrosshairOffset(),
			Width:  cfg.Grid.CrosshairLineWidth,
		},
		Rows:       moa.BuildTable(cfg.Distances, cfg.Grid.BoxesPerInch),
		Grid:       cfg.Grid,
		TableStyle: cfg.Table,
		RulerStyle: cfg.Ruler,
	}, nil
}

// RulerOnPage returns the ruler translated into page coordinates.
func (l Layout) RulerOnPage() Ruler {
	r := l.Ruler
	r.Left += l.Margin.X
	r.Right += l.Margin.X
	r.Y += l.Margin.Y
	r.LabelTop += l.Margin.Y
	return r
}
