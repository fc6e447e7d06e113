// Package config holds the tunable values of a target: grid density, line
// widths, colors, the distance list and the table and ruler styles.
//
// [Default] reproduces the classic 2-boxes-per-inch target. A configuration
// can also be read from a TOML or YAML file with [Load]; any field left out of
// the file keeps its default value.
//
//	distances = [25, 50, 100]
//
//	[grid]
//	boxes_per_inch = 4
//	bull_color = "ff0000"
package config

import (
	"github.com/matzehuels/moatarget/pkg/errors"
	"github.com/matzehuels/moatarget/pkg/units"
)

// InchesPerSide is the target's side length in inches.
const InchesPerSide = 6

// DefaultOutput is the document written when no output path is given.
const DefaultOutput = "target.pdf"

// DefaultDistances are the shooting distances listed in the table, in yards.
var DefaultDistances = []int{7, 10, 15, 25, 50, 100, 200, 300}

// Grid describes the target grid.
type Grid struct {
	BoxesPerInch       int          `toml:"boxes_per_inch" yaml:"boxes_per_inch" json:"boxes_per_inch"`
	LineWidth          units.Length `toml:"line_width" yaml:"line_width" json:"line_width"`
	InchLineWidth      units.Length `toml:"inch_line_width" yaml:"inch_line_width" json:"inch_line_width"`
	CrosshairLineWidth units.Length `toml:"crosshair_line_width" yaml:"crosshair_line_width" json:"crosshair_line_width"`
	BullColor          Color        `toml:"bull_color" yaml:"bull_color" json:"bull_color"`
	LineColor          Color        `toml:"line_color" yaml:"line_color" json:"line_color"`
}

// BoxesPerSide returns the number of boxes along one side of the target.
func (g Grid) BoxesPerSide() int { return InchesPerSide * g.BoxesPerInch }

// BoxesPerBullSide returns the number of boxes along one side of the bullseye.
func (g Grid) BoxesPerBullSide() int { return g.BoxesPerInch }

// Table styles the distance table.
type Table struct {
	FontSize    units.Length `toml:"font_size" yaml:"font_size" json:"font_size"`
	Padding     units.Length `toml:"padding" yaml:"padding" json:"padding"`
	TextColor   Color        `toml:"text_color" yaml:"text_color" json:"text_color"`
	BorderColor Color        `toml:"border_color" yaml:"border_color" json:"border_color"`
}

// Ruler styles the 1-inch reference ruler.
type Ruler struct {
	Color      Color        `toml:"color" yaml:"color" json:"color"`
	TickHeight units.Length `toml:"tick_height" yaml:"tick_height" json:"tick_height"`
	Offset     units.Length `toml:"offset" yaml:"offset" json:"offset"`
	Label      string       `toml:"label" yaml:"label" json:"label"`
}

// Config is the complete description of one target document.
type Config struct {
	Title     string `toml:"title" yaml:"title" json:"title"`
	Output    string `toml:"output" yaml:"output" json:"output"`
	Distances []int  `toml:"distances" yaml:"distances" json:"distances"`
	Grid      Grid   `toml:"grid" yaml:"grid" json:"grid"`
	Table     Table  `toml:"table" yaml:"table" json:"table"`
	Ruler     Ruler  `toml:"ruler" yaml:"ruler" json:"ruler"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:     "MOA Grid Target",
		Output:    DefaultOutput,
		Distances: append([]int(nil), DefaultDistances...),
		Grid: Grid{
			BoxesPerInch:       2,
			LineWidth:          units.FromPoints(1),
			InchLineWidth:      units.FromPoints(3),
			CrosshairLineWidth: units.FromPoints(6),
			BullColor:          Orange,
			LineColor:          Black,
		},
		Table: Table{
			FontSize:    units.FromPoints(8),
			Padding:     units.FromPoints(3),
			TextColor:   Slate,
			BorderColor: Slate,
		},
		Ruler: Ruler{
			Color:      Gray,
			TickHeight: units.FromPoints(4),
			Offset:     units.FromPoints(8),
			Label:      `1"`,
		},
	}
}

// Validate checks the configuration before any drawing begins.
// Every violation is reported as INVALID_CONFIGURATION.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if len(c.Distances) == 0 {
		return invalid("at least one distance is required")
	}
	for _, yards := range c.Distances {
		if yards <= 0 {
			return invalid("distances must be positive, got %d", yards)
		}
	}
	if c.Table.FontSize <= 0 {
		return invalid("table font size must be positive, got %s", c.Table.FontSize)
	}
	if c.Table.Padding < 0 {
		return invalid("table padding cannot be negative, got %s", c.Table.Padding)
	}
	if c.Ruler.TickHeight < 0 || c.Ruler.Offset < 0 {
		return invalid("ruler tick height and offset cannot be negative")
	}
	return nil
}

// Validate checks the grid invariants: positive box counts, positive line
// widths and a bullseye no larger than the target.
func (g Grid) Validate() error {
	if g.BoxesPerInch <= 0 {
		return invalid("boxes per inch must be positive, got %d", g.BoxesPerInch)
	}
	if g.BoxesPerSide() <= 0 || g.BoxesPerBullSide() <= 0 {
		return invalid("box counts must be positive")
	}
	if g.BoxesPerBullSide() > g.BoxesPerSide() {
		return invalid("bullseye (%d boxes) is larger than the target (%d boxes)", g.BoxesPerBullSide(), g.BoxesPerSide())
	}
	if g.LineWidth <= 0 || g.InchLineWidth <= 0 || g.CrosshairLineWidth <= 0 {
		return invalid("line widths must be positive")
	}
	if g.LineWidth >= units.Inch {
		return invalid("line width %s leaves no room for the ruler", g.LineWidth)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfiguration, format, args...)
}
