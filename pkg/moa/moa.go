// Package moa describes grid resolution in minutes of arc.
//
// At 100 yards one MOA subtends (roughly) one inch, so a grid with n boxes
// per inch shows n boxes per MOA at 100 yards, 2n at 200 yards and n/2 at 50.
// [Classify] turns that density into one of four readable forms:
//
//	1 square per MOA
//	7 MOA per square
//	2 squares per MOA
//	1.5 squares per MOA
//
// The thresholds (a whole-MOA floor test, then a 10% band around the nearest
// whole number of boxes) decide which form is used. Values near a boundary
// are sensitive to floating point, so they are evaluated exactly as written.
package moa

import (
	"fmt"
	"math"
)

// Kind identifies the form of a density description.
type Kind int

const (
	// OneSquarePerMOA means one box subtends about one MOA.
	OneSquarePerMOA Kind = iota
	// MOAPerSquare means one box subtends a whole number of MOA.
	MOAPerSquare
	// SquaresPerMOA means a whole number of boxes fit in one MOA.
	SquaresPerMOA
	// SquaresPerMOAFractional means a fractional number of boxes fit in one MOA.
	SquaresPerMOAFractional
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case OneSquarePerMOA:
		return "one-square-per-moa"
	case MOAPerSquare:
		return "moa-per-square"
	case SquaresPerMOA:
		return "squares-per-moa"
	case SquaresPerMOAFractional:
		return "squares-per-moa-fractional"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// toleranceBand is the relative distance from a whole number of boxes per
// MOA within which the count is shown as a whole number.
const toleranceBand = 0.1

// Density is a classified grid resolution at one distance.
type Density struct {
	Kind Kind
	// Count is the whole number shown for MOAPerSquare and SquaresPerMOA.
	Count int
	// Value is the boxes-per-MOA figure shown for SquaresPerMOAFractional.
	Value float64
}

// BoxesPerMOA returns how many boxes span one MOA at the given distance.
func BoxesPerMOA(yards, boxesPerInch int) float64 {
	return (float64(yards) / 100.0) * float64(boxesPerInch)
}

// Classify describes the grid density at yards for a grid with boxesPerInch.
func Classify(yards, boxesPerInch int) Density {
	return ClassifyBoxesPerMOA(BoxesPerMOA(yards, boxesPerInch))
}

// ClassifyBoxesPerMOA classifies a raw boxes-per-MOA figure.
//
// When a box covers at least one MOA the result is expressed as MOA per
// square (or exactly one square per MOA). Otherwise the boxes-per-MOA figure
// is shown as a whole number when it is within 10% of one, inclusive, and
// with one decimal place when it is not.
func ClassifyBoxesPerMOA(boxesPerMOA float64) Density {
	moaPerBox := 1 / boxesPerMOA
	if math.Floor(moaPerBox) > 0 {
		n := int(math.Round(moaPerBox))
		if n == 1 {
			return Density{Kind: OneSquarePerMOA, Count: 1}
		}
		return Density{Kind: MOAPerSquare, Count: n}
	}

	nearest := math.Round(boxesPerMOA)
	if math.Abs(boxesPerMOA-nearest) <= boxesPerMOA*toleranceBand {
		return Density{Kind: SquaresPerMOA, Count: int(nearest)}
	}
	return Density{Kind: SquaresPerMOAFractional, Value: boxesPerMOA}
}

// String formats the density for the distance table.
func (d Density) String() string {
	switch d.Kind {
	case OneSquarePerMOA:
		return "1 square per MOA"
	case MOAPerSquare:
		return fmt.Sprintf("%d MOA per square", d.Count)
	case SquaresPerMOA:
		return fmt.Sprintf("%d squares per MOA", d.Count)
	default:
		return fmt.Sprintf("%.1f squares per MOA", d.Value)
	}
}

// Describe returns the density description for yards.
func Describe(yards, boxesPerInch int) string {
	return Classify(yards, boxesPerInch).String()
}

// Row is one line of the distance table.
type Row struct {
	Yards       int     `json:"yards"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Density     Density `json:"-"`
}

// Cells returns the row as table cells.
func (r Row) Cells() []string { return []string{r.Label, r.Description} }

// BuildTable maps each distance to a row, preserving order.
func BuildTable(distances []int, boxesPerInch int) []Row {
	rows := make([]Row, len(distances))
	for i, yards := range distances {
		d := Classify(yards, boxesPerInch)
		rows[i] = Row{
			Yards:       yards,
			Label:       fmt.Sprintf("%d yards", yards),
			Description: d.String(),
			Density:     d,
		}
	}
	return rows
}
