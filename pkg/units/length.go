// Package units provides a typed physical length for page geometry.
//
// All page coordinates in moatarget are expressed as [Length] values stored
// in PDF points (1/72 inch). Lengths are only created through the named
// constructors [FromPoints] and [FromInches] (or parsed from text), so a bare
// float never silently changes meaning between inches and points.
//
//	spacing := units.Inch.Div(2)        // half an inch
//	width := units.FromPoints(3)        // 3pt line
//	total := spacing.Mul(12).Add(width) // arithmetic stays in points
package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PointsPerInch is the number of PDF points in one inch.
const PointsPerInch = 72.0

// Length is a physical length stored in points.
type Length float64

// Common lengths.
const (
	Point Length = 1
	Inch  Length = PointsPerInch
)

// FromPoints returns a length of pt points.
func FromPoints(pt float64) Length { return Length(pt) }

// FromInches returns a length of in inches.
func FromInches(in float64) Length { return Length(in * PointsPerInch) }

// Points returns the length in points.
func (l Length) Points() float64 { return float64(l) }

// Inches returns the length in inches.
func (l Length) Inches() float64 { return float64(l) / PointsPerInch }

// Add returns l + o.
func (l Length) Add(o Length) Length { return l + o }

// Sub returns l - o.
func (l Length) Sub(o Length) Length { return l - o }

// Mul scales l by f.
func (l Length) Mul(f float64) Length { return Length(float64(l) * f) }

// Div divides l by d.
func (l Length) Div(d float64) Length { return Length(float64(l) / d) }

// Half returns l / 2.
func (l Length) Half() Length { return l / 2 }

// Ratio returns l / o as a plain number.
func (l Length) Ratio(o Length) float64 { return float64(l) / float64(o) }

// Abs returns the absolute length.
func (l Length) Abs() Length { return Length(math.Abs(float64(l))) }

// ApproxEqual reports whether l and o differ by at most tol.
func (l Length) ApproxEqual(o, tol Length) bool { return (l - o).Abs() <= tol }

// String formats the length in points, e.g. "36pt".
func (l Length) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "pt"
}

// ParseLength parses "<n>pt", "<n>in" or a bare number of points.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "pt"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "pt"))
	case strings.HasSuffix(s, "in"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "in"))
		scale = PointsPerInch
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid length %q", s)
	}
	return Length(v * scale), nil
}

// MarshalText encodes the length as "<n>pt".
func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a length accepted by [ParseLength].
func (l *Length) UnmarshalText(text []byte) error {
	v, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
