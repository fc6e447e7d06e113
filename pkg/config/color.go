package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB color written as six hex digits ("ffa500").
type Color struct {
	R, G, B uint8
}

// Palette colors used by the default configuration.
var (
	Black  = Color{0x00, 0x00, 0x00}
	White  = Color{0xff, 0xff, 0xff}
	Gray   = Color{0x99, 0x99, 0x99}
	Slate  = Color{0x77, 0x77, 0x77}
	Orange = Color{0xff, 0xa5, 0x00}
)

// ParseColor parses "rrggbb" or "#rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as six lowercase hex digits.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the color as "#rrggbb".
func (c Color) String() string { return "#" + c.Hex() }

// MarshalText encodes the color as six hex digits.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a color accepted by [ParseColor].
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
