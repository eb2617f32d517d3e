// ABOUTME: Color value type decoded from the Win32 packed COLORREF integer
// ABOUTME: Provides hex rendering, parsing, and channel accessors
package syscolor

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color as reported by the system theme
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given channels
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromCOLORREF decodes a Win32 COLORREF (0x00BBGGRR).
// The high byte is ignored.
func FromCOLORREF(v uint32) Color {
	return Color{
		R: uint8(v & 0xFF),
		G: uint8((v >> 8) & 0xFF),
		B: uint8((v >> 16) & 0xFF),
	}
}

// COLORREF packs the color back into the Win32 layout
func (c Color) COLORREF() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// Bytes returns the channels in red, green, blue order
func (c Color) Bytes() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// RGBA implements image/color.Color. System colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xFFFF
	return
}

// String renders the color as #RRGGBB
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// GoString renders the color with named channels for %#v
func (c Color) GoString() string {
	return fmt.Sprintf("syscolor.Color{R:0x%02x, G:0x%02x, B:0x%02x}", c.R, c.G, c.B)
}

// MarshalText encodes the color as #RRGGBB
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a hex color accepted by ParseHex
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// HexError reports text that is not a hex color
type HexError struct {
	Input string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("invalid hex color %q: expected #RRGGBB or #RGB", e.Input)
}

// ParseHex parses #RRGGBB, RRGGBB, #RGB or RGB (case-insensitive)
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return Color{}, &HexError{Input: s}
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, &HexError{Input: s}
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
