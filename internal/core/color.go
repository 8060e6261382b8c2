package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB colour for a screen cell.
type Color struct {
	R, G, B uint8
}

// Predefined colours matching the classic board.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorCyan  = Color{93, 216, 228}
	ColorRed   = Color{255, 0, 0}
	ColorGreen = Color{0, 255, 0}
)

// Hex returns the colour as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses "#rrggbb" (the leading '#' is optional).
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid colour %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Palette holds the board colours.
type Palette struct {
	Background Color
	Border     Color
	Apple      Color
	Snake      Color
	Text       Color
}

// DefaultPalette returns the classic colours: black board, cyan cell
// borders, red apple, green snake and white score text.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBlack,
		Border:     ColorCyan,
		Apple:      ColorRed,
		Snake:      ColorGreen,
		Text:       ColorWhite,
	}
}
