package urlbuilder

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a color value for the background and trim modifiers.
//
// Construct one with HexColor or RGBColor. The two constructors render
// differently on the wire: a hex color becomes a single "rrggbb" argument,
// an RGB color becomes three "R:G:B" arguments. The zero Color means
// "no color supplied" and is omitted from tokens that treat color as
// optional.
type Color struct {
	hex     string
	r, g, b uint8
	rgb     bool
}

// HexColor parses a hex color string ("#rrggbb", "rrggbb", or the short
// "#rgb" form) and returns it normalized to lowercase six-digit form.
//
// Malformed input is a programming error and panics; color values are
// expected to be literals or already-validated configuration.
func HexColor(s string) Color {
	trimmed := strings.TrimPrefix(s, "#")
	parsed, err := colorful.Hex("#" + trimmed)
	if err != nil {
		panic(fmt.Sprintf("urlbuilder: invalid hex color %q: %v", s, err))
	}
	return Color{hex: strings.TrimPrefix(parsed.Hex(), "#")}
}

// RGBColor builds a Color from 8-bit red, green and blue components.
func RGBColor(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, rgb: true}
}

// NRGBA returns the color as an opaque image/color value, for callers that
// render the color locally.
func (c Color) NRGBA() color.NRGBA {
	if c.rgb {
		return color.NRGBA{R: c.r, G: c.g, B: c.b, A: 255}
	}
	parsed, _ := colorful.Hex("#" + c.hex) // validated at construction
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// isZero reports whether the color was never set. RGBColor(0, 0, 0) is black,
// not zero.
func (c Color) isZero() bool {
	return !c.rgb && c.hex == ""
}

// args returns the color's token arguments: [r, g, b] for RGB colors,
// ["rrggbb"] for hex colors.
func (c Color) args() []interface{} {
	if c.rgb {
		return []interface{}{int(c.r), int(c.g), int(c.b)}
	}
	return []interface{}{c.hex}
}

// hexArg returns the color as a single hex argument, converting RGB colors as
// needed. Used by modifiers whose grammar only accepts hex form.
func (c Color) hexArg() string {
	if c.rgb {
		return strings.TrimPrefix(colorful.Color{
			R: float64(c.r) / 255,
			G: float64(c.g) / 255,
			B: float64(c.b) / 255,
		}.Hex(), "#")
	}
	return c.hex
}
