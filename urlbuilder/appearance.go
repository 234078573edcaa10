package urlbuilder

import "fmt"

// Quality appends a quality token ("q:percentage"). The percentage must be
// between 0 and 100 inclusive; anything else panics.
func (c *Chain) Quality(percentage int) *Chain {
	if percentage < 0 || percentage > 100 {
		panic(fmt.Sprintf("urlbuilder: quality must be 0-100, got %d", percentage))
	}
	return c.push(kindQuality, stringifyArgs("q", percentage))
}

// Format appends a format token ("f:extension") selecting the output format,
// e.g. "png", "webp", "avif".
func (c *Chain) Format(extension string) *Chain {
	if extension == "" {
		panic("urlbuilder: format extension must not be empty")
	}
	return c.push(kindFormat, stringifyArgs("f", extension))
}

// Blur appends a gaussian blur token ("blur:sigma"). Sigma must be positive.
func (c *Chain) Blur(sigma float64) *Chain {
	if sigma <= 0 {
		panic(fmt.Sprintf("urlbuilder: blur sigma must be positive, got %v", sigma))
	}
	return c.push(kindBlur, stringifyArgs("blur", sigma))
}

// Sharpen appends a sharpen token ("sh:sigma"). Sigma must be positive.
func (c *Chain) Sharpen(sigma float64) *Chain {
	if sigma <= 0 {
		panic(fmt.Sprintf("urlbuilder: sharpen sigma must be positive, got %v", sigma))
	}
	return c.push(kindSharpen, stringifyArgs("sh", sigma))
}

// Background appends a background token filling transparent areas with the
// given color: "bg:R:G:B" for RGB colors, "bg:rrggbb" for hex colors.
func (c *Chain) Background(color Color) *Chain {
	if color.isZero() {
		panic("urlbuilder: background requires a color; use HexColor or RGBColor")
	}
	return c.push(kindBackground, stringifyArgs("bg", color.args()...))
}
