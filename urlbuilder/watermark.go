package urlbuilder

import "fmt"

// WatermarkOptions configures the watermark modifier.
type WatermarkOptions struct {
	// Opacity is the watermark opacity, 0 (invisible) to 1 (opaque).
	Opacity float64

	// Position places the watermark. Empty leaves the server default.
	Position WatermarkPosition

	// Offset optionally shifts the watermark from its position, in pixels.
	// Ignored for WatermarkReplicate.
	Offset *Offset

	// Scale sizes the watermark relative to the image; zero keeps the
	// watermark's own size.
	Scale float64
}

// Watermark appends a watermark token
// ("wm:opacity[:position[:x:y[:scale]]]").
func (c *Chain) Watermark(o WatermarkOptions) *Chain {
	if o.Opacity < 0 || o.Opacity > 1 {
		panic(fmt.Sprintf("urlbuilder: watermark opacity must be 0-1, got %v", o.Opacity))
	}
	var x, y interface{}
	if o.Offset != nil {
		x, y = o.Offset.X, o.Offset.Y
	}
	return c.push(kindWatermark, stringifyArgs("wm",
		o.Opacity, optString(string(o.Position)), x, y, optFloat(o.Scale)))
}
