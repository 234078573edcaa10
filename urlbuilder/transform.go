package urlbuilder

import "fmt"

// ResizeOptions configures the resize modifier.
type ResizeOptions struct {
	// Type is the scaling strategy. Defaults to the server's configured
	// default when empty.
	Type ResizeType

	// Width and Height are the target box in pixels. Zero keeps the
	// corresponding dimension unconstrained.
	Width  int
	Height int

	// Enlarge permits upscaling beyond the source dimensions.
	Enlarge bool

	// Extend pads the result to the full requested size when the resized
	// image is smaller.
	Extend bool
}

// Resize appends a resize token ("rs:type:width:height[:enlarge[:extend]]").
func (c *Chain) Resize(o ResizeOptions) *Chain {
	return c.push(kindResize, stringifyArgs("rs",
		string(o.Type), o.Width, o.Height, optBool(o.Enlarge), optBool(o.Extend)))
}

// CropOptions configures the crop modifier.
type CropOptions struct {
	// Width and Height define the crop box. Values greater than or equal to
	// 1 are pixels; values between 0 and 1 are fractions of the source
	// dimension; zero means the full dimension.
	Width  float64
	Height float64

	// Gravity optionally anchors the crop box. When nil the chain's gravity
	// token (or the server default) applies.
	Gravity *GravityOptions
}

// Crop appends a crop token ("c:width:height[:gravity]").
func (c *Chain) Crop(o CropOptions) *Chain {
	var gravity interface{}
	if o.Gravity != nil {
		gravity = o.Gravity.subToken()
	}
	return c.push(kindCrop, stringifyArgs("c", o.Width, o.Height, gravity))
}

// Padding appends a padding token ("pd:top[:right[:bottom[:left]]]").
//
// Between one and four pixel values are accepted, CSS shorthand style: one
// value pads all sides, further values refine right, bottom, and left. Any
// other count is a programming error and panics.
func (c *Chain) Padding(values ...int) *Chain {
	if len(values) < 1 || len(values) > 4 {
		panic(fmt.Sprintf("urlbuilder: padding takes 1 to 4 values, got %d", len(values)))
	}
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return c.push(kindPadding, stringifyArgs("pd", args...))
}

// DPR appends a device-pixel-ratio token ("dpr:factor") multiplying all
// dimensions by the given factor. The factor must be positive.
func (c *Chain) DPR(factor float64) *Chain {
	if factor <= 0 {
		panic(fmt.Sprintf("urlbuilder: dpr factor must be positive, got %v", factor))
	}
	return c.push(kindDPR, stringifyArgs("dpr", factor))
}

// Rotate appends a rotation token ("rot:angle"). Only quarter turns (90, 180,
// 270) are valid; any other angle panics.
func (c *Chain) Rotate(angle Rotation) *Chain {
	switch angle {
	case Rotate90, Rotate180, Rotate270:
	default:
		panic(fmt.Sprintf("urlbuilder: rotation angle must be 90, 180 or 270, got %d", angle))
	}
	return c.push(kindRotate, stringifyArgs("rot", int(angle)))
}

// AutoRotate appends the auto-rotate flag token ("ar"), rotating the image
// according to its EXIF orientation.
func (c *Chain) AutoRotate() *Chain {
	return c.push(kindAutoRotate, "ar")
}

// TrimOptions configures the trim modifier, which cuts away near-solid
// borders.
type TrimOptions struct {
	// Threshold is the color-similarity tolerance; 0 trims only exact
	// matches.
	Threshold float64

	// Color is the border color to trim. The zero Color lets the server
	// detect it automatically.
	Color Color

	// EqualHor and EqualVer force equal amounts to be trimmed from the
	// left/right and top/bottom edges respectively.
	EqualHor bool
	EqualVer bool
}

// Trim appends a trim token ("t:threshold[:color[:equal-hor[:equal-ver]]]").
func (c *Chain) Trim(o TrimOptions) *Chain {
	var col interface{}
	if !o.Color.isZero() {
		col = o.Color.hexArg()
	}
	return c.push(kindTrim, stringifyArgs("t",
		o.Threshold, col, optBool(o.EqualHor), optBool(o.EqualVer)))
}
