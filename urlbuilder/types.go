package urlbuilder

// ResizeType selects the scaling strategy applied by the resize modifier.
type ResizeType string

const (
	// ResizeFit scales the image down so it fits within the requested box,
	// keeping the aspect ratio.
	ResizeFit ResizeType = "fit"

	// ResizeFill scales the image so it completely fills the requested box,
	// cropping the overflow.
	ResizeFill ResizeType = "fill"

	// ResizeFillDown behaves like fill but never enlarges; smaller images
	// keep their size and only the aspect ratio is adjusted.
	ResizeFillDown ResizeType = "fill-down"

	// ResizeForce scales to the exact requested dimensions, ignoring the
	// aspect ratio.
	ResizeForce ResizeType = "force"

	// ResizeAuto picks fill when source and target orientation match and fit
	// otherwise.
	ResizeAuto ResizeType = "auto"
)

// GravityType anchors crop and extend operations to a region of the image.
type GravityType string

const (
	GravityCenter    GravityType = "ce"
	GravityNorth     GravityType = "no"
	GravitySouth     GravityType = "so"
	GravityEast      GravityType = "ea"
	GravityWest      GravityType = "we"
	GravityNorthEast GravityType = "noea"
	GravityNorthWest GravityType = "nowe"
	GravitySouthEast GravityType = "soea"
	GravitySouthWest GravityType = "sowe"

	// GravitySmart lets the server pick the most interesting region itself.
	GravitySmart GravityType = "sm"
)

// WatermarkPosition places the watermark relative to the processed image.
type WatermarkPosition string

const (
	WatermarkCenter    WatermarkPosition = "ce"
	WatermarkNorth     WatermarkPosition = "no"
	WatermarkSouth     WatermarkPosition = "so"
	WatermarkEast      WatermarkPosition = "ea"
	WatermarkWest      WatermarkPosition = "we"
	WatermarkNorthEast WatermarkPosition = "noea"
	WatermarkNorthWest WatermarkPosition = "nowe"
	WatermarkSouthEast WatermarkPosition = "soea"
	WatermarkSouthWest WatermarkPosition = "sowe"

	// WatermarkReplicate tiles the watermark across the whole image.
	WatermarkReplicate WatermarkPosition = "re"
)

// Rotation is a rotation angle in degrees. Only quarter turns are valid.
type Rotation int

const (
	Rotate90  Rotation = 90
	Rotate180 Rotation = 180
	Rotate270 Rotation = 270
)

// Offset is a pixel displacement from a gravity or watermark anchor point.
type Offset struct {
	X float64
	Y float64
}
