package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/imgproxy-url-mcp/urlbuilder"
)

// anchorFor maps a gravity type onto the equivalent crop anchor. Smart
// gravity has no local equivalent and falls back to center.
func anchorFor(g urlbuilder.GravityType) imaging.Anchor {
	switch g {
	case urlbuilder.GravityNorth:
		return imaging.Top
	case urlbuilder.GravitySouth:
		return imaging.Bottom
	case urlbuilder.GravityEast:
		return imaging.Right
	case urlbuilder.GravityWest:
		return imaging.Left
	case urlbuilder.GravityNorthEast:
		return imaging.TopRight
	case urlbuilder.GravityNorthWest:
		return imaging.TopLeft
	case urlbuilder.GravitySouthEast:
		return imaging.BottomRight
	case urlbuilder.GravitySouthWest:
		return imaging.BottomLeft
	default:
		return imaging.Center
	}
}

// cropSize resolves a crop dimension against the source size: values >= 1
// are pixels, values between 0 and 1 are fractions, zero means the full
// dimension. Results are clamped to the source.
func cropSize(value float64, source int) int {
	switch {
	case value == 0:
		return source
	case value < 1:
		px := int(value * float64(source))
		if px < 1 {
			px = 1
		}
		return px
	default:
		px := int(value)
		if px > source {
			px = source
		}
		return px
	}
}

// applyCrop cuts the requested box out of the image, anchored by gravity.
func applyCrop(img image.Image, o urlbuilder.CropOptions) image.Image {
	bounds := img.Bounds()
	w := cropSize(o.Width, bounds.Dx())
	h := cropSize(o.Height, bounds.Dy())

	anchor := imaging.Center
	if o.Gravity != nil {
		anchor = anchorFor(o.Gravity.Type)
	}
	return imaging.CropAnchor(img, w, h, anchor)
}

// applyResize scales the image per the resize type. Fill-down renders as
// fill and auto as fit; see the package documentation.
func applyResize(img image.Image, o urlbuilder.ResizeOptions) image.Image {
	w, h := o.Width, o.Height
	if w == 0 && h == 0 {
		return img
	}
	if w == 0 || h == 0 {
		// One dimension unconstrained: every resize type degenerates to a
		// plain aspect-preserving scale. imaging.Resize treats a zero
		// dimension as "derive from the aspect ratio"; Fit and Fill would
		// return an empty image instead.
		return imaging.Resize(img, w, h, imaging.Lanczos)
	}

	switch o.Type {
	case urlbuilder.ResizeForce:
		return imaging.Resize(img, w, h, imaging.Lanczos)
	case urlbuilder.ResizeFill, urlbuilder.ResizeFillDown:
		return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
	default: // fit, auto
		return imaging.Fit(img, w, h, imaging.Lanczos)
	}
}

// applyRotate performs a clockwise quarter turn. The imaging package rotates
// counter-clockwise, so the angles are mirrored.
func applyRotate(img image.Image, angle urlbuilder.Rotation) image.Image {
	switch angle {
	case urlbuilder.Rotate90:
		return imaging.Rotate270(img)
	case urlbuilder.Rotate180:
		return imaging.Rotate180(img)
	case urlbuilder.Rotate270:
		return imaging.Rotate90(img)
	default:
		return img
	}
}

// expandPadding expands 1-4 CSS-shorthand values to top, right, bottom, left.
func expandPadding(values []int) (top, right, bottom, left int) {
	switch len(values) {
	case 1:
		return values[0], values[0], values[0], values[0]
	case 2:
		return values[0], values[1], values[0], values[1]
	case 3:
		return values[0], values[1], values[2], values[1]
	case 4:
		return values[0], values[1], values[2], values[3]
	default:
		return 0, 0, 0, 0
	}
}

// applyPadding draws the image onto a larger canvas filled with the given
// background color (transparent when bg is nil).
func applyPadding(img image.Image, values []int, bg color.Color) image.Image {
	top, right, bottom, left := expandPadding(values)
	if top == 0 && right == 0 && bottom == 0 && left == 0 {
		return img
	}

	bounds := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, bounds.Dx()+left+right, bounds.Dy()+top+bottom))
	if bg != nil {
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	draw.Draw(canvas,
		image.Rect(left, top, left+bounds.Dx(), top+bounds.Dy()),
		img, bounds.Min, draw.Over)
	return canvas
}
