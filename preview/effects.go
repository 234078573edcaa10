package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// applyBlur runs a gaussian blur with the given sigma. Non-positive sigmas
// are a no-op.
func applyBlur(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return img
	}
	return blur.Gaussian(img, sigma)
}

// applySharpen runs an unsharp mask with the given sigma as radius.
// Non-positive sigmas are a no-op.
func applySharpen(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return img
	}
	return effect.UnsharpMask(img, sigma, 1.0)
}

// flattenBackground composites the image over an opaque canvas of the given
// color, discarding transparency the way imgproxy's bg modifier does.
func flattenBackground(img image.Image, bg color.Color) image.Image {
	bounds := img.Bounds()
	canvas := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Over)
	return canvas
}
