package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/imgproxy-url-mcp/urlbuilder"
)

// Options selects which visual modifiers to apply. Nil pointers and zero
// values mean "not set"; the option records are the same ones the URL builder
// consumes, so a caller assembles one set of values for both the URL and the
// preview.
type Options struct {
	Resize     *urlbuilder.ResizeOptions
	Crop       *urlbuilder.CropOptions
	Padding    []int
	Rotate     urlbuilder.Rotation
	Background *urlbuilder.Color
	Blur       float64
	Sharpen    float64
	DPR        float64
}

// RenderResult carries a rendered preview as base64-encoded PNG.
type RenderResult struct {
	// Width of the rendered image in pixels.
	Width int `json:"width"`

	// Height of the rendered image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the rendered image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// Render applies the selected modifiers to img and returns the result. The
// input image is never modified.
//
// Modifiers run in imgproxy's processing order: crop, resize, rotate,
// padding, background flattening, blur, sharpen, dpr scaling. See the
// package documentation for the fidelity caveats.
func Render(img image.Image, opts Options) (image.Image, error) {
	if opts.DPR < 0 {
		return nil, fmt.Errorf("dpr must not be negative, got %v", opts.DPR)
	}
	if len(opts.Padding) > 4 {
		return nil, fmt.Errorf("padding takes at most 4 values, got %d", len(opts.Padding))
	}

	out := img
	if opts.Crop != nil {
		out = applyCrop(out, *opts.Crop)
	}
	if opts.Resize != nil {
		out = applyResize(out, *opts.Resize)
	}
	if opts.Rotate != 0 {
		out = applyRotate(out, opts.Rotate)
	}
	if len(opts.Padding) > 0 {
		var bg color.Color
		if opts.Background != nil {
			bg = opts.Background.NRGBA()
		}
		out = applyPadding(out, opts.Padding, bg)
	}
	if opts.Background != nil {
		out = flattenBackground(out, opts.Background.NRGBA())
	}
	out = applyBlur(out, opts.Blur)
	out = applySharpen(out, opts.Sharpen)

	if opts.DPR > 0 && opts.DPR != 1 {
		bounds := out.Bounds()
		w := int(float64(bounds.Dx()) * opts.DPR)
		h := int(float64(bounds.Dy()) * opts.DPR)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("dpr %v collapses the image to zero size", opts.DPR)
		}
		out = imaging.Resize(out, w, h, imaging.Lanczos)
	}

	return out, nil
}

// EncodePNG packages an image as a base64 PNG result suitable for returning
// over the MCP wire.
func EncodePNG(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	bounds := img.Bounds()
	return &RenderResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
