package preview

import (
	"encoding/base64"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/ironsheep/imgproxy-url-mcp/urlbuilder"
)

// solidImage creates a w×h image filled with a single color.
func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// splitImage creates a w×h image whose left half is red and right half blue.
func splitImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, image.Rect(0, 0, w/2, h), image.NewUniform(color.NRGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(w/2, 0, w, h), image.NewUniform(color.NRGBA{B: 255, A: 255}), image.Point{}, draw.Src)
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func TestRender_ResizeDimensions(t *testing.T) {
	tests := []struct {
		name         string
		opts         urlbuilder.ResizeOptions
		wantW, wantH int
	}{
		{"fit scales down into box", urlbuilder.ResizeOptions{Type: urlbuilder.ResizeFit, Width: 50, Height: 80}, 50, 50},
		{"fill matches box exactly", urlbuilder.ResizeOptions{Type: urlbuilder.ResizeFill, Width: 60, Height: 30}, 60, 30},
		{"force ignores aspect ratio", urlbuilder.ResizeOptions{Type: urlbuilder.ResizeForce, Width: 40, Height: 80}, 40, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(100, 100, color.NRGBA{R: 255, A: 255})
			out, err := Render(img, Options{Resize: &tt.opts})
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRender_ResizeSingleDimension(t *testing.T) {
	// A zero width or height means "unconstrained": the missing dimension
	// comes from the source aspect ratio, for every resize type.
	tests := []struct {
		name         string
		opts         urlbuilder.ResizeOptions
		wantW, wantH int
	}{
		{"fit width only", urlbuilder.ResizeOptions{Type: urlbuilder.ResizeFit, Width: 60}, 60, 30},
		{"fit height only", urlbuilder.ResizeOptions{Type: urlbuilder.ResizeFit, Height: 25}, 50, 25},
		{"fill width only", urlbuilder.ResizeOptions{Type: urlbuilder.ResizeFill, Width: 40}, 40, 20},
		{"force height only", urlbuilder.ResizeOptions{Type: urlbuilder.ResizeForce, Height: 100}, 200, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(100, 50, color.NRGBA{R: 255, A: 255})
			out, err := Render(img, Options{Resize: &tt.opts})
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if out.Bounds().Empty() {
				t.Fatalf("resize with one zero dimension collapsed the image to %v", out.Bounds())
			}
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRender_CropFraction(t *testing.T) {
	img := solidImage(100, 100, color.NRGBA{R: 255, A: 255})
	out, err := Render(img, Options{Crop: &urlbuilder.CropOptions{Width: 0.5, Height: 0.25}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 25 {
		t.Errorf("dimensions: got %dx%d, want 50x25", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestRender_CropGravityWest(t *testing.T) {
	img := splitImage(100, 100)
	out, err := Render(img, Options{Crop: &urlbuilder.CropOptions{
		Width:   40,
		Height:  100,
		Gravity: &urlbuilder.GravityOptions{Type: urlbuilder.GravityWest},
	}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 100 {
		t.Fatalf("dimensions: got %dx%d, want 40x100", out.Bounds().Dx(), out.Bounds().Dy())
	}

	got := nrgbaAt(out, 5, 50)
	if got.R != 255 || got.B != 0 {
		t.Errorf("west-anchored crop should keep the red half, got %+v", got)
	}
}

func TestRender_RotateSwapsDimensions(t *testing.T) {
	img := solidImage(100, 50, color.NRGBA{R: 255, A: 255})
	for _, angle := range []urlbuilder.Rotation{urlbuilder.Rotate90, urlbuilder.Rotate270} {
		out, err := Render(img, Options{Rotate: angle})
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 100 {
			t.Errorf("rot %d: got %dx%d, want 50x100", angle, out.Bounds().Dx(), out.Bounds().Dy())
		}
	}
}

func TestRender_Padding(t *testing.T) {
	tests := []struct {
		name         string
		padding      []int
		wantW, wantH int
	}{
		{"uniform", []int{10}, 120, 120},
		{"vertical horizontal", []int{5, 10}, 120, 110},
		{"all four", []int{1, 2, 3, 4}, 106, 104},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := solidImage(100, 100, color.NRGBA{R: 255, A: 255})
			out, err := Render(img, Options{Padding: tt.padding})
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if out.Bounds().Dx() != tt.wantW || out.Bounds().Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d",
					out.Bounds().Dx(), out.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRender_BackgroundFlattensTransparency(t *testing.T) {
	img := solidImage(10, 10, color.NRGBA{}) // fully transparent
	bg := urlbuilder.HexColor("ff0000")

	out, err := Render(img, Options{Background: &bg})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	got := nrgbaAt(out, 5, 5)
	want := color.NRGBA{R: 255, A: 255}
	if got != want {
		t.Errorf("flattened pixel: got %+v, want %+v", got, want)
	}
}

func TestRender_BlurSoftensEdge(t *testing.T) {
	img := splitImage(20, 20)
	out, err := Render(img, Options{Blur: 2})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out.Bounds() != img.Bounds() {
		t.Fatalf("blur changed bounds: %v", out.Bounds())
	}

	// The pixel just left of the split starts pure red; blurring bleeds the
	// blue half into it.
	got := nrgbaAt(out, 9, 10)
	if got.R == 255 && got.B == 0 {
		t.Errorf("edge pixel unchanged after blur: %+v", got)
	}
}

func TestRender_DPRScales(t *testing.T) {
	img := solidImage(50, 50, color.NRGBA{R: 255, A: 255})
	out, err := Render(img, Options{DPR: 2})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Errorf("dimensions: got %dx%d, want 100x100", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestRender_InvalidOptions(t *testing.T) {
	img := solidImage(10, 10, color.NRGBA{R: 255, A: 255})

	if _, err := Render(img, Options{Padding: []int{1, 2, 3, 4, 5}}); err == nil {
		t.Error("Render should fail for more than 4 padding values")
	}
	if _, err := Render(img, Options{DPR: -1}); err == nil {
		t.Error("Render should fail for a negative dpr")
	}
}

func TestRender_NoOptionsReturnsSameDimensions(t *testing.T) {
	img := splitImage(30, 20)
	out, err := Render(img, Options{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out.Bounds().Dx() != 30 || out.Bounds().Dy() != 20 {
		t.Errorf("dimensions changed without options: %v", out.Bounds())
	}
	if got := nrgbaAt(out, 0, 0); got.R != 255 {
		t.Errorf("pixel content changed without options: %+v", got)
	}
}

func TestEncodePNG(t *testing.T) {
	result, err := EncodePNG(solidImage(8, 4, color.NRGBA{G: 255, A: 255}))
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	if result.Width != 8 || result.Height != 4 {
		t.Errorf("dimensions: got %dx%d, want 8x4", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if _, err := base64.StdEncoding.DecodeString(result.ImageBase64); err != nil {
		t.Errorf("failed to decode base64: %v", err)
	}
}
