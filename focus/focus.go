package focus

import (
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"

	"github.com/ironsheep/imgproxy-url-mcp/urlbuilder"
)

// Suggestion is a locally computed gravity recommendation.
type Suggestion struct {
	// Gravity is the 3×3 grid cell holding the edge-mass centroid.
	Gravity urlbuilder.GravityType `json:"gravity"`

	// OffsetX and OffsetY shift the anchor point of Gravity to the centroid,
	// in pixels.
	OffsetX float64 `json:"offset_x"`
	OffsetY float64 `json:"offset_y"`

	// Confidence is the fraction of total edge mass that falls inside the
	// chosen cell, 0 to 1. Zero means the image had no detectable detail.
	Confidence float64 `json:"confidence"`

	// Token is the ready-to-embed gravity token, e.g. "g:nowe:12:8".
	Token string `json:"token"`
}

// gravityGrid maps a (row, column) cell to its gravity type.
var gravityGrid = [3][3]urlbuilder.GravityType{
	{urlbuilder.GravityNorthWest, urlbuilder.GravityNorth, urlbuilder.GravityNorthEast},
	{urlbuilder.GravityWest, urlbuilder.GravityCenter, urlbuilder.GravityEast},
	{urlbuilder.GravitySouthWest, urlbuilder.GravitySouth, urlbuilder.GravitySouthEast},
}

// SuggestGravity analyzes an image and recommends a gravity setting.
//
// The image is edge-detected, edge intensity is accumulated as mass, and the
// mass centroid selects one of the nine gravity anchors. An image with no
// edges at all (a flat color) returns center gravity with zero confidence.
func SuggestGravity(img image.Image) (*Suggestion, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("image has no pixels: %v", bounds)
	}

	edges := effect.EdgeDetection(img, 1.0)

	// Coordinates below are relative to the image origin; the edge image may
	// keep a non-zero bounds minimum, so reads go through its own offset.
	min := edges.Bounds().Min

	var mass, massX, massY float64
	var cellMass [3][3]float64
	for y := 0; y < h; y++ {
		row := cellIndex(y, h)
		for x := 0; x < w; x++ {
			// The edge image is grayscale; any channel carries the magnitude.
			weight := float64(edges.RGBAAt(min.X+x, min.Y+y).R)
			if weight == 0 {
				continue
			}
			mass += weight
			massX += weight * float64(x)
			massY += weight * float64(y)
			cellMass[row][cellIndex(x, w)] += weight
		}
	}

	if mass == 0 {
		return &Suggestion{
			Gravity: urlbuilder.GravityCenter,
			Token:   gravityToken(urlbuilder.GravityCenter, 0, 0),
		}, nil
	}

	cx := massX / mass
	cy := massY / mass
	row := cellIndex(int(cy), h)
	col := cellIndex(int(cx), w)
	gravity := gravityGrid[row][col]

	anchorX, anchorY := anchorPoint(gravity, w, h)
	offsetX := math.Round(cx - anchorX)
	offsetY := math.Round(cy - anchorY)

	return &Suggestion{
		Gravity:    gravity,
		OffsetX:    offsetX,
		OffsetY:    offsetY,
		Confidence: cellMass[row][col] / mass,
		Token:      gravityToken(gravity, offsetX, offsetY),
	}, nil
}

// cellIndex maps a coordinate to its third of the dimension: 0, 1, or 2.
func cellIndex(v, size int) int {
	idx := 3 * v / size
	if idx > 2 {
		idx = 2
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// anchorPoint returns the pixel the gravity type anchors to.
func anchorPoint(g urlbuilder.GravityType, w, h int) (float64, float64) {
	fw, fh := float64(w), float64(h)
	switch g {
	case urlbuilder.GravityNorthWest:
		return 0, 0
	case urlbuilder.GravityNorth:
		return fw / 2, 0
	case urlbuilder.GravityNorthEast:
		return fw, 0
	case urlbuilder.GravityWest:
		return 0, fh / 2
	case urlbuilder.GravityEast:
		return fw, fh / 2
	case urlbuilder.GravitySouthWest:
		return 0, fh
	case urlbuilder.GravitySouth:
		return fw / 2, fh
	case urlbuilder.GravitySouthEast:
		return fw, fh
	default:
		return fw / 2, fh / 2
	}
}

// gravityToken renders the suggestion as a chain token, omitting zero
// offsets.
func gravityToken(g urlbuilder.GravityType, offsetX, offsetY float64) string {
	opts := urlbuilder.GravityOptions{Type: g}
	if offsetX != 0 || offsetY != 0 {
		opts.Offset = &urlbuilder.Offset{X: offsetX, Y: offsetY}
	}
	return urlbuilder.New().Gravity(opts).Build(urlbuilder.BuildOptions{})
}
