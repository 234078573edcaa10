// Package focus suggests crop gravity for an image by locating its visual
// detail.
//
// imgproxy's smart gravity asks the server to find the interesting region.
// When a caller wants an explicit, reproducible gravity instead (for
// example to pin a crop so it survives server upgrades), this package
// computes one locally: it edge-detects the image, treats edge intensity as
// mass, and maps the mass centroid onto a 3×3 grid of gravity anchors.
//
// The result includes pixel offsets from the chosen anchor and a confidence
// value derived from how much edge mass the image holds. A flat image with
// no detectable detail yields center gravity with zero confidence.
package focus
