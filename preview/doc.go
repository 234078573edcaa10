// Package preview approximates imgproxy's visual modifiers on locally loaded
// images.
//
// The builder in package urlbuilder only produces URLs; the actual processing
// happens on the remote imgproxy server. During development it is useful to
// see roughly what a modifier combination will do without deploying the URL
// anywhere, so this package applies the visual subset of the modifiers (crop,
// resize, rotate, padding, background, blur, sharpen, dpr) to an image.Image.
//
// # Fidelity
//
// The rendering is an approximation, not a pixel-exact reproduction of
// imgproxy's output: resampling filters, color management, and format
// encoders differ. Dimensions, layout, and the broad visual effect match.
// The fill-down and auto resize types are approximated as fill and fit, and
// smart gravity falls back to center (package focus computes a concrete
// gravity suggestion when one is needed).
//
// # Processing Order
//
// Render applies modifiers in a fixed order regardless of option layout:
// crop, resize, rotate, padding, background flattening, blur, sharpen, and
// finally dpr scaling.
//
// # Thread Safety
//
// Cache is safe for concurrent use. Render and EncodePNG are stateless and
// never mutate their input image.
package preview
