package raster

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
)

// EnhanceOptions controls the optional pre-detection enhancement pass.
type EnhanceOptions struct {
	Contrast float64 // contrast change, -1..1 range; 0 disables
	Gamma    float64 // gamma correction; <= 0 or 1.0 disables
}

// DefaultEnhanceOptions returns the enhancement used for washed-out scans.
// The edge detector keeps a hard high threshold and does no hysteresis
// linking, so low-contrast borders benefit from a contrast push first.
func DefaultEnhanceOptions() EnhanceOptions {
	return EnhanceOptions{
		Contrast: 0.25,
		Gamma:    1.1,
	}
}

// Enhance applies contrast and gamma adjustment ahead of detection.
// A zero-value options struct returns the input unchanged.
func Enhance(src image.Image, opts EnhanceOptions) image.Image {
	out := src
	if opts.Contrast != 0 {
		out = adjust.Contrast(out, opts.Contrast)
	}
	if opts.Gamma > 0 && opts.Gamma != 1.0 {
		out = adjust.Gamma(out, opts.Gamma)
	}
	return out
}
