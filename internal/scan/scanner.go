// Package scan ties the detection and cropping stages into the scanner
// entry points, and runs them concurrently across batches of files.
package scan

import (
	"image"

	"doc-scanner/internal/border"
	"doc-scanner/internal/raster"
	"doc-scanner/internal/warp"
)

// Options configures a Scanner.
type Options struct {
	Detector border.Options
	// Enhance applies a contrast/gamma push before detection. Helps
	// washed-out captures whose border gradients would otherwise fall
	// under the edge detector's high threshold.
	Enhance        bool
	EnhanceOptions raster.EnhanceOptions
}

// DefaultOptions returns the standard scanner tuning.
func DefaultOptions() Options {
	return Options{
		Detector:       border.DefaultOptions(),
		Enhance:        false,
		EnhanceOptions: raster.DefaultEnhanceOptions(),
	}
}

// Scanner detects document borders and produces perspective-corrected
// crops. It holds no per-call state and is safe for concurrent use.
type Scanner struct {
	opts     Options
	detector *border.Detector
}

// NewScanner creates a scanner with the given options.
func NewScanner(opts Options) *Scanner {
	return &Scanner{
		opts:     opts,
		detector: border.NewDetector(opts.Detector),
	}
}

// DetectBorders returns best-effort document corners for the image, in
// original-resolution coordinates. The error is non-nil only when the
// pipeline hit an unexpected internal failure; insufficient signal or
// structure degrade to lower-confidence results instead.
func (s *Scanner) DetectBorders(img image.Image) (*border.DetectedCorners, error) {
	work := img
	if s.opts.Enhance {
		work = raster.Enhance(img, s.opts.EnhanceOptions)
	}
	return s.detector.Detect(work)
}

// CropDocument resamples the quadrilateral described by corners onto an
// axis-aligned, perspective-corrected output. Never returns nil; a
// degenerate quadrilateral degrades to a plain rectangular crop.
func (s *Scanner) CropDocument(img image.Image, corners border.DetectedCorners) image.Image {
	return warp.Crop(img, corners.Quad())
}

// ScanDocument runs detection and cropping in one step.
func (s *Scanner) ScanDocument(img image.Image) (image.Image, *border.DetectedCorners, error) {
	corners, err := s.DetectBorders(img)
	if err != nil {
		return nil, nil, err
	}
	return s.CropDocument(img, *corners), corners, nil
}
