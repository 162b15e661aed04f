package border

import (
	"fmt"
	"image"

	"doc-scanner/internal/edge"
	"doc-scanner/internal/hough"
	"doc-scanner/internal/raster"
)

// Detector runs the border detection pipeline. It holds only immutable
// options, so a single Detector is safe for concurrent use on independent
// images.
type Detector struct {
	opts Options
}

// NewDetector creates a detector with the given options. Zero or negative
// fields fall back to their defaults.
func NewDetector(opts Options) *Detector {
	def := DefaultOptions()
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = def.MaxDimension
	}
	if opts.MinEdgePoints <= 0 {
		opts.MinEdgePoints = def.MinEdgePoints
	}
	if opts.MaxLines <= 0 {
		opts.MaxLines = def.MaxLines
	}
	if opts.SampleStep <= 0 {
		opts.SampleStep = def.SampleStep
	}
	return &Detector{opts: opts}
}

// Detect locates the document borders in an image and returns four corners
// in original-resolution coordinates. The result is always a simple
// quadrilateral inside image bounds; the confidence value reports which
// strategy produced it. An error is returned only when a stage panics
// unexpectedly.
func (d *Detector) Detect(img image.Image) (corners *DetectedCorners, err error) {
	defer func() {
		if r := recover(); r != nil {
			corners = nil
			err = fmt.Errorf("border detection: %v", r)
		}
	}()

	origW := float64(img.Bounds().Dx())
	origH := float64(img.Bounds().Dy())

	work, factor := raster.Downscale(img, d.opts.MaxDimension)
	w := work.Bounds().Dx()
	h := work.Bounds().Dy()

	gray := raster.Grayscale(work)
	blurred := raster.BlurGaussian5(raster.Intensity(gray))
	edges := edge.Detect(blurred)
	points := edge.Points(edges, d.opts.SampleStep)

	var result DetectedCorners
	if len(points) < d.opts.MinEdgePoints {
		// Not enough signal to even attempt line fitting.
		result = defaultCorners(w, h)
	} else {
		lines := hough.FindLines(points, w, h, d.opts.MaxLines)
		var ok bool
		result, ok = cornersFromLines(lines, w, h)
		if !ok {
			result = cornersFromPoints(points)
		}
	}

	if factor != 1.0 {
		result = result.Scale(1.0 / factor)
	}
	result = result.Clamp(origW, origH)
	return &result, nil
}
