// Package border implements document border detection: a straight pipeline
// of downscale, grayscale, blur, edge extraction, Hough line voting, and
// corner resolution with graceful fallbacks. Detection is best-effort and
// never fails outright; the confidence value reports which strategy
// produced the corners.
package border

import (
	"doc-scanner/pkg/geometry"
)

// Confidence tiers. These tag the strategy that produced a result; they are
// not calibrated probabilities.
const (
	// ConfidenceLines: four corners from Hough line intersections.
	ConfidenceLines = 0.8
	// ConfidenceHull: bounding box of the sampled edge points.
	ConfidenceHull = 0.5
	// ConfidenceDefault: fixed-margin rectangle, used when the image has
	// too little edge signal to attempt anything better.
	ConfidenceDefault = 0.3
)

// DetectedCorners holds the four detected document corners in image
// coordinates, ordered top-left, top-right, bottom-left, bottom-right.
// The points always form a simple quadrilateral inside image bounds.
type DetectedCorners struct {
	TopLeft     geometry.Point2D `json:"topLeft"`
	TopRight    geometry.Point2D `json:"topRight"`
	BottomLeft  geometry.Point2D `json:"bottomLeft"`
	BottomRight geometry.Point2D `json:"bottomRight"`
	Confidence  float64          `json:"confidence"`
}

// Quad returns the corners in perimeter order (TL, TR, BR, BL), the order
// polygon and warp code expects.
func (c DetectedCorners) Quad() [4]geometry.Point2D {
	return [4]geometry.Point2D{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}

// Scale returns the corners scaled by a factor, confidence unchanged.
// Dividing by the downscale factor maps working coordinates back to the
// original resolution.
func (c DetectedCorners) Scale(factor float64) DetectedCorners {
	return DetectedCorners{
		TopLeft:     c.TopLeft.Scale(factor),
		TopRight:    c.TopRight.Scale(factor),
		BottomLeft:  c.BottomLeft.Scale(factor),
		BottomRight: c.BottomRight.Scale(factor),
		Confidence:  c.Confidence,
	}
}

// Clamp returns the corners clipped to [0,w]x[0,h].
func (c DetectedCorners) Clamp(w, h float64) DetectedCorners {
	return DetectedCorners{
		TopLeft:     c.TopLeft.Clamp(w, h),
		TopRight:    c.TopRight.Clamp(w, h),
		BottomLeft:  c.BottomLeft.Clamp(w, h),
		BottomRight: c.BottomRight.Clamp(w, h),
		Confidence:  c.Confidence,
	}
}

// fromRect builds corners from an axis-aligned rectangle.
func fromRect(r geometry.Rect, confidence float64) DetectedCorners {
	return DetectedCorners{
		TopLeft:     r.TopLeft(),
		TopRight:    r.TopRight(),
		BottomLeft:  r.BottomLeft(),
		BottomRight: r.BottomRight(),
		Confidence:  confidence,
	}
}

// Options configures the detection pipeline.
type Options struct {
	MaxDimension  int `json:"maxDimension"`  // downscale cap for the working image
	MinEdgePoints int `json:"minEdgePoints"` // below this, use the default-margin tier
	MaxLines      int `json:"maxLines"`      // Hough peak cap
	SampleStep    int `json:"sampleStep"`    // edge point subsampling step
}

// DefaultOptions returns the tuning used for camera captures of documents.
func DefaultOptions() Options {
	return Options{
		MaxDimension:  800,
		MinEdgePoints: 100,
		MaxLines:      20,
		SampleStep:    2,
	}
}
