package border

import (
	"math"
	"sort"

	"doc-scanner/internal/hough"
	"doc-scanner/pkg/geometry"
)

// Angle windows (degrees of theta) used to bucket Hough lines. A line with
// theta near 90 runs horizontally, theta near 0 or 180 runs vertically.
// The fixed windows assume a roughly upright capture; heavily rotated
// photographs will misbucket their borders and land in the hull fallback.
const (
	horizontalMinDeg = 60
	horizontalMaxDeg = 120
	verticalMaxDeg   = 30
	verticalMinDeg   = 150
)

// cornersFromLines resolves four corners by intersecting the extreme
// horizontal and vertical Hough lines. Returns false when the line set has
// too little structure: fewer than two lines per orientation, parallel
// extremes, out-of-bounds intersections, or a non-convex result.
func cornersFromLines(lines []hough.Line, width, height int) (DetectedCorners, bool) {
	var horizontal, vertical []hough.Line
	for _, ln := range lines {
		deg := ln.Theta * 180 / math.Pi
		switch {
		case deg >= horizontalMinDeg && deg <= horizontalMaxDeg:
			horizontal = append(horizontal, ln)
		case deg <= verticalMaxDeg || deg >= verticalMinDeg:
			vertical = append(vertical, ln)
		}
	}

	if len(horizontal) < 2 || len(vertical) < 2 {
		return DetectedCorners{}, false
	}

	cx := float64(width) / 2
	cy := float64(height) / 2

	// Order horizontals by the y at which they cross the image center
	// column, verticals by the x at the center row.
	sort.Slice(horizontal, func(i, j int) bool {
		return horizontalPosition(horizontal[i], cx) < horizontalPosition(horizontal[j], cx)
	})
	sort.Slice(vertical, func(i, j int) bool {
		return verticalPosition(vertical[i], cy) < verticalPosition(vertical[j], cy)
	})

	top := horizontal[0].PolarLine
	bottom := horizontal[len(horizontal)-1].PolarLine
	left := vertical[0].PolarLine
	right := vertical[len(vertical)-1].PolarLine

	tl, ok1 := geometry.IntersectLines(top, left)
	tr, ok2 := geometry.IntersectLines(top, right)
	bl, ok3 := geometry.IntersectLines(bottom, left)
	br, ok4 := geometry.IntersectLines(bottom, right)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return DetectedCorners{}, false
	}

	bounds := geometry.NewRect(0, 0, float64(width), float64(height))
	for _, p := range []geometry.Point2D{tl, tr, bl, br} {
		if !bounds.Contains(p) {
			return DetectedCorners{}, false
		}
	}

	corners := DetectedCorners{
		TopLeft:     tl,
		TopRight:    tr,
		BottomLeft:  bl,
		BottomRight: br,
		Confidence:  ConfidenceLines,
	}
	quad := corners.Quad()
	if !geometry.IsConvex(quad[:]) {
		return DetectedCorners{}, false
	}
	return corners, true
}

// horizontalPosition returns the y coordinate where a near-horizontal line
// crosses the column x = cx.
func horizontalPosition(ln hough.Line, cx float64) float64 {
	// sin(theta) is bounded away from zero inside the horizontal window.
	return (ln.Rho - cx*math.Cos(ln.Theta)) / math.Sin(ln.Theta)
}

// verticalPosition returns the x coordinate where a near-vertical line
// crosses the row y = cy.
func verticalPosition(ln hough.Line, cy float64) float64 {
	return (ln.Rho - cy*math.Sin(ln.Theta)) / math.Cos(ln.Theta)
}

// cornersFromPoints is the hull fallback: the bounding box of the convex
// hull of the sampled edge points, shrunk by 2% per side.
func cornersFromPoints(points []geometry.Point2D) DetectedCorners {
	hull := geometry.ConvexHull(points)
	box := geometry.BoundingBox(hull)
	box = box.Inset(box.Width*0.02, box.Height*0.02)
	return fromRect(box, ConfidenceHull)
}

// defaultCorners is the last-resort tier: the full image bounds inset by 5%
// on every side.
func defaultCorners(width, height int) DetectedCorners {
	w := float64(width)
	h := float64(height)
	box := geometry.NewRect(0, 0, w, h).Inset(w*0.05, h*0.05)
	return fromRect(box, ConfidenceDefault)
}
