// Package edge implements Sobel-based edge extraction with directional
// non-maximum suppression and double thresholding.
//
// Unlike textbook Canny there is no hysteresis pass: weak pixels adjacent
// to strong edges are not linked back in. The low threshold acts only as a
// short-circuit. This keeps edge chains from low-contrast borders sparser
// than a full Canny would, which the downstream Hough voting tolerates.
package edge

import (
	"image"
	"math"

	"doc-scanner/pkg/geometry"
)

const (
	// LowThreshold zeroes gradient magnitudes outright before suppression.
	LowThreshold = 50
	// HighThreshold is the minimum magnitude for a pixel to survive
	// non-maximum suppression.
	HighThreshold = 100
)

var sobelX = [3][3]int{
	{-1, 0, 1},
	{-2, 0, 2},
	{-1, 0, 1},
}

var sobelY = [3][3]int{
	{-1, -2, -1},
	{0, 0, 0},
	{1, 2, 1},
}

// direction buckets for non-maximum suppression
const (
	dir0 = iota // gradient along x, edge vertical
	dir45
	dir90 // gradient along y, edge horizontal
	dir135
)

// Detect produces a binary 0/255 edge map from a single-channel raster.
// The 1-pixel frame where the Sobel window does not fit stays zero.
func Detect(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w < 3 || h < 3 {
		return out
	}

	at := func(x, y int) int {
		return int(src.Pix[(y+bounds.Min.Y)*src.Stride+x+bounds.Min.X])
	}

	mag := make([]int, w*h)
	dir := make([]uint8, w*h)

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var gx, gy int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := at(x+kx, y+ky)
					gx += sobelX[ky+1][kx+1] * v
					gy += sobelY[ky+1][kx+1] * v
				}
			}

			idx := y*w + x
			mag[idx] = int(math.Sqrt(float64(gx*gx + gy*gy)))
			dir[idx] = bucketDirection(gx, gy)
		}
	}

	// Non-maximum suppression along the bucketed gradient direction.
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			idx := y*w + x
			m := mag[idx]
			if m < LowThreshold || m < HighThreshold {
				continue
			}

			var n1, n2 int
			switch dir[idx] {
			case dir0:
				n1, n2 = mag[idx-1], mag[idx+1]
			case dir45:
				n1, n2 = mag[idx-w+1], mag[idx+w-1]
			case dir90:
				n1, n2 = mag[idx-w], mag[idx+w]
			default: // dir135
				n1, n2 = mag[idx-w-1], mag[idx+w+1]
			}

			if m >= n1 && m >= n2 {
				out.Pix[y*out.Stride+x] = 255
			}
		}
	}

	return out
}

// bucketDirection quantizes the gradient angle into 0/45/90/135 degrees.
func bucketDirection(gx, gy int) uint8 {
	ang := math.Atan2(float64(gy), float64(gx)) * 180 / math.Pi
	if ang < 0 {
		ang += 180
	}
	switch {
	case ang < 22.5 || ang >= 157.5:
		return dir0
	case ang < 67.5:
		return dir45
	case ang < 112.5:
		return dir90
	default:
		return dir135
	}
}

// Points collects edge pixel coordinates, stepping the grid by step in both
// axes. The subsampling keeps the Hough voting cost bounded on large scans.
func Points(edges *image.Gray, step int) []geometry.Point2D {
	if step < 1 {
		step = 1
	}
	bounds := edges.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	var points []geometry.Point2D
	for y := 0; y < h; y += step {
		row := edges.Pix[(y+bounds.Min.Y)*edges.Stride+bounds.Min.X:]
		for x := 0; x < w; x += step {
			if row[x] != 0 {
				points = append(points, geometry.Point2D{X: float64(x), Y: float64(y)})
			}
		}
	}
	return points
}
