package raster

import (
	"image"
	"image/color"
	"image/draw"

	"doc-scanner/pkg/geometry"
)

// DrawQuad renders a closed quadrilateral outline onto a copy of the input.
// Used by the diagnostic tools to visualize detected corners; the input
// image is not modified.
func DrawQuad(src image.Image, quad [4]geometry.Point2D, col color.RGBA, thickness int) *image.RGBA {
	bounds := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), src, bounds.Min, draw.Src)

	if thickness < 1 {
		thickness = 1
	}
	for i := 0; i < 4; i++ {
		a := quad[i]
		b := quad[(i+1)%4]
		drawLine(out, int(a.X), int(a.Y), int(b.X), int(b.Y), col, thickness)
	}
	return out
}

// DrawMarkers renders small crosses at the given points, for edge-point or
// corner diagnostics.
func DrawMarkers(dst *image.RGBA, points []geometry.Point2D, col color.RGBA, size int) {
	if size < 1 {
		size = 3
	}
	for _, p := range points {
		x, y := int(p.X), int(p.Y)
		drawLine(dst, x-size, y, x+size, y, col, 1)
		drawLine(dst, x, y-size, x, y+size, col, 1)
	}
}

// drawLine draws a line between two points using Bresenham's algorithm.
func drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.SetRGBA(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}
