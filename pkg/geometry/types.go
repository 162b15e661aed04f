// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"math"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// Clamp returns the point clamped to the rectangle [0,w]x[0,h].
func (p Point2D) Clamp(w, h float64) Point2D {
	return Point2D{
		X: math.Min(math.Max(p.X, 0), w),
		Y: math.Min(math.Max(p.Y, 0), h),
	}
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point2D {
	return Point2D{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point2D {
	return Point2D{X: r.X, Y: r.Y}
}

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point2D {
	return Point2D{X: r.X + r.Width, Y: r.Y}
}

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point2D {
	return Point2D{X: r.X, Y: r.Y + r.Height}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point2D {
	return Point2D{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Inset returns the rectangle shrunk by dx horizontally and dy vertically
// on each side. Negative values grow the rectangle.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{
		X:      r.X + dx,
		Y:      r.Y + dy,
		Width:  r.Width - 2*dx,
		Height: r.Height - 2*dy,
	}
}

// PolarLine represents a line in polar (rho, theta) normal form:
// rho = x*cos(theta) + y*sin(theta). Theta is in radians, [0, pi).
// Rho is the signed perpendicular distance from the origin.
type PolarLine struct {
	Rho   float64 `json:"rho"`
	Theta float64 `json:"theta"`
}

// IntersectLines computes the intersection of two polar-form lines by
// solving the 2x2 system
//
//	cos(t1)*x + sin(t1)*y = r1
//	cos(t2)*x + sin(t2)*y = r2
//
// Returns false for (near-)parallel lines where the determinant vanishes.
func IntersectLines(a, b PolarLine) (Point2D, bool) {
	cosA, sinA := math.Cos(a.Theta), math.Sin(a.Theta)
	cosB, sinB := math.Cos(b.Theta), math.Sin(b.Theta)

	det := cosA*sinB - sinA*cosB
	if math.Abs(det) < 1e-9 {
		return Point2D{}, false
	}

	x := (a.Rho*sinB - b.Rho*sinA) / det
	y := (b.Rho*cosA - a.Rho*cosB) / det
	return Point2D{X: x, Y: y}, true
}

// Centroid computes the centroid (average position) of a set of points.
func Centroid(points []Point2D) Point2D {
	if len(points) == 0 {
		return Point2D{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point2D{X: sumX / n, Y: sumY / n}
}

// BoundingBox computes the axis-aligned bounding box of a set of points.
func BoundingBox(points []Point2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
