// Package warp maps quadrilateral image regions onto axis-aligned output
// rectangles through a projective transform, correcting camera-angle skew.
package warp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"doc-scanner/pkg/geometry"
)

// Projective is a 3x3 homogeneous transform. Apply maps a point through
// the matrix with perspective division.
type Projective struct {
	M [3][3]float64
}

// Apply transforms a point. Points on the line where the denominator
// vanishes map to +Inf coordinates; callers sampling through the transform
// must bounds-check the result.
func (t Projective) Apply(p geometry.Point2D) geometry.Point2D {
	den := t.M[2][0]*p.X + t.M[2][1]*p.Y + t.M[2][2]
	if den == 0 {
		return geometry.Point2D{X: math.Inf(1), Y: math.Inf(1)}
	}
	return geometry.Point2D{
		X: (t.M[0][0]*p.X + t.M[0][1]*p.Y + t.M[0][2]) / den,
		Y: (t.M[1][0]*p.X + t.M[1][1]*p.Y + t.M[1][2]) / den,
	}
}

// QuadToQuad computes the projective transform taking the four src points
// onto the four dst points (matched by index). The eight unknowns come from
// the standard direct linear system
//
//	u = (a*x + b*y + c) / (g*x + h*y + 1)
//	v = (d*x + e*y + f) / (g*x + h*y + 1)
//
// solved as an 8x8 system. Degenerate correspondences (collinear or
// coincident points) make the system singular and return an error.
func QuadToQuad(src, dst [4]geometry.Point2D) (Projective, error) {
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)

	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y

		a.SetRow(i*2, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		b.SetVec(i*2, u)

		a.SetRow(i*2+1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(i*2+1, v)
	}

	var params mat.VecDense
	if err := params.SolveVec(a, b); err != nil {
		return Projective{}, fmt.Errorf("perspective solve: %w", err)
	}
	for i := 0; i < 8; i++ {
		if math.IsNaN(params.AtVec(i)) || math.IsInf(params.AtVec(i), 0) {
			return Projective{}, fmt.Errorf("perspective solve: non-finite solution")
		}
	}

	return Projective{M: [3][3]float64{
		{params.AtVec(0), params.AtVec(1), params.AtVec(2)},
		{params.AtVec(3), params.AtVec(4), params.AtVec(5)},
		{params.AtVec(6), params.AtVec(7), 1},
	}}, nil
}
