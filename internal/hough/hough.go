// Package hough implements a polar-form Hough transform for straight line
// detection over sampled edge points.
package hough

import (
	"math"
	"sort"

	"doc-scanner/pkg/geometry"
)

const (
	// ThetaSteps is the angular resolution of the accumulator: one-degree
	// bins covering [0, 180).
	ThetaSteps = 180
	// VoteDivisor sets the peak threshold relative to the number of voting
	// points: a cell is a peak when votes exceed pointCount/VoteDivisor.
	VoteDivisor = 50
)

// Line is a detected line with its accumulator support.
type Line struct {
	geometry.PolarLine
	Votes int
}

// FindLines votes every point into a (rho, theta) accumulator and extracts
// up to maxLines peak cells, sorted by descending vote count. The
// accumulator is local to the call; concurrent invocations are independent.
// Cost is O(len(points) * ThetaSteps).
func FindLines(points []geometry.Point2D, width, height, maxLines int) []Line {
	if len(points) == 0 || maxLines <= 0 {
		return nil
	}

	maxRho := int(math.Ceil(math.Hypot(float64(width), float64(height))))
	rhoBins := 2*maxRho + 1

	sinTab := make([]float64, ThetaSteps)
	cosTab := make([]float64, ThetaSteps)
	for t := 0; t < ThetaSteps; t++ {
		rad := float64(t) * math.Pi / ThetaSteps
		sinTab[t] = math.Sin(rad)
		cosTab[t] = math.Cos(rad)
	}

	acc := make([]int, ThetaSteps*rhoBins)
	for _, p := range points {
		for t := 0; t < ThetaSteps; t++ {
			rho := int(math.Round(p.X*cosTab[t] + p.Y*sinTab[t]))
			acc[t*rhoBins+rho+maxRho]++
		}
	}

	threshold := len(points) / VoteDivisor

	var lines []Line
	for t := 0; t < ThetaSteps; t++ {
		row := acc[t*rhoBins : (t+1)*rhoBins]
		for r, votes := range row {
			if votes > threshold {
				lines = append(lines, Line{
					PolarLine: geometry.PolarLine{
						Rho:   float64(r - maxRho),
						Theta: float64(t) * math.Pi / ThetaSteps,
					},
					Votes: votes,
				})
			}
		}
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].Votes > lines[j].Votes })
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
