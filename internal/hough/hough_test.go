package hough

import (
	"math"
	"testing"

	"doc-scanner/pkg/geometry"
)

func linePoints(fn func(i int) geometry.Point2D, n int) []geometry.Point2D {
	points := make([]geometry.Point2D, n)
	for i := 0; i < n; i++ {
		points[i] = fn(i)
	}
	return points
}

func TestFindLinesVertical(t *testing.T) {
	// Points along x = 40.
	points := linePoints(func(i int) geometry.Point2D {
		return geometry.Point2D{X: 40, Y: float64(i)}
	}, 100)

	lines := FindLines(points, 100, 100, 5)
	if len(lines) == 0 {
		t.Fatal("Expected at least one line")
	}

	best := lines[0]
	if best.Theta != 0 {
		t.Errorf("Expected theta 0 for a vertical line, got %f", best.Theta)
	}
	if best.Rho != 40 {
		t.Errorf("Expected rho 40, got %f", best.Rho)
	}
	if best.Votes != 100 {
		t.Errorf("Expected 100 votes, got %d", best.Votes)
	}
}

func TestFindLinesHorizontal(t *testing.T) {
	// Points along y = 25.
	points := linePoints(func(i int) geometry.Point2D {
		return geometry.Point2D{X: float64(i), Y: 25}
	}, 100)

	lines := FindLines(points, 100, 100, 5)
	if len(lines) == 0 {
		t.Fatal("Expected at least one line")
	}

	best := lines[0]
	if math.Abs(best.Theta-math.Pi/2) > 1e-9 {
		t.Errorf("Expected theta pi/2 for a horizontal line, got %f", best.Theta)
	}
	if best.Rho != 25 {
		t.Errorf("Expected rho 25, got %f", best.Rho)
	}
}

func TestFindLinesSortedByVotes(t *testing.T) {
	// A long line and a shorter one.
	points := linePoints(func(i int) geometry.Point2D {
		return geometry.Point2D{X: 10, Y: float64(i)}
	}, 80)
	points = append(points, linePoints(func(i int) geometry.Point2D {
		return geometry.Point2D{X: float64(i), Y: 60}
	}, 40)...)

	lines := FindLines(points, 100, 100, 20)
	if len(lines) < 2 {
		t.Fatalf("Expected at least two lines, got %d", len(lines))
	}
	for i := 1; i < len(lines); i++ {
		if lines[i].Votes > lines[i-1].Votes {
			t.Fatal("Expected lines sorted by descending vote count")
		}
	}
	if lines[0].Theta != 0 || lines[0].Rho != 10 {
		t.Errorf("Expected the long vertical line first, got rho=%f theta=%f",
			lines[0].Rho, lines[0].Theta)
	}
}

func TestFindLinesMaxCap(t *testing.T) {
	points := linePoints(func(i int) geometry.Point2D {
		return geometry.Point2D{X: float64(i % 50), Y: float64(i / 50)}
	}, 2500)

	lines := FindLines(points, 50, 50, 20)
	if len(lines) > 20 {
		t.Errorf("Expected at most 20 lines, got %d", len(lines))
	}
}

func TestFindLinesNoPoints(t *testing.T) {
	if lines := FindLines(nil, 100, 100, 20); lines != nil {
		t.Errorf("Expected no lines for no points, got %d", len(lines))
	}
}
