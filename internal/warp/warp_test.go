package warp

import (
	"image"
	"image/color"
	"math"
	"testing"

	"doc-scanner/pkg/geometry"
)

func quadOf(points ...[2]float64) [4]geometry.Point2D {
	var q [4]geometry.Point2D
	for i, p := range points {
		q[i] = geometry.Point2D{X: p[0], Y: p[1]}
	}
	return q
}

func TestQuadToQuadIdentity(t *testing.T) {
	square := quadOf([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{10, 10}, [2]float64{0, 10})

	xform, err := QuadToQuad(square, square)
	if err != nil {
		t.Fatalf("Expected identity solve to succeed: %v", err)
	}

	for _, p := range []geometry.Point2D{{X: 3, Y: 7}, {X: 0, Y: 0}, {X: 10, Y: 10}} {
		got := xform.Apply(p)
		if math.Abs(got.X-p.X) > 1e-6 || math.Abs(got.Y-p.Y) > 1e-6 {
			t.Errorf("Expected identity mapping for %+v, got %+v", p, got)
		}
	}
}

func TestQuadToQuadMapsCorners(t *testing.T) {
	src := quadOf([2]float64{0, 0}, [2]float64{99, 0}, [2]float64{99, 49}, [2]float64{0, 49})
	dst := quadOf([2]float64{10, 20}, [2]float64{200, 30}, [2]float64{190, 150}, [2]float64{5, 140})

	xform, err := QuadToQuad(src, dst)
	if err != nil {
		t.Fatalf("Expected solve to succeed: %v", err)
	}
	for i := 0; i < 4; i++ {
		got := xform.Apply(src[i])
		if got.Distance(dst[i]) > 1e-6 {
			t.Errorf("Corner %d: expected %+v, got %+v", i, dst[i], got)
		}
	}
}

func TestQuadToQuadDegenerate(t *testing.T) {
	// All source points coincide; the system is singular.
	p := [2]float64{5, 5}
	src := quadOf(p, p, p, p)
	dst := quadOf([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{10, 10}, [2]float64{0, 10})

	if _, err := QuadToQuad(src, dst); err == nil {
		t.Error("Expected an error for a degenerate quad")
	}
}

// quadrantImage builds a 2x2 color-quadrant test card.
func quadrantImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{A: 255}
			switch {
			case x < w/2 && y < h/2:
				c.R = 255
			case x >= w/2 && y < h/2:
				c.G = 255
			case x < w/2 && y >= h/2:
				c.B = 255
			default:
				c.R, c.G = 255, 255
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCropAxisAligned(t *testing.T) {
	src := quadrantImage(400, 400)
	quad := quadOf([2]float64{50, 50}, [2]float64{349, 50}, [2]float64{349, 249}, [2]float64{50, 249})

	out := Crop(src, quad)
	bounds := out.Bounds()
	if bounds.Dx() != 299 || bounds.Dy() != 199 {
		t.Fatalf("Expected 299x199 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// The output origin maps onto the source top-left corner, which is in
	// the red quadrant.
	rgba := out.(*image.RGBA)
	if c := rgba.RGBAAt(0, 0); c.R != 255 || c.G != 0 {
		t.Errorf("Expected red at output origin, got %+v", c)
	}
	// The far corner lands in the yellow quadrant.
	if c := rgba.RGBAAt(298, 198); c.R != 255 || c.G != 255 {
		t.Errorf("Expected yellow at output far corner, got %+v", c)
	}
}

func TestCropOutputSizeFloor(t *testing.T) {
	src := quadrantImage(500, 500)

	// Near-zero area quadrilateral.
	quad := quadOf([2]float64{250, 250}, [2]float64{252, 250}, [2]float64{252, 251}, [2]float64{250, 251})

	out := Crop(src, quad)
	bounds := out.Bounds()
	if bounds.Dx() < MinOutputSize || bounds.Dy() < MinOutputSize {
		t.Errorf("Expected output of at least %dx%d, got %dx%d",
			MinOutputSize, MinOutputSize, bounds.Dx(), bounds.Dy())
	}
}

func TestCropDegenerateFallsBack(t *testing.T) {
	src := quadrantImage(200, 200)

	// All corners coincide; the transform cannot be built.
	p := [2]float64{100, 100}
	out := Crop(src, quadOf(p, p, p, p))
	if out == nil {
		t.Fatal("Expected non-nil output for degenerate quad")
	}
	bounds := out.Bounds()
	if bounds.Dx() < MinOutputSize || bounds.Dy() < MinOutputSize {
		t.Errorf("Expected floored output size, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Nothing maps onto the canvas, so it stays white.
	if c := out.(*image.RGBA).RGBAAt(50, 50); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("Expected white canvas, got %+v", c)
	}
}

func TestCropSkewedQuad(t *testing.T) {
	src := quadrantImage(400, 400)

	// A mild keystone: top edge narrower than bottom.
	quad := quadOf([2]float64{120, 80}, [2]float64{280, 90}, [2]float64{330, 320}, [2]float64{70, 310})

	out := Crop(src, quad)
	bounds := out.Bounds()
	if bounds.Dx() < MinOutputSize || bounds.Dy() < MinOutputSize {
		t.Fatalf("Expected a usable output, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Width derives from the longer (bottom) edge, height from the longer
	// side edge.
	bottom := geometry.Point2D{X: 70, Y: 310}.Distance(geometry.Point2D{X: 330, Y: 320})
	if got := bounds.Dx(); math.Abs(float64(got)-bottom) > 1.0 {
		t.Errorf("Expected width near %f, got %d", bottom, got)
	}
}
