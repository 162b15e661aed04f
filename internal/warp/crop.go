package warp

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"doc-scanner/pkg/colorutil"
	"doc-scanner/pkg/geometry"
)

// MinOutputSize floors both dimensions of the cropped output, so even a
// near-degenerate quadrilateral yields a usable raster.
const MinOutputSize = 100

// Crop resamples the quadrilateral region of src onto an axis-aligned
// rectangle, correcting perspective. The quad is given in perimeter order
// (top-left, top-right, bottom-right, bottom-left); the output is sized
// from the longer of the opposing edge pairs. A degenerate quad falls back
// to a plain bounding-box crop. Crop always returns a non-nil image.
func Crop(src image.Image, quad [4]geometry.Point2D) image.Image {
	tl, tr, br, bl := quad[0], quad[1], quad[2], quad[3]

	outW := int(math.Round(math.Max(tl.Distance(tr), bl.Distance(br))))
	outH := int(math.Round(math.Max(tl.Distance(bl), tr.Distance(br))))
	if outW < MinOutputSize {
		outW = MinOutputSize
	}
	if outH < MinOutputSize {
		outH = MinOutputSize
	}

	// Map output-rect corners onto the source quad, so each output pixel
	// pulls its sample from the source (inverse mapping, no holes).
	dstQuad := [4]geometry.Point2D{
		{X: 0, Y: 0},
		{X: float64(outW - 1), Y: 0},
		{X: float64(outW - 1), Y: float64(outH - 1)},
		{X: 0, Y: float64(outH - 1)},
	}

	xform, err := QuadToQuad(dstQuad, quad)
	if err != nil {
		return cropRect(src, quad, outW, outH)
	}

	srcRGBA := toRGBA(src)
	srcW := srcRGBA.Bounds().Dx()
	srcH := srcRGBA.Bounds().Dy()

	out := newWhiteRGBA(outW, outH)
	for y := 0; y < outH; y++ {
		for x := 0; x < outW; x++ {
			s := xform.Apply(geometry.Point2D{X: float64(x), Y: float64(y)})
			if s.X < 0 || s.Y < 0 || s.X > float64(srcW-1) || s.Y > float64(srcH-1) {
				continue
			}
			out.SetRGBA(x, y, bilinear(srcRGBA, s.X, s.Y))
		}
	}
	return out
}

// cropRect is the fallback for unsolvable transforms: copy the axis-aligned
// bounding box of the quad onto a white canvas of at least the floored
// output size.
func cropRect(src image.Image, quad [4]geometry.Point2D, outW, outH int) image.Image {
	box := geometry.BoundingBox(quad[:])
	srcBounds := src.Bounds()

	x0 := srcBounds.Min.X + int(math.Max(box.X, 0))
	y0 := srcBounds.Min.Y + int(math.Max(box.Y, 0))
	x1 := srcBounds.Min.X + int(math.Min(box.X+box.Width, float64(srcBounds.Dx())))
	y1 := srcBounds.Min.Y + int(math.Min(box.Y+box.Height, float64(srcBounds.Dy())))

	w := x1 - x0
	h := y1 - y0
	if w > outW {
		outW = w
	}
	if h > outH {
		outH = h
	}

	out := newWhiteRGBA(outW, outH)
	if w > 0 && h > 0 {
		draw.Draw(out, image.Rect(0, 0, w, h), src, image.Pt(x0, y0), draw.Src)
	}
	return out
}

func newWhiteRGBA(w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), image.NewUniform(colorutil.White), image.Point{}, draw.Src)
	return out
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	bounds := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), src, bounds.Min, draw.Src)
	return out
}

// bilinear samples the source at a fractional coordinate. The caller
// guarantees x and y are within [0, w-1] x [0, h-1].
func bilinear(src *image.RGBA, x, y float64) color.RGBA {
	x0 := int(x)
	y0 := int(y)
	x1 := x0 + 1
	y1 := y0 + 1
	maxX := src.Bounds().Dx() - 1
	maxY := src.Bounds().Dy() - 1
	if x1 > maxX {
		x1 = maxX
	}
	if y1 > maxY {
		y1 = maxY
	}

	fx := x - float64(x0)
	fy := y - float64(y0)

	c00 := src.RGBAAt(x0, y0)
	c10 := src.RGBAAt(x1, y0)
	c01 := src.RGBAAt(x0, y1)
	c11 := src.RGBAAt(x1, y1)

	lerp := func(a, b uint8, t float64) float64 {
		return float64(a) + (float64(b)-float64(a))*t
	}
	blend := func(a00, a10, a01, a11 uint8) uint8 {
		top := lerp(a00, a10, fx)
		bot := lerp(a01, a11, fx)
		return uint8(top + (bot-top)*fy + 0.5)
	}

	return color.RGBA{
		R: blend(c00.R, c10.R, c01.R, c11.R),
		G: blend(c00.G, c10.G, c01.G, c11.G),
		B: blend(c00.B, c10.B, c01.B, c11.B),
		A: blend(c00.A, c10.A, c01.A, c11.A),
	}
}
