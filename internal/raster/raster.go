// Package raster provides image loading, pixel-level preprocessing, and
// debug rendering for the border detection pipeline. Every function
// allocates a fresh output image; inputs are never mutated.
package raster

import (
	"image"
	"image/color"
)

// Grayscale desaturates an image to a channel-equal RGB raster using the
// NTSC luma weights (299/587/114). Alpha is preserved. The operation is
// idempotent: channel-equal input maps to itself.
func Grayscale(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			// RGBA() returns 16-bit channels; reduce to 8-bit first so the
			// integer luma stays exact for channel-equal input.
			r8 := uint32(r >> 8)
			g8 := uint32(g >> 8)
			b8 := uint32(b >> 8)
			l := uint8((299*r8 + 587*g8 + 114*b8 + 500) / 1000)
			dst.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{
				R: l, G: l, B: l, A: uint8(a >> 8),
			})
		}
	}

	return dst
}

// Intensity extracts a single-channel intensity raster. For channel-equal
// input (the output of Grayscale) this is exact; otherwise it applies the
// same luma weights.
func Intensity(src image.Image) *image.Gray {
	if rgba, ok := src.(*image.RGBA); ok {
		return intensityFromRGBA(rgba)
	}

	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			l := (299*uint32(r>>8) + 587*uint32(g>>8) + 114*uint32(b>>8) + 500) / 1000
			dst.SetGray(x-bounds.Min.X, y-bounds.Min.Y, color.Gray{Y: uint8(l)})
		}
	}
	return dst
}

func intensityFromRGBA(src *image.RGBA) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride+w*4]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := 0; x < w; x++ {
			r := uint32(srcRow[x*4])
			g := uint32(srcRow[x*4+1])
			b := uint32(srcRow[x*4+2])
			dstRow[x] = uint8((299*r + 587*g + 114*b + 500) / 1000)
		}
	}
	return dst
}
