package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// ComputeScale returns the factor (<= 1.0) that bounds the longer side of a
// width x height image to maxDim. Images already within the cap get exactly
// 1.0 so no resampling happens.
func ComputeScale(width, height, maxDim int) float64 {
	longest := width
	if height > longest {
		longest = height
	}
	if longest <= maxDim || longest == 0 {
		return 1.0
	}
	return float64(maxDim) / float64(longest)
}

// Downscale bounds the longer side of src to maxDim and returns the scaled
// image together with the applied factor. Coordinates measured on the
// result map back to the original by dividing by the factor. When the image
// is already within the cap the source is returned unchanged with factor 1.0.
func Downscale(src image.Image, maxDim int) (image.Image, float64) {
	bounds := src.Bounds()
	factor := ComputeScale(bounds.Dx(), bounds.Dy(), maxDim)
	if factor == 1.0 {
		return src, 1.0
	}

	w := int(float64(bounds.Dx()) * factor)
	h := int(float64(bounds.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst, factor
}
