package raster

import "image"

// gaussKernel is the standard 5x5 Gaussian kernel with integer weights
// summing to 273.
var gaussKernel = [5][5]int{
	{1, 4, 7, 4, 1},
	{4, 16, 26, 16, 4},
	{7, 26, 41, 26, 7},
	{4, 16, 26, 16, 4},
	{1, 4, 7, 4, 1},
}

const gaussKernelSum = 273

// BlurGaussian5 applies the 5x5 Gaussian kernel by direct convolution over
// the interior of a single-channel raster. Border policy: the outer 2-pixel
// band is copied through from the source unfiltered, so a uniform image
// stays uniform and no phantom gradients appear at the frame.
func BlurGaussian5(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		srcOff := (y+bounds.Min.Y)*src.Stride + bounds.Min.X
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], src.Pix[srcOff:srcOff+w])
	}

	if w < 5 || h < 5 {
		return dst
	}

	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			var sum int
			for ky := -2; ky <= 2; ky++ {
				row := src.Pix[(y+ky+bounds.Min.Y)*src.Stride+bounds.Min.X:]
				for kx := -2; kx <= 2; kx++ {
					sum += gaussKernel[ky+2][kx+2] * int(row[x+kx])
				}
			}
			dst.Pix[y*dst.Stride+x] = uint8(sum / gaussKernelSum)
		}
	}

	return dst
}
