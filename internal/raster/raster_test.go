package raster

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"doc-scanner/pkg/geometry"
)

func randomRGBA(w, h int, seed int64) *image.RGBA {
	rng := rand.New(rand.NewSource(seed))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	return img
}

func uniformGray(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestGrayscaleIdempotent(t *testing.T) {
	src := randomRGBA(32, 24, 1)
	once := Grayscale(src)
	twice := Grayscale(once)

	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("Expected grayscale to be idempotent")
	}
}

func TestGrayscaleChannelEqual(t *testing.T) {
	src := randomRGBA(16, 16, 2)
	gray := Grayscale(src)

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := gray.RGBAAt(x, y)
			if c.R != c.G || c.G != c.B {
				t.Fatalf("Expected channel-equal pixel at (%d,%d), got %+v", x, y, c)
			}
			if c.A != 255 {
				t.Fatalf("Expected alpha preserved at (%d,%d), got %d", x, y, c.A)
			}
		}
	}
}

func TestBlurUniformStaysUniform(t *testing.T) {
	src := uniformGray(20, 20, 128)
	dst := BlurGaussian5(src)

	for i, v := range dst.Pix {
		if v != 128 {
			t.Fatalf("Expected uniform output, got %d at index %d", v, i)
		}
	}
}

func TestBlurCenterWeight(t *testing.T) {
	// Single bright pixel on a flat background: the blurred center is the
	// background plus the center kernel weight's share of the difference.
	src := uniformGray(11, 11, 100)
	src.SetGray(5, 5, color.Gray{Y: 255})
	dst := BlurGaussian5(src)

	// (41*255 + 232*100) / 273 = 123
	if got := dst.GrayAt(5, 5).Y; got != 123 {
		t.Errorf("Expected blurred center 123, got %d", got)
	}
}

func TestBlurBorderCopiedThrough(t *testing.T) {
	src := randomRGBA(16, 16, 3)
	gray := Intensity(src)
	dst := BlurGaussian5(gray)

	// The outer 2-pixel band is unfiltered.
	for x := 0; x < 16; x++ {
		for _, y := range []int{0, 1, 14, 15} {
			if dst.GrayAt(x, y).Y != gray.GrayAt(x, y).Y {
				t.Fatalf("Expected border pixel (%d,%d) copied through", x, y)
			}
		}
	}
}

func TestComputeScale(t *testing.T) {
	tests := []struct {
		w, h, cap int
		want      float64
	}{
		{1000, 800, 800, 0.8},
		{800, 1000, 800, 0.8},
		{400, 300, 800, 1.0},
		{800, 800, 800, 1.0},
	}
	for _, tt := range tests {
		if got := ComputeScale(tt.w, tt.h, tt.cap); got != tt.want {
			t.Errorf("ComputeScale(%d,%d,%d) = %f, want %f", tt.w, tt.h, tt.cap, got, tt.want)
		}
	}
}

func TestDownscaleWithinCapReturnsInput(t *testing.T) {
	src := randomRGBA(100, 80, 4)
	out, factor := Downscale(src, 800)
	if factor != 1.0 {
		t.Errorf("Expected factor 1.0, got %f", factor)
	}
	if out != image.Image(src) {
		t.Error("Expected the source image back when within the cap")
	}
}

func TestDownscaleCapsLongestSide(t *testing.T) {
	src := randomRGBA(1000, 500, 5)
	out, factor := Downscale(src, 800)
	if factor != 0.8 {
		t.Errorf("Expected factor 0.8, got %f", factor)
	}
	if out.Bounds().Dx() != 800 || out.Bounds().Dy() != 400 {
		t.Errorf("Expected 800x400, got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestEnhanceDisabled(t *testing.T) {
	src := randomRGBA(8, 8, 6)
	out := Enhance(src, EnhanceOptions{})
	if out != image.Image(src) {
		t.Error("Expected zero-value options to return the input unchanged")
	}
}

func TestEnhanceProducesNewImage(t *testing.T) {
	src := randomRGBA(8, 8, 7)
	out := Enhance(src, DefaultEnhanceOptions())
	if out == nil {
		t.Fatal("Expected non-nil enhanced image")
	}
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 8 {
		t.Errorf("Expected 8x8 output, got %v", out.Bounds())
	}
}

func TestDrawQuadDoesNotMutateSource(t *testing.T) {
	src := randomRGBA(32, 32, 8)
	before := make([]uint8, len(src.Pix))
	copy(before, src.Pix)

	quad := [4]geometry.Point2D{
		{X: 4, Y: 4}, {X: 28, Y: 4}, {X: 28, Y: 28}, {X: 4, Y: 28},
	}
	out := DrawQuad(src, quad, color.RGBA{R: 255, A: 255}, 2)
	if out == nil {
		t.Fatal("Expected non-nil overlay image")
	}
	if !bytes.Equal(before, src.Pix) {
		t.Error("Expected source to remain unmodified")
	}

	// The outline must actually land on the copy.
	if out.RGBAAt(16, 4).R != 255 {
		t.Error("Expected outline pixel on the top edge")
	}
}
