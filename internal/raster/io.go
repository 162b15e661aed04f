package raster

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"

	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/tiff"
)

// Load reads an image from disk. JPEG EXIF orientation is applied so camera
// frames arrive upright; TIFF scans are handled through the registered
// decoder.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// Save writes an image to disk; the format follows the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
