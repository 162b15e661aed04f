// Command scantest runs the border detection pipeline on a single image and
// prints the detected corners, optionally writing the corrected crop and a
// corner-overlay image for inspection.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"doc-scanner/internal/raster"
	"doc-scanner/internal/scan"
	"doc-scanner/internal/version"
	"doc-scanner/pkg/colorutil"
)

func main() {
	input := flag.String("i", "", "Path to input image")
	output := flag.String("o", "", "Path for the cropped output image (optional)")
	overlay := flag.String("overlay", "", "Path for a corner-overlay debug image (optional)")
	enhance := flag.Bool("enhance", false, "Apply contrast/gamma enhancement before detection")
	maxDim := flag.Int("max-dim", 0, "Override the downscale cap (0 = default)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("scantest %s (%s)\n", version.Version, version.GitCommit)
		return
	}

	if *input == "" {
		fmt.Println("Usage: scantest -i <image> [-o <cropped>] [-overlay <debug>] [-enhance]")
		os.Exit(1)
	}

	opts := scan.DefaultOptions()
	opts.Enhance = *enhance
	if *maxDim > 0 {
		opts.Detector.MaxDimension = *maxDim
	}
	scanner := scan.NewScanner(opts)

	fmt.Printf("=== Loading: %s ===\n", *input)
	img, err := raster.Load(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	bounds := img.Bounds()
	fmt.Printf("Image: %dx%d\n", bounds.Dx(), bounds.Dy())

	fmt.Printf("\n=== Detecting borders ===\n")
	start := time.Now()
	corners, err := scanner.DetectBorders(img)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Detection took %v\n", time.Since(start))
	fmt.Printf("Confidence: %.1f\n", corners.Confidence)
	fmt.Printf("  top-left:     (%.1f, %.1f)\n", corners.TopLeft.X, corners.TopLeft.Y)
	fmt.Printf("  top-right:    (%.1f, %.1f)\n", corners.TopRight.X, corners.TopRight.Y)
	fmt.Printf("  bottom-left:  (%.1f, %.1f)\n", corners.BottomLeft.X, corners.BottomLeft.Y)
	fmt.Printf("  bottom-right: (%.1f, %.1f)\n", corners.BottomRight.X, corners.BottomRight.Y)

	if *overlay != "" {
		marked := raster.DrawQuad(img, corners.Quad(), colorutil.Red, 3)
		quad := corners.Quad()
		raster.DrawMarkers(marked, quad[:], colorutil.Green, 6)
		if err := raster.Save(marked, *overlay); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write overlay: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Overlay written to %s\n", *overlay)
	}

	if *output != "" {
		fmt.Printf("\n=== Cropping ===\n")
		cropped := scanner.CropDocument(img, *corners)
		if err := raster.Save(cropped, *output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
			os.Exit(1)
		}
		outBounds := cropped.Bounds()
		fmt.Printf("Cropped %dx%d written to %s\n", outBounds.Dx(), outBounds.Dy(), *output)
	}
}
