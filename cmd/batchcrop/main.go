// Command batchcrop detects and crops document borders across a set of
// image files or directories, processing files in parallel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"doc-scanner/internal/scan"
	"doc-scanner/internal/version"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	outputDir := flag.String("output-dir", "", "Directory for cropped output images")
	workers := flag.Int("workers", 0, "Parallel workers (0 = CPU count)")
	enhance := flag.Bool("enhance", false, "Apply contrast/gamma enhancement before detection")
	dryRun := flag.Bool("dry-run", false, "Detect only, do not write output images")
	verbose := flag.Bool("verbose", false, "Print per-file corner details")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("batchcrop %s (%s)\n", version.Version, version.GitCommit)
		return
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] image_files_or_dirs...\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if !*dryRun && *outputDir == "" {
		fmt.Fprintln(os.Stderr, "ERROR: provide -output-dir or use -dry-run")
		os.Exit(2)
	}

	var inputs []string
	for _, arg := range files {
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
			continue
		}
		if info.IsDir() {
			expanded, err := expandDirectory(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: failed to list directory %s: %v\n", arg, err)
				continue
			}
			inputs = append(inputs, expanded...)
		} else {
			inputs = append(inputs, arg)
		}
	}
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "No input images found")
		os.Exit(1)
	}

	outDir := *outputDir
	if *dryRun {
		outDir = ""
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			log.Fatalf("Cannot create output directory: %v", err)
		}
	}

	opts := scan.DefaultOptions()
	opts.Enhance = *enhance
	scanner := scan.NewScanner(opts)

	log.Printf("Processing %d images with %d workers", len(inputs), *workers)
	results := scanner.ProcessBatch(inputs, outDir, *workers)

	var failed int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAILED %s: %v\n", res.Path, res.Err)
			continue
		}
		if *verbose {
			c := res.Corners
			fmt.Printf("%s: confidence %.1f, corners (%.0f,%.0f) (%.0f,%.0f) (%.0f,%.0f) (%.0f,%.0f)\n",
				res.Path, c.Confidence,
				c.TopLeft.X, c.TopLeft.Y, c.TopRight.X, c.TopRight.Y,
				c.BottomLeft.X, c.BottomLeft.Y, c.BottomRight.X, c.BottomRight.Y)
		}
	}
	log.Printf("Done: %d ok, %d failed", len(results)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// expandDirectory lists the image files directly inside a directory.
func expandDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".jpg", ".jpeg", ".png", ".tif", ".tiff":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
