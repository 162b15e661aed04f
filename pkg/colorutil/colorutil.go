// Package colorutil provides the shared overlay palette for the scanner
// tools.
package colorutil

import "image/color"

// Colors used by the overlay renderers and the crop canvas.
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)
