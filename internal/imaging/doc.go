// Package imaging provides image loading and OCR preprocessing.
//
// This package decodes captured or uploaded photographs of a periodic-table cell
// and prepares them for text recognition.
//
// # Supported Formats
//
// Load decodes PNG, JPEG and GIF through the standard library and BMP, TIFF and
// WebP through golang.org/x/image.
//
// # Preprocessing
//
// PrepareForOCR converts to grayscale (github.com/disintegration/imaging),
// inverts light-on-dark cells, stretches contrast (github.com/anthonynsimon/bild)
// and upscales small captures. With PrepareOptions.Focus it first crops to the
// area whose edge density looks like printed glyphs (FocusRegion). Background lightness is measured in CIE Lab via
// github.com/lucasb-eyer/go-colorful on the dominant quantized color.
//
// # Coordinate System
//
// All functions use the standard image coordinate system:
//   - Origin (0, 0) is at the top-left corner
//   - X increases to the right
//   - Y increases downward
//
// # Thread Safety
//
// All functions are pure with respect to their inputs and safe to call from
// multiple goroutines.
package imaging
