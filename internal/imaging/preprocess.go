package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"
)

// PrepareOptions controls PrepareForOCR.
type PrepareOptions struct {
	// MinWidth upscales narrower images to this width (aspect ratio kept).
	// Zero disables upscaling.
	MinWidth int

	// Contrast is the normalized contrast change handed to bild (-1 to 1).
	Contrast float64

	// InvertBelow inverts the image when the background lightness (0-1) is
	// below this value. Zero disables inversion.
	InvertBelow float64

	// Focus crops to the text-like area (see FocusRegion) before upscaling.
	Focus bool
}

// DefaultPrepareOptions are tuned for a photographed periodic-table cell.
var DefaultPrepareOptions = PrepareOptions{
	MinWidth:    640,
	Contrast:    0.3,
	InvertBelow: 0.45,
}

// PrepareForOCR converts img into a form tesseract reads reliably.
//
// The steps are:
//  1. Grayscale conversion, which removes the cell's category color
//  2. Inversion when the background is dark, so glyphs end up dark on light
//  3. Contrast stretch
//  4. Optional crop to the text-like area
//  5. Lanczos upscale of small captures
//
// The input image is never modified.
func PrepareForOCR(img image.Image, opts PrepareOptions) image.Image {
	var out image.Image = imaging.Grayscale(img)

	if opts.InvertBelow > 0 && BackgroundLightness(out) < opts.InvertBelow {
		out = imaging.Invert(out)
	}

	if opts.Contrast != 0 {
		out = adjust.Contrast(out, opts.Contrast)
	}

	if opts.Focus {
		out = FocusText(out, DefaultFocusOptions)
	}

	if w := out.Bounds().Dx(); opts.MinWidth > 0 && w > 0 && w < opts.MinWidth {
		out = imaging.Resize(out, opts.MinWidth, 0, imaging.Lanczos)
	}

	return out
}
