package imaging

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorFrequency represents a quantized color and how much of the image it covers.
type ColorFrequency struct {
	Color      color.RGBA
	Percentage float64 // 0-100
}

// DominantColor returns the most frequent color in img after quantization.
//
// # Color Quantization
//
// To group similar colors, RGB values are quantized by dividing each component
// by 16 and rounding down, so colors within 16 units of each other (per
// component) share a bucket:
//
//	quantized = (original / 16) * 16
//
// An empty image yields a zero ColorFrequency.
func DominantColor(img image.Image) ColorFrequency {
	bounds := img.Bounds()

	counts := make(map[color.RGBA]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			key := color.RGBA{
				R: uint8((r >> 8) / 16 * 16),
				G: uint8((g >> 8) / 16 * 16),
				B: uint8((b >> 8) / 16 * 16),
				A: 255,
			}
			counts[key]++
			total++
		}
	}
	if total == 0 {
		return ColorFrequency{}
	}

	var best color.RGBA
	bestCount := -1
	for c, n := range counts {
		// Ties go to the lighter bucket so the result is deterministic.
		if n > bestCount || (n == bestCount && luma(c) > luma(best)) {
			best, bestCount = c, n
		}
	}

	return ColorFrequency{
		Color:      best,
		Percentage: float64(bestCount) / float64(total) * 100,
	}
}

func luma(c color.RGBA) int {
	return 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
}

// BackgroundLightness estimates the perceptual lightness (CIE L*, 0-1) of the
// image background, taken to be its dominant color.
//
// Periodic-table posters print cells in category colors, some of them dark
// enough that tesseract loses light glyphs against them; callers use this to
// decide whether to invert before recognition.
func BackgroundLightness(img image.Image) float64 {
	dom := DominantColor(img)
	c, ok := colorful.MakeColor(dom.Color)
	if !ok {
		return 1
	}
	l, _, _ := c.Lab()
	return l
}
