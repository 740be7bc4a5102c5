package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// FocusOptions controls FocusRegion.
type FocusOptions struct {
	// MinConfidence is the lowest window score kept (0-1).
	MinConfidence float64

	// Margin is added around the detected area, in pixels.
	Margin int

	// MaxCoverage skips the crop when the area already covers at least this
	// fraction of the image.
	MaxCoverage float64
}

// DefaultFocusOptions suit a single symbol photographed with some background.
var DefaultFocusOptions = FocusOptions{
	MinConfidence: 0.3,
	Margin:        12,
	MaxCoverage:   0.9,
}

const edgeThreshold = 30.0

// window sizes scanned for text-like edge density, in pixels
var focusWindows = []struct{ w, h int }{
	{80, 25},
	{100, 30},
	{150, 40},
	{200, 50},
}

// FocusRegion finds the part of img whose edge structure looks like printed
// glyphs: medium edge density with mostly short strokes. It returns the union
// of all matching windows, padded by opts.Margin, in img's coordinate space.
//
// ok is false when nothing matched or the region would cover almost the whole
// image.
func FocusRegion(img image.Image, opts FocusOptions) (image.Rectangle, bool) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return image.Rectangle{}, false
	}

	edges := detectEdges(img)

	var union image.Rectangle
	for _, ws := range focusWindows {
		if ws.w > width || ws.h > height {
			continue
		}
		stepX, stepY := ws.w/2, ws.h/2
		for y := 0; y <= height-ws.h; y += stepY {
			for x := 0; x <= width-ws.w; x += stepX {
				if windowConfidence(edges, x, y, ws.w, ws.h) < opts.MinConfidence {
					continue
				}
				union = union.Union(image.Rect(x, y, x+ws.w, y+ws.h))
			}
		}
	}
	if union.Empty() {
		return image.Rectangle{}, false
	}

	union = image.Rect(
		union.Min.X-opts.Margin, union.Min.Y-opts.Margin,
		union.Max.X+opts.Margin, union.Max.Y+opts.Margin,
	).Intersect(image.Rect(0, 0, width, height))

	coverage := float64(union.Dx()*union.Dy()) / float64(width*height)
	if opts.MaxCoverage > 0 && coverage >= opts.MaxCoverage {
		return image.Rectangle{}, false
	}
	return union.Add(bounds.Min), true
}

// FocusText crops img to FocusRegion, or returns it unchanged when no
// region qualifies.
func FocusText(img image.Image, opts FocusOptions) image.Image {
	r, ok := FocusRegion(img, opts)
	if !ok {
		return img
	}
	return imaging.Crop(img, r)
}

// windowConfidence scores one window. Density outside 5-40% scores zero;
// otherwise the score peaks at 20% density and favors strokes that break
// rows into many short runs.
func windowConfidence(edges [][]bool, x, y, w, h int) float64 {
	count := 0
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if edges[row][col] {
				count++
			}
		}
	}
	density := float64(count) / float64(w*h)
	if density < 0.05 || density > 0.4 {
		return 0
	}
	return strokeScore(edges, x, y, w, h) * (1.0 - math.Abs(density-0.2)/0.2)
}

// strokeScore is the share of edge runs found scanning rows versus columns.
func strokeScore(edges [][]bool, x, y, w, h int) float64 {
	rowRuns, colRuns := 0, 0

	for row := y; row < y+h; row++ {
		inRun := false
		for col := x; col < x+w; col++ {
			if edges[row][col] {
				if !inRun {
					rowRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	for col := x; col < x+w; col++ {
		inRun := false
		for row := y; row < y+h; row++ {
			if edges[row][col] {
				if !inRun {
					colRuns++
					inRun = true
				}
			} else {
				inRun = false
			}
		}
	}

	if rowRuns+colRuns == 0 {
		return 0
	}
	return float64(rowRuns) / float64(rowRuns+colRuns)
}

// detectEdges marks pixels whose luma differs from the right or lower
// neighbor by more than edgeThreshold. Border pixels are never edges.
func detectEdges(img image.Image) [][]bool {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()

	luma := make([][]float64, height)
	for y := range height {
		luma[y] = make([]float64, width)
		for x := range width {
			r, g, bl, _ := img.At(x+b.Min.X, y+b.Min.Y).RGBA()
			luma[y][x] = float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(bl>>8)*0.114
		}
	}

	edges := make([][]bool, height)
	for y := range height {
		edges[y] = make([]bool, width)
		if y == 0 || y == height-1 {
			continue
		}
		for x := 1; x < width-1; x++ {
			c := luma[y][x]
			if math.Abs(c-luma[y][x+1]) > edgeThreshold || math.Abs(c-luma[y+1][x]) > edgeThreshold {
				edges[y][x] = true
			}
		}
	}
	return edges
}
