package ocr

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawText draws text on an image using basicfont
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	point := fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  point,
	}
	d.DrawString(text)
}

// createImageWithText renders text at the given integer scale on bg and
// writes it to a PNG in t.TempDir.
func createImageWithText(t *testing.T, text string, scale int, bg, fg color.Color) string {
	t.Helper()

	// basicfont.Face7x13 is 7 pixels wide, 13 pixels tall per character
	width := len(text)*7 + 40
	height := 40

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(small, small.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	drawText(small, 20, 25, text, fg)

	// Scale up by drawing each pixel as a scale x scale block
	img := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := small.At(x, y)
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.Set(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}

	return writePNG(t, img)
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "ocr-text-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return f.Name()
}

// blankImage returns the path of a solid white PNG.
func blankImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return writePNG(t, img)
}

// stubbed returns a Tesseract whose engine call is replaced by fn.
func stubbed(fn recognizeFunc) *Tesseract {
	tess := NewTesseract("", "")
	tess.recognize = fn
	return tess
}

func skipIfNoTesseract(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "tesseract") || strings.Contains(msg, "library") ||
		strings.Contains(msg, "language") || strings.Contains(msg, "tessdata") {
		t.Skipf("Tesseract not available: %v", err)
	}
}

func TestNewTesseract_Defaults(t *testing.T) {
	tess := NewTesseract("  ", "/opt/tessdata")
	if tess.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", tess.Language, DefaultLanguage)
	}
	if tess.TessdataPrefix != "/opt/tessdata" {
		t.Errorf("TessdataPrefix = %q", tess.TessdataPrefix)
	}
	if tess.Prepare.MinWidth == 0 {
		t.Error("Prepare options not defaulted")
	}
}

func TestExtract_NonExistentFile(t *testing.T) {
	called := false
	tess := stubbed(func([]byte) ([]string, error) {
		called = true
		return nil, nil
	})

	_, err := tess.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	if err == nil {
		t.Fatal("Extract should fail for non-existent file")
	}
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("error %v does not wrap ErrImageNotFound", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
	if called {
		t.Error("engine called for missing file")
	}
}

func TestExtract_UndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	if err := os.WriteFile(path, []byte("definitely not a jpeg"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := stubbed(func([]byte) ([]string, error) { return nil, nil }).
		Extract(context.Background(), path)
	if !errors.Is(err, ErrImageDecode) {
		t.Errorf("error %v does not wrap ErrImageDecode", err)
	}
	if errors.Is(err, ErrImageNotFound) {
		t.Errorf("decode failure reported as not found: %v", err)
	}
}

func TestExtract_EngineFailure(t *testing.T) {
	boom := errors.New("tesseract exploded")
	tess := stubbed(func([]byte) ([]string, error) { return nil, boom })

	_, err := tess.Extract(context.Background(), blankImage(t))
	if !errors.Is(err, ErrEngine) {
		t.Errorf("error %v does not wrap ErrEngine", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("error %v does not wrap the engine cause", err)
	}
}

func TestExtract_NoFragments(t *testing.T) {
	tess := stubbed(func([]byte) ([]string, error) { return nil, nil })

	got, err := tess.Extract(context.Background(), blankImage(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != NoTextDetected {
		t.Errorf("Extract = %q, want %q", got, NoTextDetected)
	}
}

func TestExtract_JoinsFragments(t *testing.T) {
	tess := stubbed(func([]byte) ([]string, error) {
		return []string{"26", " Fe ", "Iron"}, nil
	})

	got, err := tess.Extract(context.Background(), blankImage(t))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if got != "26 Fe Iron" {
		t.Errorf("Extract = %q, want %q", got, "26 Fe Iron")
	}
}

func TestExtract_EngineReceivesGrayscalePNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 700, 100))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{250, 200, 120, 255}), image.Point{}, draw.Src)
	path := writePNG(t, src)

	var received image.Image
	tess := stubbed(func(data []byte) ([]string, error) {
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		received = img
		return []string{"H"}, nil
	})

	if _, err := tess.Extract(context.Background(), path); err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if received == nil {
		t.Fatal("engine did not receive an image")
	}
	r, g, b, _ := received.At(10, 10).RGBA()
	if r != g || g != b {
		t.Errorf("engine image not grayscale: r=%d g=%d b=%d", r, g, b)
	}
}

func TestExtract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stubbed(func([]byte) ([]string, error) { return []string{"H"}, nil }).
		Extract(ctx, blankImage(t))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestJoinFragments(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{"nil", nil, NoTextDetected},
		{"only blanks", []string{"", "  ", "\n"}, NoTextDetected},
		{"single", []string{"Fe"}, "Fe"},
		{"padded", []string{"  fe "}, "fe"},
		{"several", []string{"79", "Au", "Gold"}, "79 Au Gold"},
		{"skips blanks", []string{"O", "", "Oxygen"}, "O Oxygen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinFragments(tt.input); got != tt.want {
				t.Errorf("JoinFragments(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// --- Tests with the real engine ---

func TestExtract_RealText(t *testing.T) {
	imgPath := createImageWithText(t, "Fe", 6, color.White, color.Black)

	got, err := NewTesseract("eng", "").Extract(context.Background(), imgPath)
	if err != nil {
		skipIfNoTesseract(t, err)
		t.Fatalf("Extract failed: %v", err)
	}

	t.Logf("Extracted text: %q", got)
	if got == "" {
		t.Error("Extract returned an empty string")
	}
}

func TestExtract_RealTextOnDarkCell(t *testing.T) {
	imgPath := createImageWithText(t, "Au", 6, color.RGBA{30, 30, 80, 255}, color.White)

	got, err := NewTesseract("eng", "").Extract(context.Background(), imgPath)
	if err != nil {
		skipIfNoTesseract(t, err)
		t.Fatalf("Extract failed: %v", err)
	}

	t.Logf("Extracted text from dark cell: %q", got)
}

func TestExtract_RealBlankImage(t *testing.T) {
	got, err := NewTesseract("eng", "").Extract(context.Background(), blankImage(t))
	if err != nil {
		skipIfNoTesseract(t, err)
		t.Fatalf("Extract failed: %v", err)
	}
	if got != NoTextDetected {
		t.Errorf("Extract = %q, want %q", got, NoTextDetected)
	}
}
