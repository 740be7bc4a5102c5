package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"strings"

	"github.com/ironsheep/element-lens/internal/imaging"
	"github.com/otiai10/gosseract/v2"
)

// NoTextDetected is returned by Extract, with a nil error, when the engine finds
// no text fragments in the image.
const NoTextDetected = "No text detected in the image."

// DefaultLanguage is the Tesseract language code used when none is configured.
const DefaultLanguage = "eng"

var (
	// ErrImageNotFound means the image path does not exist.
	ErrImageNotFound = errors.New("image file not found")

	// ErrImageDecode means the file exists but could not be decoded as an image.
	ErrImageDecode = errors.New("could not load image")

	// ErrEngine means Tesseract itself failed.
	ErrEngine = errors.New("OCR engine failure")
)

// Extractor turns an image file into the text printed on it.
type Extractor interface {
	Extract(ctx context.Context, imagePath string) (string, error)
}

// recognizeFunc runs text recognition on a PNG-encoded image and returns the
// detected fragments in engine order.
type recognizeFunc func(pngData []byte) ([]string, error)

// Tesseract extracts text with the Tesseract engine via gosseract/v2.
//
// A new gosseract client is created per call, so a Tesseract value is safe for
// concurrent use.
type Tesseract struct {
	// Language is the Tesseract language code (e.g. "eng"). The corresponding
	// traineddata must be installed.
	Language string

	// TessdataPrefix overrides the directory Tesseract loads traineddata from.
	// Empty means the library default (or TESSDATA_PREFIX in the environment).
	TessdataPrefix string

	// Prepare controls grayscale/contrast preprocessing before recognition.
	Prepare imaging.PrepareOptions

	recognize recognizeFunc
}

// NewTesseract returns a Tesseract extractor with default preprocessing.
func NewTesseract(language, tessdataPrefix string) *Tesseract {
	if strings.TrimSpace(language) == "" {
		language = DefaultLanguage
	}
	return &Tesseract{
		Language:       language,
		TessdataPrefix: tessdataPrefix,
		Prepare:        imaging.DefaultPrepareOptions,
	}
}

// Extract performs OCR on the image at imagePath and returns every detected
// fragment joined with single spaces.
//
// The image is loaded, converted to grayscale and contrast-adjusted before it
// is handed to Tesseract. Only plain text is kept; bounding boxes and
// confidence scores are discarded.
//
// # Errors
//
//   - ErrImageNotFound (also fs.ErrNotExist) when the path does not exist
//   - ErrImageDecode when the file is not a decodable image
//   - ErrEngine when Tesseract fails
//
// Finding no text is not an error: Extract returns NoTextDetected.
func (t *Tesseract) Extract(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, _, err := imaging.Load(imagePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("ocr: %w: %s: %w", ErrImageNotFound, imagePath, err)
		}
		return "", fmt.Errorf("ocr: %w at %s: %w", ErrImageDecode, imagePath, err)
	}

	prepared := imaging.PrepareForOCR(img, t.Prepare)

	var buf bytes.Buffer
	if err := png.Encode(&buf, prepared); err != nil {
		return "", fmt.Errorf("ocr: failed to encode prepared image: %w", err)
	}

	recognize := t.recognize
	if recognize == nil {
		recognize = t.recognizeFragments
	}

	fragments, err := recognize(buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("ocr: %w: %w", ErrEngine, err)
	}

	return JoinFragments(fragments), nil
}

// recognizeFragments runs gosseract on pngData.
//
// Word-level boxes are preferred since they give one fragment per detected
// word. If box extraction fails the plain text output is split on whitespace
// instead.
func (t *Tesseract) recognizeFragments(pngData []byte) ([]string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if t.TessdataPrefix != "" {
		if err := client.SetTessdataPrefix(t.TessdataPrefix); err != nil {
			return nil, fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}

	if err := client.SetLanguage(t.Language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}

	// A table cell is a handful of short, scattered tokens rather than a page.
	if err := client.SetPageSegMode(gosseract.PSM_SPARSE_TEXT); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	if err := client.SetImageFromBytes(pngData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err == nil {
		words := make([]string, 0, len(boxes))
		for _, box := range boxes {
			if box.Word == "" {
				continue
			}
			words = append(words, box.Word)
		}
		return words, nil
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}
	return strings.Fields(text), nil
}

// JoinFragments concatenates OCR fragments with single spaces and trims the
// result. Blank fragments are skipped; if none remain NoTextDetected is
// returned.
func JoinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if s := strings.TrimSpace(f); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return NoTextDetected
	}
	return strings.Join(parts, " ")
}
