package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrDecode is returned (wrapped) when a file exists but is not a decodable image.
var ErrDecode = errors.New("image could not be decoded")

// Load opens and decodes the image at path.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// Returns:
//   - image.Image: The decoded image.
//   - string: The format name reported by the decoder (e.g. "png", "jpeg").
//   - error: Non-nil if the file cannot be opened or decoded.
//
// # Errors
//
//   - A missing file yields an error satisfying errors.Is(err, fs.ErrNotExist)
//   - A file that is not a valid image yields an error satisfying
//     errors.Is(err, ErrDecode)
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return img, format, nil
}
