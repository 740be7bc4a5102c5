package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoImage means an acquisition produced no image data.
var ErrNoImage = errors.New("no image provided")

// Source produces a readable image file.
//
// The returned cleanup must be called once the path has been consumed. It is
// safe to call more than once.
type Source interface {
	Acquire(ctx context.Context) (path string, cleanup func(), err error)
}

// File is a Source for an image that already exists on disk. Its cleanup
// leaves the file in place.
type File string

// Acquire checks that the file exists and returns its path.
func (f File) Acquire(ctx context.Context) (string, func(), error) {
	if err := ctx.Err(); err != nil {
		return "", noop, err
	}
	path := string(f)
	if _, err := os.Stat(path); err != nil {
		return "", noop, fmt.Errorf("image file: %w", err)
	}
	return path, noop, nil
}

// Upload is a Source backed by an uploaded stream such as a multipart file.
// Acquire persists it to a uniquely named temporary file.
type Upload struct {
	Reader io.Reader

	// Filename is the client-supplied name; only its extension is used.
	Filename string

	// Dir is the temp directory. Empty means os.TempDir.
	Dir string
}

// Acquire writes the upload to disk and returns the temp path. The cleanup
// func removes it.
func (u Upload) Acquire(ctx context.Context) (string, func(), error) {
	if err := ctx.Err(); err != nil {
		return "", noop, err
	}
	if u.Reader == nil {
		return "", noop, ErrNoImage
	}
	return SaveUpload(u.Dir, u.Reader, uploadSuffix(u.Filename))
}

// SaveUpload copies r into a new temp file in dir (os.TempDir when empty) named
// element-upload-*<suffix> and returns its path with a cleanup func that
// deletes it.
//
// On error nothing is left on disk.
func SaveUpload(dir string, r io.Reader, suffix string) (string, func(), error) {
	f, err := os.CreateTemp(dir, "element-upload-*"+suffix)
	if err != nil {
		return "", noop, fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	cleanup := removeOnce(path)

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		cleanup()
		return "", noop, fmt.Errorf("failed to save upload: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("failed to save upload: %w", err)
	}

	return path, cleanup, nil
}

// uploadSuffix keeps a short, image-looking extension from the client name
// and falls back to .jpg.
func uploadSuffix(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return ext
	default:
		return ".jpg"
	}
}

func removeOnce(path string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			_ = os.Remove(path)
		})
	}
}

func noop() {}
