// Package webcam grabs a still frame from a camera with OpenCV (gocv).
//
// The capture loop shows a live preview window and blocks until the capture
// key is pressed. OpenCV 4 must be installed; see https://gocv.io/getting-started/.
package webcam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gocv.io/x/gocv"
)

// DefaultPath is where the captured frame is written when none is configured.
const DefaultPath = "captured_image.jpg"

// DefaultWindowTitle is the preview window caption.
const DefaultWindowTitle = "Press 'q' to Capture"

var (
	// ErrDeviceUnavailable means the camera device could not be opened.
	ErrDeviceUnavailable = errors.New("could not open webcam")

	// ErrFrameRead means the device stopped delivering frames.
	ErrFrameRead = errors.New("failed to capture frame")

	// ErrWrite means the captured frame could not be saved.
	ErrWrite = errors.New("failed to save captured image")
)

// Camera captures one frame from a video device on a key press.
type Camera struct {
	// DeviceID is the OpenCV device index (0 is the default webcam).
	DeviceID int

	// Path is the file the frame is written to.
	Path string

	// Key is the key that triggers the capture.
	Key rune

	// WindowTitle is the preview window caption.
	WindowTitle string

	Logger *slog.Logger
}

// New returns a Camera for device writing to path, triggered by 'q'.
func New(device int, path string, logger *slog.Logger) *Camera {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Camera{
		DeviceID:    device,
		Path:        path,
		Key:         'q',
		WindowTitle: DefaultWindowTitle,
		Logger:      logger,
	}
}

// Acquire runs Capture. The frame file is kept, so cleanup does nothing.
func (c *Camera) Acquire(ctx context.Context) (string, func(), error) {
	path, err := c.Capture(ctx)
	return path, func() {}, err
}

// Capture opens the device, previews frames until the capture key is pressed,
// writes that frame to c.Path and returns the path.
//
// There is no timeout; the loop only ends on the key press, a frame read
// failure or ctx cancellation.
func (c *Camera) Capture(ctx context.Context) (string, error) {
	cam, err := gocv.OpenVideoCapture(c.DeviceID)
	if err != nil {
		return "", fmt.Errorf("%w (device %d): %v", ErrDeviceUnavailable, c.DeviceID, err)
	}
	defer cam.Close()

	if !cam.IsOpened() {
		return "", fmt.Errorf("%w (device %d)", ErrDeviceUnavailable, c.DeviceID)
	}

	window := gocv.NewWindow(c.WindowTitle)
	defer window.Close()

	frame := gocv.NewMat()
	defer frame.Close()

	c.Logger.Info("webcam preview open", "device", c.DeviceID, "key", string(c.Key))

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if ok := cam.Read(&frame); !ok || frame.Empty() {
			return "", fmt.Errorf("%w (device %d)", ErrFrameRead, c.DeviceID)
		}

		window.IMShow(frame)

		if key := window.WaitKey(1); key >= 0 && rune(key&0xFF) == c.Key {
			if !gocv.IMWrite(c.Path, frame) {
				return "", fmt.Errorf("%w: %s", ErrWrite, c.Path)
			}
			c.Logger.Info("image captured", "path", c.Path)
			return c.Path, nil
		}
	}
}
