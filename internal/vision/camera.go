// Package vision wires the webcam, the hand landmark model and the debug
// preview window into a gesture.Source.
package vision

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/vovakirdan/gesnake/internal/gesture"
)

// Camera wraps an OpenCV capture device and a reusable frame buffer.
type Camera struct {
	capture *gocv.VideoCapture
	frame   gocv.Mat
}

// OpenCamera opens the capture device and requests the given resolution.
// Drivers are free to pick the nearest mode they support. Failures wrap
// gesture.ErrCameraOpen.
func OpenCamera(device, width, height int) (*Camera, error) {
	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("vision: camera %d: %w: %w", device, gesture.ErrCameraOpen, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("vision: camera %d: %w: device not available", device, gesture.ErrCameraOpen)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(height))

	return &Camera{
		capture: capture,
		frame:   gocv.NewMat(),
	}, nil
}

// Read grabs the next frame. ok is false for a dropped frame. The returned
// Mat is owned by the camera and is overwritten by the next Read.
func (c *Camera) Read() (frame *gocv.Mat, ok bool) {
	if !c.capture.Read(&c.frame) || c.frame.Empty() {
		return nil, false
	}
	return &c.frame, true
}

// Close releases the device.
func (c *Camera) Close() error {
	c.frame.Close()
	return c.capture.Close()
}
