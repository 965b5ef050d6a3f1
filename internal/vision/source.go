package vision

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gocv.io/x/gocv"

	"github.com/vovakirdan/gesnake/internal/config"
	"github.com/vovakirdan/gesnake/internal/core"
	"github.com/vovakirdan/gesnake/internal/gesture"
)

// droppedFrameBackoff keeps a stalled camera from spinning the capture loop.
const droppedFrameBackoff = 10 * time.Millisecond

// Source is the webcam-backed gesture.Source.
type Source struct {
	camera   *Camera
	detector *Detector
	preview  *Preview

	frame *gocv.Mat
	quit  bool

	logger *log.Logger
}

var (
	_ gesture.Source    = (*Source)(nil)
	_ gesture.Annotator = (*Source)(nil)
)

// Open opens the camera first, then the model, then the preview window if
// enabled.
func Open(cfg config.Config, logger *log.Logger) (*Source, error) {
	if logger == nil {
		logger = log.Default()
	}

	camera, err := OpenCamera(cfg.Camera.Device, cfg.Camera.Width, cfg.Camera.Height)
	if err != nil {
		return nil, err
	}
	logger.Info("camera opened", "device", cfg.Camera.Device,
		"width", cfg.Camera.Width, "height", cfg.Camera.Height)

	detector, err := NewDetector(cfg.Detector, logger)
	if err != nil {
		camera.Close()
		return nil, err
	}

	s := &Source{
		camera:   camera,
		detector: detector,
		logger:   logger,
	}
	if cfg.Camera.Preview {
		s.preview = NewPreview(cfg.Camera.PreviewTitle)
	}
	return s, nil
}

// Opener returns a gesture.Opener for the given configuration.
func Opener(cfg config.Config, logger *log.Logger) gesture.Opener {
	return func() (gesture.Source, error) {
		src, err := Open(cfg, logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
}

// Next reads one frame and runs the detector on it.
func (s *Source) Next(ctx context.Context) (*gesture.HandLandmarks, error) {
	if s.quit {
		return nil, gesture.ErrQuit
	}

	frame, ok := s.camera.Read()
	if !ok {
		s.frame = nil
		select {
		case <-ctx.Done():
		case <-time.After(droppedFrameBackoff):
		}
		return nil, nil
	}
	s.frame = frame

	hand, err := s.detector.Detect(frame)
	if err != nil {
		return nil, fmt.Errorf("vision: detect: %w", err)
	}
	return hand, nil
}

// Annotate shows the last frame on the preview window. A 'q' press there
// makes the following Next return gesture.ErrQuit.
func (s *Source) Annotate(hand *gesture.HandLandmarks, g core.Gesture) {
	if s.preview == nil || s.frame == nil {
		return
	}
	if s.preview.Show(s.frame, hand, g) {
		s.logger.Info("preview closed with q")
		s.quit = true
	}
}

// Close releases the preview, the model and the camera.
func (s *Source) Close() error {
	var errs []error
	if s.preview != nil {
		errs = append(errs, s.preview.Close())
	}
	errs = append(errs, s.detector.Close(), s.camera.Close())
	return errors.Join(errs...)
}
