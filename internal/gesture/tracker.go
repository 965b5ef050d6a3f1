package gesture

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesnake/internal/core"
)

var (
	// ErrCameraOpen is wrapped by sources whose camera could not be opened.
	ErrCameraOpen = errors.New("gesture: cannot open camera")

	// ErrQuit is returned by a Source when the user closed its preview.
	ErrQuit = errors.New("gesture: quit requested")
)

// Source yields detected hands, one call per captured frame.
type Source interface {
	// Next captures and analyzes one frame. It returns nil landmarks when the
	// frame was dropped or no hand was found.
	Next(ctx context.Context) (*HandLandmarks, error)

	// Close releases the camera, model and any preview window.
	Close() error
}

// Annotator is implemented by sources that want to show the classified
// gesture, e.g. on a preview window.
type Annotator interface {
	Annotate(hand *HandLandmarks, g core.Gesture)
}

// Opener opens a Source. It runs on the tracker goroutine.
type Opener func() (Source, error)

// Tracker is the capture loop: it polls a Source and publishes classified
// gestures to a Shared handoff.
type Tracker struct {
	shared    *Shared
	threshold float64
	logger    *log.Logger
}

// NewTracker creates a tracker publishing into shared.
func NewTracker(shared *Shared, threshold float64, logger *log.Logger) *Tracker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Tracker{
		shared:    shared,
		threshold: threshold,
		logger:    logger,
	}
}

// Run opens the source and polls it until ctx is done. It returns nil when
// ctx ends, ErrQuit when the user quit from the source, and otherwise the
// open or detection error. Open errors keep their cause, so only a source
// that failed on its camera matches ErrCameraOpen.
func (t *Tracker) Run(ctx context.Context, open Opener) error {
	src, err := open()
	if err != nil {
		return fmt.Errorf("gesture: cannot open source: %w", err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			t.logger.Warn("closing capture source", "error", cerr)
		}
	}()

	annotator, _ := src.(Annotator)
	last := core.GestureNone

	for {
		if ctx.Err() != nil {
			return nil
		}

		hand, err := src.Next(ctx)
		if errors.Is(err, ErrQuit) {
			return ErrQuit
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("gesture: detection failed: %w", err)
		}

		g := ClassifyHand(hand, t.threshold)
		if t.shared.Set(g) {
			t.logger.Debug("steering changed", "gesture", g)
		}
		if annotator != nil {
			annotator.Annotate(hand, g)
		}
		if g != last {
			t.logger.Debug("pose", "gesture", g, "hand", hand != nil)
			last = g
		}
	}
}
