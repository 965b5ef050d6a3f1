package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/vovakirdan/gesnake/internal/gesture"
)

// Run plays a session: the capture loop runs on its own goroutine and the
// frontend on the calling one. Whichever side stops first stops the other.
// A camera that cannot be opened ends the session with an error wrapping
// gesture.ErrCameraOpen.
func Run(ctx context.Context, opts Options, fe Frontend, open gesture.Opener) error {
	s := NewSession(ctx, opts)
	logger := s.logger

	tracker := gesture.NewTracker(s.shared, opts.Threshold, logger)
	trackerDone := make(chan error, 1)
	go func() {
		// The preview window must be created and pumped from one OS thread.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		err := tracker.Run(s.ctx, open)
		switch {
		case err == nil:
		case errors.Is(err, gesture.ErrQuit):
			logger.Info("quit from preview")
			s.Stop()
		case errors.Is(err, gesture.ErrCameraOpen):
			logger.Error("cannot open camera", "error", err)
			s.fail(err)
		default:
			logger.Error("gesture loop failed", "error", err)
			s.fail(err)
		}
		trackerDone <- err
	}()

	logger.Info("session started", "frontend", fe.ID())
	feErr := fe.Run(s.ctx, s)
	s.Stop()
	<-trackerDone

	if feErr != nil {
		return fmt.Errorf("app: %s frontend: %w", fe.ID(), feErr)
	}
	return s.Err()
}
