package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gesnake/internal/gesture"
	"github.com/vovakirdan/gesnake/internal/vision"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Check camera and gesture recognition",
	Long: `Run the camera and hand model without the game and log every
recognized pose. Useful to find a good distance and lighting before playing.

Stop with q in the preview window or Ctrl+C.

Examples:
  gesnake calibrate
  gesnake calibrate --camera 1`,
	Args: cobra.NoArgs,
	RunE: runCalibrate,
}

var flagCalibrateCamera int

func init() {
	calibrateCmd.Flags().IntVar(&flagCalibrateCamera, "camera", -1, "Camera device index")
}

func runCalibrate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagCalibrateCamera >= 0 {
		cfg.Camera.Device = flagCalibrateCamera
	}
	cfg.Camera.Preview = true
	if flagLogLevel == "" {
		// Pose changes are logged at debug level
		cfg.Log.Level = "debug"
	}

	logger, closeLog, err := newLogger(cfg.Log, "window")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Hold your hand in front of the camera. Press q in the preview or Ctrl+C to stop.")

	// The preview window must be created and pumped from one OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	shared := gesture.NewShared()
	tracker := gesture.NewTracker(shared, cfg.Gesture.Threshold, logger)
	err = tracker.Run(ctx, vision.Opener(cfg, logger))
	if err != nil && !errors.Is(err, gesture.ErrQuit) {
		return err
	}

	logger.Info("calibration finished", "changes", shared.Changes(), "last", shared.Latest())
	if shared.Changes() == 0 {
		logger.Warn("no gesture was recognized, try more light or a lower detector.min_confidence",
			"threshold", cfg.Gesture.Threshold, "min_confidence", cfg.Detector.MinConfidence)
	}
	return nil
}
