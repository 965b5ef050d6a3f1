package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gesnake/internal/app"
	"github.com/vovakirdan/gesnake/internal/config"
	"github.com/vovakirdan/gesnake/internal/platform/tui"
	"github.com/vovakirdan/gesnake/internal/registry"
	"github.com/vovakirdan/gesnake/internal/storage"
	"github.com/vovakirdan/gesnake/internal/vision"
)

var (
	flagDisplay   string
	flagCamera    int
	flagModel     string
	flagORTLib    string
	flagSeed      int64
	flagNoPreview bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Open the camera and play.

Steering (index finger relative to the wrist):
  Point up     - Up
  Point down   - Down
  Point left   - Left
  Point right  - Right

Keys:
  P/Space    - Pause
  R          - Restart (after game over)
  Q/Esc      - Quit
  q          - Quit from the camera preview window

Examples:
  gesnake play
  gesnake play --display terminal --log-file gesnake.log
  gesnake play --camera 1 --no-preview
  gesnake play --model ./hand_landmark.onnx --ort-lib /usr/lib/libonnxruntime.so`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command shares them
// so that a bare "gesnake" plays.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagDisplay, "display", "", "Display: window or terminal (see 'gesnake displays')")
	cmd.Flags().IntVar(&flagCamera, "camera", -1, "Camera device index")
	cmd.Flags().StringVar(&flagModel, "model", "", "Hand landmark ONNX model")
	cmd.Flags().StringVar(&flagORTLib, "ort-lib", "", "onnxruntime shared library")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for fruit placement (0 = random based on time)")
	cmd.Flags().BoolVar(&flagNoPreview, "no-preview", false, "Do not show the camera preview window")
}

// applyPlayFlags overrides file values with flags that were set.
func applyPlayFlags(cfg *config.Config) {
	if flagDisplay != "" {
		cfg.Display.Frontend = flagDisplay
	}
	if flagCamera >= 0 {
		cfg.Camera.Device = flagCamera
	}
	if flagModel != "" {
		cfg.Detector.ModelPath = flagModel
	}
	if flagORTLib != "" {
		cfg.Detector.LibraryPath = flagORTLib
	}
	if flagNoPreview {
		cfg.Camera.Preview = false
	}
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyPlayFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !registry.Exists(cfg.Display.Frontend) {
		return fmt.Errorf("unknown display %q, run 'gesnake displays' to see available displays", cfg.Display.Frontend)
	}
	frontend, err := registry.Create(cfg.Display.Frontend, cfg.Display.CellSize)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, frontend.ID())
	if err != nil {
		return err
	}
	defer closeLog()

	ledger, err := storage.Open()
	if err != nil {
		return err
	}
	defer ledger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := app.Run(ctx, app.Options{
		Seed:      flagSeed,
		Threshold: cfg.Gesture.Threshold,
		Ledger:    ledger,
		Logger:    logger,
	}, frontend, vision.Opener(cfg, logger))

	printSummary(ledger)
	return runErr
}

func printSummary(ledger *storage.Store) {
	rounds, err := ledger.Rounds()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	st, err := ledger.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Print(tui.RenderSummary(rounds, st))
}
