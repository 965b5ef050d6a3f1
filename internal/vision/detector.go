package vision

import (
	"errors"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	ort "github.com/yalue/onnxruntime_go"
	"gocv.io/x/gocv"

	"github.com/vovakirdan/gesnake/internal/config"
	"github.com/vovakirdan/gesnake/internal/gesture"
)

// Detector runs a single-hand landmark model through ONNX Runtime. Tensors
// are allocated once and bound to the session; Detect only refills them.
type Detector struct {
	cfg     config.DetectorConfig
	session *ort.AdvancedSession

	input      *ort.Tensor[float32]
	landmarks  *ort.Tensor[float32]
	presence   *ort.Tensor[float32]
	handedness *ort.Tensor[float32]

	rgb     gocv.Mat
	resized gocv.Mat

	logger *log.Logger
}

// NewDetector loads the model, initializing the ORT environment on first use.
func NewDetector(cfg config.DetectorConfig, logger *log.Logger) (*Detector, error) {
	if logger == nil {
		logger = log.Default()
	}

	modelPath, err := ResolvePath(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("vision: load model: %w", err)
	}

	if !ort.IsInitialized() {
		libPath, err := ResolvePath(cfg.LibraryPath)
		if err != nil {
			return nil, fmt.Errorf("vision: load onnxruntime: %w", err)
		}
		ort.SetSharedLibraryPath(libPath)
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("vision: init onnxruntime: %w", err)
		}
		logger.Debug("onnxruntime ready", "library", libPath)
	}

	d := &Detector{
		cfg:     cfg,
		rgb:     gocv.NewMat(),
		resized: gocv.NewMat(),
		logger:  logger,
	}

	size := int64(cfg.InputSize)
	if d.input, err = ort.NewEmptyTensor[float32](ort.NewShape(1, size, size, 3)); err != nil {
		d.Close()
		return nil, fmt.Errorf("vision: input tensor: %w", err)
	}
	if d.landmarks, err = ort.NewEmptyTensor[float32](ort.NewShape(1, gesture.NumLandmarks*3)); err != nil {
		d.Close()
		return nil, fmt.Errorf("vision: landmark tensor: %w", err)
	}
	if d.presence, err = ort.NewEmptyTensor[float32](ort.NewShape(1, 1)); err != nil {
		d.Close()
		return nil, fmt.Errorf("vision: presence tensor: %w", err)
	}
	if d.handedness, err = ort.NewEmptyTensor[float32](ort.NewShape(1, 1)); err != nil {
		d.Close()
		return nil, fmt.Errorf("vision: handedness tensor: %w", err)
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("vision: session options: %w", err)
	}
	defer opts.Destroy()
	if cfg.Threads > 0 {
		if err := opts.SetIntraOpNumThreads(cfg.Threads); err != nil {
			d.logger.Warn("cannot limit detector threads", "error", err)
		}
	}

	d.session, err = ort.NewAdvancedSession(modelPath,
		[]string{cfg.InputName},
		[]string{cfg.LandmarksOutput, cfg.PresenceOutput, cfg.HandednessOutput},
		[]ort.Value{d.input},
		[]ort.Value{d.landmarks, d.presence, d.handedness},
		opts,
	)
	if err != nil {
		d.Close()
		return nil, fmt.Errorf("vision: create session for %s: %w", modelPath, err)
	}

	logger.Info("hand model loaded", "model", modelPath, "input", cfg.InputSize)
	return d, nil
}

// Detect returns the hand in a BGR frame, or nil when the model's presence
// score is below the configured confidence.
func (d *Detector) Detect(frame *gocv.Mat) (*gesture.HandLandmarks, error) {
	if frame == nil || frame.Empty() {
		return nil, nil
	}

	size := d.cfg.InputSize
	gocv.CvtColor(*frame, &d.rgb, gocv.ColorBGRToRGB)
	gocv.Resize(d.rgb, &d.resized, image.Pt(size, size), 0, 0, gocv.InterpolationLinear)

	if err := gesture.NormalizePixels(d.input.GetData(), d.resized.ToBytes()); err != nil {
		return nil, err
	}
	if err := d.session.Run(); err != nil {
		return nil, fmt.Errorf("vision: inference: %w", err)
	}

	score := d.probability(d.presence.GetData()[0])
	if score < d.cfg.MinConfidence {
		return nil, nil
	}

	hand, err := gesture.DecodeLandmarks(d.landmarks.GetData(), size)
	if err != nil {
		return nil, err
	}
	hand.Score = score
	hand.Handedness = gesture.HandednessLabel(d.probability(d.handedness.GetData()[0]))
	return &hand, nil
}

func (d *Detector) probability(v float32) float64 {
	if d.cfg.ApplySigmoid {
		return gesture.Sigmoid(v)
	}
	return float64(v)
}

// Close releases the session, tensors and scratch images.
func (d *Detector) Close() error {
	var errs []error
	if d.session != nil {
		errs = append(errs, d.session.Destroy())
	}
	for _, t := range []*ort.Tensor[float32]{d.input, d.landmarks, d.presence, d.handedness} {
		if t != nil {
			errs = append(errs, t.Destroy())
		}
	}
	errs = append(errs, d.rgb.Close(), d.resized.Close())
	return errors.Join(errs...)
}
