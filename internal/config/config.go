// Package config provides YAML-based configuration loading for gesnake.
// Gameplay timings and the grid are fixed; the file only covers the camera,
// the landmark model, gesture sensitivity, display and logging.
package config

// Config is the full application configuration.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Detector DetectorConfig `yaml:"detector"`
	Gesture  GestureConfig  `yaml:"gesture"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
}

// CameraConfig selects the capture device and the debug preview.
type CameraConfig struct {
	Device       int    `yaml:"device"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Preview      bool   `yaml:"preview"`
	PreviewTitle string `yaml:"preview_title"`
}

// DetectorConfig describes the hand landmark model and its runtime.
type DetectorConfig struct {
	ModelPath        string  `yaml:"model_path"`
	LibraryPath      string  `yaml:"library_path"` // onnxruntime shared library
	InputSize        int     `yaml:"input_size"`   // Square model input edge in pixels
	InputName        string  `yaml:"input_name"`
	LandmarksOutput  string  `yaml:"landmarks_output"`
	PresenceOutput   string  `yaml:"presence_output"`
	HandednessOutput string  `yaml:"handedness_output"`
	ApplySigmoid     bool    `yaml:"apply_sigmoid"` // Presence/handedness outputs are logits
	MinConfidence    float64 `yaml:"min_confidence"`
	Threads          int     `yaml:"threads"`
}

// GestureConfig tunes classification.
type GestureConfig struct {
	Threshold float64 `yaml:"threshold"` // Fingertip offset from the wrist, normalized units
}

// DisplayConfig picks the frontend.
type DisplayConfig struct {
	Frontend string `yaml:"frontend"`  // "window" or "terminal"
	CellSize int    `yaml:"cell_size"` // Window pixels per grid cell
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr (window) or discard (terminal)
}
