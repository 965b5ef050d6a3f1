package config

import (
	_ "embed"
)

//go:embed defaults/gesnake.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{
			Device:       0,
			Width:        80,
			Height:       100,
			Preview:      true,
			PreviewTitle: "Webcam",
		},
		Detector: DetectorConfig{
			ModelPath:        "models/hand_landmark.onnx",
			LibraryPath:      "lib/libonnxruntime.so",
			InputSize:        224,
			InputName:        "input_1",
			LandmarksOutput:  "Identity",
			PresenceOutput:   "Identity_1",
			HandednessOutput: "Identity_2",
			ApplySigmoid:     true,
			MinConfidence:    0.5,
			Threads:          1,
		},
		Gesture: GestureConfig{
			Threshold: 0.1,
		},
		Display: DisplayConfig{
			Frontend: "window",
			CellSize: 40,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
