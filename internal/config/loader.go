package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.gesnake/config.yaml -> ./configs/gesnake.yaml -> embedded default.
// Files are decoded over the defaults, so they only need the keys they change.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return DefaultConfig(), fmt.Errorf("config: failed to parse %s: %w", userCfgPath, err)
			}
			return cfg, cfg.Validate()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "gesnake.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultConfig(), fmt.Errorf("config: failed to parse configs/gesnake.yaml: %w", err)
		}
		return cfg, cfg.Validate()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gesnake", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks that values are usable.
func (c Config) Validate() error {
	var errs []error

	if c.Camera.Device < 0 {
		errs = append(errs, fmt.Errorf("camera.device must be >= 0, got %d", c.Camera.Device))
	}
	if c.Camera.Width <= 0 || c.Camera.Height <= 0 {
		errs = append(errs, fmt.Errorf("camera resolution must be positive, got %dx%d", c.Camera.Width, c.Camera.Height))
	}
	if c.Detector.ModelPath == "" {
		errs = append(errs, errors.New("detector.model_path is required"))
	}
	if c.Detector.InputSize <= 0 {
		errs = append(errs, fmt.Errorf("detector.input_size must be positive, got %d", c.Detector.InputSize))
	}
	if c.Detector.MinConfidence < 0 || c.Detector.MinConfidence > 1 {
		errs = append(errs, fmt.Errorf("detector.min_confidence must be in [0, 1], got %g", c.Detector.MinConfidence))
	}
	if c.Gesture.Threshold <= 0 || c.Gesture.Threshold >= 0.5 {
		errs = append(errs, fmt.Errorf("gesture.threshold must be in (0, 0.5), got %g", c.Gesture.Threshold))
	}
	if c.Display.Frontend == "" {
		errs = append(errs, errors.New("display.frontend is required"))
	}
	if c.Display.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("display.cell_size must be positive, got %d", c.Display.CellSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
