// gesnake is Snake steered by pointing at a webcam.
//
// Usage:
//
//	gesnake                  - Play (same as "gesnake play")
//	gesnake play             - Play with the configured display
//	gesnake calibrate        - Run only the camera and log recognized gestures
//	gesnake config           - Print the effective configuration
//	gesnake displays         - List available displays
//
// Global flags:
//
//	--config <path>      - Configuration file (default search: ~/.gesnake, ./configs)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import displays to register them
	_ "github.com/vovakirdan/gesnake/internal/platform/tui"
	_ "github.com/vovakirdan/gesnake/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gesnake",
	Short: "Snake steered by hand gestures in front of a webcam",
	Long: `gesnake plays Snake on a 20x20 grid. Point your index finger up,
down, left or right in front of the camera to steer.

Available commands:
  play       - Play (default)
  calibrate  - Check camera and gesture recognition without playing
  config     - Print the effective configuration
  displays   - List available displays

Examples:
  gesnake
  gesnake play --display terminal
  gesnake calibrate --camera 1
  gesnake config > ~/.gesnake/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(displaysCmd)
}
