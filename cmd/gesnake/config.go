package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gesnake/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration gesnake would use, as YAML.

Files are searched in this order:
  --config <path>
  ~/.gesnake/config.yaml
  ./configs/gesnake.yaml
  built-in defaults

Examples:
  gesnake config
  gesnake config --defaults > ~/.gesnake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
