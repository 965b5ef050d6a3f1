package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gesnake/internal/registry"
)

var displaysCmd = &cobra.Command{
	Use:   "displays",
	Short: "List available displays",
	Long:  `Shows every display that can be passed to --display.`,
	Args:  cobra.NoArgs,
	Run:   runDisplays,
}

func runDisplays(_ *cobra.Command, _ []string) {
	displays := registry.List()

	if len(displays) == 0 {
		fmt.Println("No displays available.")
		return
	}

	fmt.Println("Available displays:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range displays {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, d := range displays {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'gesnake play --display <id>' to use one.")
}
