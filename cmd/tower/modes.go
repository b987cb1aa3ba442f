package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stack-tower/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all modes",
	Long:  `Shows the registered modes and how they tune the game.`,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Description")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, m.ID, m.Title, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tower play <id>' to play a mode.")
}
