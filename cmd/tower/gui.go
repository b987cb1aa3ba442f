package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stack-tower/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui [mode]",
	Short: "Play in a desktop window",
	Long: `Open Stack Tower in a window. Click, tap or press Space to drop.
The other keys match the terminal version; Q closes the window.

Examples:
  tower gui
  tower gui hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, args []string) {
	mode := lookupMode(args)

	s := mustSession(true)
	defer s.Close()

	game := s.env.NewGame(mode)
	if err := gui.Run(game, runtimeConfig()); err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
