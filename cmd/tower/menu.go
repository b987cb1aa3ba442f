package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stack-tower/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start Stack Tower in interactive menu mode.

Pick a mode to play, choose a theme or browse your stats.
Press B/Esc on the game's title screen to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  tower menu
  tower menu --fps 30
  tower menu --db ./tower.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s := mustSession(true)
	defer s.Close()

	if err := tui.RunSession(s.env, runtimeConfig()); err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
