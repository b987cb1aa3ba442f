package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stack-tower/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing. The mode defaults to normal.

Controls:
  Space/Up/Enter - Drop the block
  1              - Slow motion
  2              - Hint guide
  V              - Revive (once per run, on the result screen)
  R              - Retry
  P              - Pause
  B/Esc          - Back to the title screen
  Q/Ctrl+C       - Quit
  Ctrl+S         - Screenshot to ~/.tower/screenshots

Examples:
  tower play
  tower play easy
  tower play hard --break 0
  tower play --config ./my-tower.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	mode := lookupMode(args)

	s := mustSession(true)
	defer s.Close()

	game := s.env.NewGame(mode)
	if err := tui.Run(game, runtimeConfig()); err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
