// tower is Stack Tower, a one-button block stacking game for the terminal.
//
// Usage:
//
//	tower play [mode]        - Play a mode directly
//	tower menu               - Start the menu (modes, themes, stats)
//	tower serve              - Start SSH server for remote play
//	tower gui [mode]         - Play in a desktop window
//	tower stats              - Show your record and badges
//	tower scores             - Show the top runs
//	tower modes              - List the modes
//	tower themes list|use    - List or pick a theme
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.tower/tower.db)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/stack-tower/internal/games/tower"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagLogFile      string
	flagConfig       string
	flagContent      string
	flagMute         bool
	flagBreakSeconds int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tower",
	Short: "Stack Tower - drop blocks, stack them high",
	Long: `Stack Tower is a one-button timing game. A block slides back and forth
above your tower; drop it so it lands on the block below. Whatever hangs
over the edge is cut off, so the tower narrows with every miss.

Land a block almost exactly on the one below for a PERFECT: it snaps into
place, builds your combo and, after a streak, grows the block back.

Available commands:
  play     - Play a mode directly
  menu     - Interactive menu
  serve    - Start SSH server for remote play
  gui      - Play in a desktop window
  stats    - Show your record and badges
  scores   - Show the top runs
  modes    - List the modes
  themes   - List or pick a theme

Examples:
  tower play
  tower play hard
  tower menu
  tower serve --ssh :2222
  tower themes use neon`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tower/tower.db", "Path to the profile and run database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tower config YAML")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Path to custom themes and titles YAML")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.PersistentFlags().IntVar(&flagBreakSeconds, "break", 5, "Seconds of sponsor break before a power-up is granted (0 = instant)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(themesCmd)
}
