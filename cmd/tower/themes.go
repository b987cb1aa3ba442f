package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stack-tower/internal/games/tower/progress"
	"github.com/vovakirdan/stack-tower/internal/platform/tui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List or pick a theme",
	Long: `Themes unlock as your best floor grows.

Run without a subcommand to open the interactive picker.

Examples:
  tower themes
  tower themes list
  tower themes use neon`,
	Run: runThemesPicker,
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the themes and their unlock floors",
	Args:  cobra.NoArgs,
	Run:   runThemesList,
}

var themesUseCmd = &cobra.Command{
	Use:   "use <id>",
	Short: "Select an unlocked theme",
	Args:  cobra.ExactArgs(1),
	Run:   runThemesUse,
}

func init() {
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesUseCmd)
}

func runThemesPicker(_ *cobra.Command, _ []string) {
	s := mustSession(false)
	defer s.Close()

	if err := tui.RunThemes(s.env, runtimeConfig()); err != nil {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runThemesList(_ *cobra.Command, _ []string) {
	s := mustSession(false)
	defer s.Close()

	game := s.env.NewGame(tui.DefaultMode())
	p := game.Profile()

	fmt.Println("Themes:")
	fmt.Println()
	fmt.Printf("  %-3s %-8s  %-8s  %s\n", "", "ID", "Name", "Status")
	for _, t := range game.Catalog().Themes() {
		mark := " "
		status := fmt.Sprintf("unlocks at floor %d", t.UnlockFloor)
		if p.HasTheme(t.ID) {
			status = "unlocked"
		}
		if t.ID == p.Theme {
			mark = "*"
			status = "selected"
		}
		fmt.Printf("  %-3s %-8s  %-8s  %s\n", mark, t.ID, t.Name, status)
	}
}

func runThemesUse(_ *cobra.Command, args []string) {
	s := mustSession(false)
	defer s.Close()

	game := s.env.NewGame(tui.DefaultMode())
	id := args[0]
	if !game.Catalog().HasTheme(id) {
		s.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'tower themes list' to see available themes.")
		os.Exit(1)
	}

	if err := game.SelectTheme(id); err != nil {
		s.Close()
		if errors.Is(err, progress.ErrThemeLocked) {
			t := game.Catalog().Theme(id)
			fmt.Fprintf(os.Stderr, "%s is locked: reach floor %d to unlock it.\n", t.Name, t.UnlockFloor)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	t := game.Catalog().Theme(id)
	fmt.Printf("Theme set to %s %s\n", t.Emoji, t.Name)
}
