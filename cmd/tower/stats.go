package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stack-tower/internal/games/tower/progress"
	"github.com/vovakirdan/stack-tower/internal/platform/tui"
)

var (
	flagStatsTUI   bool
	flagStatsReset bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your record and badges",
	Long: `Display the aggregate record, title and badges of your profile.

Examples:
  tower stats
  tower stats --tui
  tower stats --reset   # forget record, themes and badges (run history is kept)`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Browse stats interactively")
	statsCmd.Flags().BoolVar(&flagStatsReset, "reset", false, "Reset the profile to a fresh start")
}

func runStats(_ *cobra.Command, _ []string) {
	s := mustSession(false)
	defer s.Close()

	if flagStatsReset {
		if s.store == nil {
			fmt.Fprintln(os.Stderr, "Error: no database to reset")
			s.Close()
			os.Exit(1)
		}
		if err := s.store.DeleteRecord(progress.ProfileKey); err != nil {
			s.Close()
			fmt.Fprintf(os.Stderr, "Error resetting profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Profile reset.")
		return
	}

	if flagStatsTUI {
		if err := tui.RunStats(s.env, runtimeConfig()); err != nil {
			s.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	game := s.env.NewGame(tui.DefaultMode())
	p := game.Profile()
	cat := game.Catalog()
	st := p.Stats
	title := cat.TitleFor(st.MaxFloor)

	fmt.Printf("Stack Tower - %s %s\n", title.Emoji, title.Name)
	fmt.Println()
	fmt.Printf("  %-12s %d\n", "Best floor", st.MaxFloor)
	fmt.Printf("  %-12s %d\n", "Best score", st.MaxScore)
	fmt.Printf("  %-12s %d\n", "Games", st.TotalGames)
	fmt.Printf("  %-12s %d\n", "Floors", st.TotalFloors)
	fmt.Printf("  %-12s %d\n", "Avg floor", st.AvgFloor())
	fmt.Printf("  %-12s %d\n", "Perfects", st.TotalPerfects)
	fmt.Printf("  %-12s %d\n", "Best streak", st.BestStreak)
	fmt.Printf("  %-12s %s\n", "Theme", cat.Theme(p.Theme).Name)

	if s.store != nil {
		if hist, err := s.store.GetRunStats(); err == nil && hist.Runs > 0 {
			fmt.Printf("  %-12s %s\n", "Last played", hist.LastPlayed.Format("2006-01-02 15:04"))
		}
	}

	fmt.Println()
	fmt.Printf("Badges (%d/%d)\n", len(p.UnlockedBadges), len(cat.Badges()))
	for _, b := range cat.Badges() {
		mark := " "
		if p.HasBadge(b.ID) {
			mark = "x"
		}
		fmt.Printf("  [%s] %s %-22s %s\n", mark, b.Emoji, b.Name, b.Description)
	}
}
