package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stack-tower/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top runs",
	Long: `Display the best runs from the run history, ranked by floor then score.

Examples:
  tower scores
  tower scores --limit 25
  tower scores --recent
  tower scores --clear      # delete the run history (your record is kept)`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	heading := "Top Runs"
	var runs []storage.RunEntry
	if flagScoresRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stack Tower - %s\n", heading)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tower play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-7s  %-8s  %-6s  %-8s  %s\n", "Rank", "Floor", "Score", "Perfects", "Streak", "Theme", "Date")
	fmt.Printf("  %-4s  %-5s  %-7s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "-----", "--------", "------", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-7d  %-8d  %-6d  %-8s  %s\n",
			i+1, r.Floor, r.Score, r.Perfects, r.BestStreak, r.Theme, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best score: %d\n", high)
	}
}
