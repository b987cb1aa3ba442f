package progress

import (
	"fmt"

	"github.com/vovakirdan/stack-tower/internal/config"
	"github.com/vovakirdan/stack-tower/internal/games/tower/sim"
)

// ShareText formats a finished run for sharing.
func ShareText(run sim.RunSummary, title config.TitleConfig) string {
	return fmt.Sprintf(
		"I stacked %d floors in Stack Tower! %s %s\nScore: %d | Perfect: %d",
		run.Floor, title.Emoji, title.Name, run.Score, run.Perfects,
	)
}

// Result is the game-over summary shown to the player.
type Result struct {
	Run       sim.RunSummary
	Title     config.TitleConfig
	NewBest   bool
	NewThemes []string
	NewBadges []string
	Share     string
}

// NewResult assembles the game-over summary after a commit.
func NewResult(run sim.RunSummary, commit CommitResult, p Profile, cat *Catalog) Result {
	title := cat.TitleFor(p.Stats.MaxFloor)
	return Result{
		Run:       run,
		Title:     title,
		NewBest:   commit.NewBest,
		NewThemes: commit.NewThemes,
		NewBadges: commit.NewBadges,
		Share:     ShareText(run, cat.TitleFor(run.Floor)),
	}
}
