package progress

import "github.com/vovakirdan/stack-tower/internal/games/tower/sim"

// AggregateStats are the lifetime counters. They only grow.
type AggregateStats struct {
	MaxFloor      int `json:"maxFloor"`
	MaxScore      int `json:"maxScore"`
	TotalGames    int `json:"totalGames"`
	TotalFloors   int `json:"totalFloors"`
	TotalPerfects int `json:"totalPerfects"`
	BestStreak    int `json:"bestStreak"`
}

// AvgFloor returns total floors per game, rounded down.
func (a AggregateStats) AvgFloor() int {
	if a.TotalGames <= 0 {
		return 0
	}
	return a.TotalFloors / a.TotalGames
}

// merge takes the larger value of every counter.
func (a AggregateStats) merge(b AggregateStats) AggregateStats {
	return AggregateStats{
		MaxFloor:      max(a.MaxFloor, b.MaxFloor),
		MaxScore:      max(a.MaxScore, b.MaxScore),
		TotalGames:    max(a.TotalGames, b.TotalGames),
		TotalFloors:   max(a.TotalFloors, b.TotalFloors),
		TotalPerfects: max(a.TotalPerfects, b.TotalPerfects),
		BestStreak:    max(a.BestStreak, b.BestStreak),
	}
}

// Ledger commits run summaries into a profile. A run that is committed
// again after a revive only adds what changed since its last commit, so a
// run counts as one game no matter how often it ends.
type Ledger struct {
	last sim.RunSummary
	has  bool
}

// CommitResult describes what a commit changed.
type CommitResult struct {
	NewBest   bool
	NewThemes []string
	NewBadges []string
}

// Commit folds a finished run into the profile and runs the unlock checks.
func (l *Ledger) Commit(p *Profile, run sim.RunSummary, cat *Catalog) CommitResult {
	prev := sim.RunSummary{}
	games := 1
	if l.has && l.last.RunID == run.RunID {
		prev = l.last
		games = 0
	}

	var res CommitResult
	res.NewBest = run.Floor > p.Stats.MaxFloor && run.Floor > 0

	s := &p.Stats
	s.TotalGames += games
	s.TotalFloors += max(0, run.Floor-prev.Floor)
	s.TotalPerfects += max(0, run.Perfects-prev.Perfects)
	s.BestStreak = max(s.BestStreak, run.BestStreak)
	s.MaxFloor = max(s.MaxFloor, run.Floor)
	s.MaxScore = max(s.MaxScore, run.Score)

	res.NewThemes = cat.UnlockThemes(p)
	res.NewBadges = cat.UnlockBadges(p)

	l.last = run
	l.has = true
	return res
}
