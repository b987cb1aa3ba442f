package progress

import "slices"

// Special title conditions.
const (
	ConditionPerfectStreak = "perfect_streak"
	ConditionTotalFloors   = "total_floors"
)

// UnlockThemes adds every theme whose unlock floor is reached and returns
// the ids that were newly added.
func (c *Catalog) UnlockThemes(p *Profile) []string {
	var added []string
	for _, t := range c.themes {
		if p.Stats.MaxFloor >= t.UnlockFloor && !slices.Contains(p.UnlockedThemes, t.ID) {
			p.UnlockedThemes = append(p.UnlockedThemes, t.ID)
			added = append(added, t.ID)
		}
	}
	return added
}

// UnlockBadges adds every earned floor and special badge and returns the
// ids that were newly added.
func (c *Catalog) UnlockBadges(p *Profile) []string {
	var added []string
	grant := func(id string) {
		if !slices.Contains(p.UnlockedBadges, id) {
			p.UnlockedBadges = append(p.UnlockedBadges, id)
			added = append(added, id)
		}
	}

	for _, t := range c.titles {
		if p.Stats.MaxFloor >= t.Floor {
			grant(FloorBadgeID(t.Floor))
		}
	}
	for _, s := range c.specials {
		switch s.Condition {
		case ConditionPerfectStreak:
			if p.Stats.BestStreak >= s.Value {
				grant(s.ID)
			}
		case ConditionTotalFloors:
			if p.Stats.TotalFloors >= s.Value {
				grant(s.ID)
			}
		}
	}
	return added
}
