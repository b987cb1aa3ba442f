// Package progress holds the meta-progression that outlives a run:
// aggregate stats, the persisted profile, theme unlocks, titles and badges.
package progress

import (
	"fmt"

	"github.com/vovakirdan/stack-tower/internal/config"
)

// Catalog gives total lookups over the read-only content tables.
type Catalog struct {
	themes   []config.ThemeConfig
	titles   []config.TitleConfig
	specials []config.SpecialTitleConfig
}

// NewCatalog builds a catalog. Empty tables are replaced by the built-in
// defaults so that every lookup has a first entry to fall back to.
func NewCatalog(c config.ContentConfig) *Catalog {
	def := config.DefaultContentConfig()
	if len(c.Themes) == 0 {
		c.Themes = def.Themes
	}
	if len(c.Titles) == 0 {
		c.Titles = def.Titles
	}
	return &Catalog{themes: c.Themes, titles: c.Titles, specials: c.SpecialTitles}
}

// Themes returns all themes in table order.
func (c *Catalog) Themes() []config.ThemeConfig { return c.themes }

// Titles returns the floor titles in ascending floor order.
func (c *Catalog) Titles() []config.TitleConfig { return c.titles }

// SpecialTitles returns the counter-based badges.
func (c *Catalog) SpecialTitles() []config.SpecialTitleConfig { return c.specials }

// DefaultTheme returns the first theme.
func (c *Catalog) DefaultTheme() config.ThemeConfig { return c.themes[0] }

// Theme returns the theme with the given id, or the first theme.
func (c *Catalog) Theme(id string) config.ThemeConfig {
	for _, t := range c.themes {
		if t.ID == id {
			return t
		}
	}
	return c.themes[0]
}

// HasTheme reports whether id names a theme in the table.
func (c *Catalog) HasTheme(id string) bool {
	for _, t := range c.themes {
		if t.ID == id {
			return true
		}
	}
	return false
}

// TitleFor returns the last title whose floor is <= floor, or the lowest
// title when none qualifies.
func (c *Catalog) TitleFor(floor int) config.TitleConfig {
	current := c.titles[0]
	for _, t := range c.titles {
		if floor >= t.Floor {
			current = t
		}
	}
	return current
}

// BlockColor returns the theme colour for a block index.
func BlockColor(t config.ThemeConfig, index int) string {
	if len(t.Colors) == 0 {
		return "#ffffff"
	}
	if index < 0 {
		index = -index
	}
	return t.Colors[index%len(t.Colors)]
}

// Badge is a displayable achievement.
type Badge struct {
	ID          string
	Name        string
	Emoji       string
	Description string
}

// FloorBadgeID returns the badge id for a floor title.
func FloorBadgeID(floor int) string {
	return fmt.Sprintf("floor_%d", floor)
}

// Badges lists every badge: floor titles first, then special titles.
func (c *Catalog) Badges() []Badge {
	out := make([]Badge, 0, len(c.titles)+len(c.specials))
	for _, t := range c.titles {
		out = append(out, Badge{
			ID:          FloorBadgeID(t.Floor),
			Name:        t.Name,
			Emoji:       t.Emoji,
			Description: fmt.Sprintf("Reach floor %d", t.Floor),
		})
	}
	for _, s := range c.specials {
		desc := fmt.Sprintf("Build %d floors in total", s.Value)
		if s.Condition == ConditionPerfectStreak {
			desc = fmt.Sprintf("%d perfects in a row", s.Value)
		}
		out = append(out, Badge{ID: s.ID, Name: s.Name, Emoji: s.Emoji, Description: desc})
	}
	return out
}
