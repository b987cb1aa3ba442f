package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stack-tower/internal/config"
	"github.com/vovakirdan/stack-tower/internal/games/tower"
	"github.com/vovakirdan/stack-tower/internal/games/tower/progress"
)

// ThemeModel lets the player pick one of the unlocked themes.
type ThemeModel struct {
	game      *tower.Game
	themes    []config.ThemeConfig
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	status    string
	done      bool
	quitting  bool
}

// NewThemeModel creates a theme picker over the game's profile.
func NewThemeModel(game *tower.Game, width, height int) ThemeModel {
	themes := game.Catalog().Themes()
	m := ThemeModel{
		game:      game,
		themes:    themes,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	current := game.Profile().Theme
	for i, t := range themes {
		if t.ID == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the theme picker.
func (m ThemeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the theme picker.
func (m ThemeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.done = true
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
			m.status = ""
		case MenuActionDown:
			if m.cursor < len(m.themes)-1 {
				m.cursor++
			}
			m.status = ""
		case MenuActionSelect:
			m.status = m.selectCurrent()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m ThemeModel) selectCurrent() string {
	if len(m.themes) == 0 {
		return ""
	}
	t := m.themes[m.cursor]
	err := m.game.SelectTheme(t.ID)
	switch {
	case errors.Is(err, progress.ErrThemeLocked):
		return fmt.Sprintf("Reach floor %d to unlock %s", t.UnlockFloor, t.Name)
	case err != nil:
		return "Theme applied, but could not be saved"
	}
	return fmt.Sprintf("%s %s selected", t.Emoji, t.Name)
}

// View renders the theme list with colour swatches.
func (m ThemeModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("THEMES"), m.width))
	b.WriteString("\n\n")

	profile := m.game.Profile()
	for i, t := range m.themes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		var status string
		switch {
		case t.ID == profile.Theme:
			status = "selected"
		case !profile.HasTheme(t.ID):
			status = fmt.Sprintf("locked (floor %d)", t.UnlockFloor)
		}

		name := fmt.Sprintf("%s%s %-10s", cursor, t.Emoji, t.Name)
		if i == m.cursor {
			name = menuActive.Render(name)
		}
		line := fmt.Sprintf("%s %s %s", name, swatch(t), menuDim.Render(status))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(centerText(m.status, m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Use  |  Esc: Back", m.width))
	b.WriteString("\n")
	return b.String()
}

// swatch renders one block per theme colour.
func swatch(t config.ThemeConfig) string {
	var b strings.Builder
	for _, c := range t.Colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("█"))
	}
	return b.String()
}

// Done returns true when the user left the picker.
func (m ThemeModel) Done() bool {
	return m.done
}

// IsQuitting returns true if user requested to quit.
func (m ThemeModel) IsQuitting() bool {
	return m.quitting
}
