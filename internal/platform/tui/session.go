package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stack-tower/internal/core"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewThemes
	viewStats
)

// SessionModel manages the full session flow: menu -> game/themes/stats -> menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	env      Env
	config   core.RuntimeConfig
	renderer *ScreenRenderer
	view     sessionView
	menu     MenuModel
	game     Model
	themes   ThemeModel
	stats    StatsModel
	quitting bool
}

// NewSessionModel creates a new session model. A nil renderer draws for
// the local terminal.
func NewSessionModel(env Env, cfg core.RuntimeConfig, renderer *ScreenRenderer) SessionModel {
	if renderer == nil {
		renderer = NewScreenRenderer(nil)
	}
	return SessionModel{
		env:      env,
		config:   cfg,
		renderer: renderer,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewThemes:
		return m.updateThemes(msg)
	case viewStats:
		return m.updateStats(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch selected.Dest {
	case DestThemes:
		m.themes = NewThemeModel(m.env.NewGame(DefaultMode()), m.config.ScreenW, m.config.ScreenH)
		m.view = viewThemes
		return m, m.themes.Init()

	case DestStats:
		m.stats = NewStatsModel(m.env.NewGame(DefaultMode()), m.env.Store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewStats
		return m, m.stats.Init()
	}

	game := m.env.NewGame(selected.Mode)
	m.game = NewModel(game, m.config).WithRenderer(m.renderer)
	m.view = viewGame
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateThemes(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.themes.Update(msg)
	if themeModel, ok := newModel.(ThemeModel); ok {
		m.themes = themeModel
	}

	if m.themes.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.themes.Done() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.stats.Update(msg)
	if statsModel, ok := newModel.(StatsModel); ok {
		m.stats = statsModel
	}

	if m.stats.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.stats.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewThemes:
		return m.themes.View()
	case viewStats:
		return m.stats.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(env, cfg, nil),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunThemes runs the theme picker on its own.
func RunThemes(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		themeProgram{NewThemeModel(env.NewGame(DefaultMode()), cfg.ScreenW, cfg.ScreenH)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// RunStats runs the stats screen on its own.
func RunStats(env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		statsProgram{NewStatsModel(env.NewGame(DefaultMode()), env.Store, cfg.ScreenW, cfg.ScreenH)},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// statsProgram exits the program when the stats screen is left.
type statsProgram struct {
	StatsModel
}

func (p statsProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.StatsModel.Update(msg)
	if sm, ok := next.(StatsModel); ok {
		p.StatsModel = sm
	}
	if p.IsGoingBack() {
		return p, tea.Quit
	}
	return p, cmd
}

// themeProgram exits the program when the theme picker is left.
type themeProgram struct {
	ThemeModel
}

func (p themeProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := p.ThemeModel.Update(msg)
	if tm, ok := next.(ThemeModel); ok {
		p.ThemeModel = tm
	}
	if p.Done() {
		return p, tea.Quit
	}
	return p, cmd
}
