package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stack-tower/internal/games/tower"
	"github.com/vovakirdan/stack-tower/internal/games/tower/progress"
	"github.com/vovakirdan/stack-tower/internal/storage"
)

// Stats screen layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the record sidebar
	sidebarWidth       = 26  // Width of the record sidebar
	maxRuns            = 100 // Max runs to load
)

// statsTab is one table of the stats screen.
type statsTab int

const (
	tabRuns statsTab = iota
	tabBadges
	tabCount
)

func (t statsTab) String() string {
	if t == tabBadges {
		return "Badges"
	}
	return "Top Runs"
}

// StatsKeyMap defines the key bindings for the stats screen.
type StatsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next table"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel shows the aggregate record, the top runs and the badges.
type StatsModel struct {
	profile     progress.Profile
	catalog     *progress.Catalog
	store       Store
	runs        []storage.RunEntry
	history     *storage.RunStats
	tab         statsTab
	table       table.Model
	help        help.Model
	keys        StatsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewStatsModel creates a stats screen for the game's profile. A nil store
// shows the profile only.
func NewStatsModel(game *tower.Game, store Store, width, height int) StatsModel {
	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		profile:     game.Profile(),
		catalog:     game.Catalog(),
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.loadRuns()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *StatsModel) loadRuns() {
	if m.store == nil {
		return
	}
	if runs, err := m.store.TopRuns(maxRuns); err == nil {
		m.runs = runs
	}
	if history, err := m.store.GetRunStats(); err == nil {
		m.history = history
	}
}

// createTable creates a table with the columns of the current tab.
func (m *StatsModel) createTable() table.Model {
	tableWidth := m.width - 6
	if m.showSidebar {
		tableWidth -= sidebarWidth + 4
	}

	var columns []table.Column
	switch m.tab {
	case tabBadges:
		columns = []table.Column{
			{Title: "", Width: 2},
			{Title: "Badge", Width: 20},
			{Title: "How", Width: max(tableWidth-32, 12)},
			{Title: "Got", Width: 4},
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Floor", Width: 6},
			{Title: "Score", Width: 7},
			{Title: "Perf", Width: 5},
			{Title: "Theme", Width: 8},
			{Title: "Date", Width: min(max(tableWidth-41, 6), 12)},
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table for the current tab.
func (m *StatsModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabBadges:
		for _, b := range m.catalog.Badges() {
			got := ""
			if m.profile.HasBadge(b.ID) {
				got = "yes"
			}
			rows = append(rows, table.Row{b.Emoji, b.Name, b.Description, got})
		}
	default:
		for i, r := range m.runs {
			rows = append(rows, table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", r.Floor),
				fmt.Sprintf("%d", r.Score),
				fmt.Sprintf("%d", r.Perfects),
				r.Theme,
				r.CreatedAt.Format("Jan 02 15:04"),
			})
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *StatsModel) switchTab(delta int) {
	m.tab = statsTab((int(m.tab) + delta + int(tabCount)) % int(tabCount))
	m.table = m.createTable()
	m.updateTableRows()
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.switchTab(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("STATS - "+m.tab.String(), m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	tableView := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		sidebar := boxStyle.Width(sidebarWidth).Render(m.renderRecord())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", tableView))
	} else {
		b.WriteString(centerText(m.recordLine(), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableView)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderRecord lists the aggregate record for the sidebar.
func (m StatsModel) renderRecord() string {
	s := m.profile.Stats
	title := m.catalog.TitleFor(s.MaxFloor)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", title.Emoji, truncate(title.Name, sidebarWidth-6))
	b.WriteString(strings.Repeat("-", sidebarWidth-4))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Best floor   %d\n", s.MaxFloor)
	fmt.Fprintf(&b, "Best score   %d\n", s.MaxScore)
	fmt.Fprintf(&b, "Games        %d\n", s.TotalGames)
	fmt.Fprintf(&b, "Floors       %d\n", s.TotalFloors)
	fmt.Fprintf(&b, "Avg floor    %d\n", s.AvgFloor())
	fmt.Fprintf(&b, "Perfects     %d\n", s.TotalPerfects)
	fmt.Fprintf(&b, "Best streak  %d\n", s.BestStreak)
	fmt.Fprintf(&b, "Badges       %d/%d\n", len(m.profile.UnlockedBadges), len(m.catalog.Badges()))
	if m.history != nil && m.history.Runs > 0 {
		b.WriteString("\n")
		b.WriteString(plural(m.history.Runs, "run"))
		b.WriteString(" recorded\n")
		fmt.Fprintf(&b, "Last %s", m.history.LastPlayed.Format("Jan 02 15:04"))
	}
	return b.String()
}

// recordLine is the one-line record for narrow terminals.
func (m StatsModel) recordLine() string {
	s := m.profile.Stats
	return fmt.Sprintf("Best %d  Avg %d  %s  Streak %d",
		s.MaxFloor, s.AvgFloor(), plural(s.TotalGames, "game"), s.BestStreak)
}

// renderTableContent renders the table or empty message.
func (m StatsModel) renderTableContent() string {
	if m.tab == tabRuns && len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nStack a tower to set a record!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}
