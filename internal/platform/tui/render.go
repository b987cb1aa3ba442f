package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/stack-tower/internal/core"
)

// ScreenRenderer turns a Screen buffer into styled terminal output. Styles
// are built from the screen's palette on first use and cached until the
// palette changes.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	palette  core.Palette
	styles   *intmap.Map[core.Color, lipgloss.Style]
}

// NewScreenRenderer creates a renderer writing for r. A nil r uses the
// default lipgloss renderer (local terminal).
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   intmap.New[core.Color, lipgloss.Style](32),
	}
}

func (sr *ScreenRenderer) style(p core.Palette, c core.Color) lipgloss.Style {
	if !slices.Equal(sr.palette, p) {
		sr.styles.Clear()
		sr.palette = slices.Clone(p)
	}
	if st, ok := sr.styles.Get(c); ok {
		return st
	}
	st := sr.renderer.NewStyle()
	if hex := p.Hex(c); hex != "" {
		st = st.Foreground(lipgloss.Color(hex))
	}
	sr.styles.Put(c, st)
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	p := s.Palette()

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		cells := s.Cells(y)
		x := 0
		for x < len(cells) {
			startColor := cells[x].Color

			run.Reset()
			for ; x < len(cells) && cells[x].Color == startColor; x++ {
				run.WriteRune(cells[x].Rune)
			}

			if startColor == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(p, startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s for the local terminal.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}
