package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/stack-tower/internal/core"
)

func TestRenderScreenContent(t *testing.T) {
	var p core.Palette
	red := p.Add("#ff0000")
	blue := p.Add("#0000ff")

	s := core.NewScreen(4, 2)
	s.SetPalette(p)
	s.SetCell(0, 0, core.Cell{Rune: 'A', Color: red})
	s.SetCell(1, 0, core.Cell{Rune: 'B', Color: red})
	s.SetCell(3, 1, core.Cell{Rune: 'C', Color: blue})

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "AB  " {
		t.Errorf("line 0 = %q, want %q", lines[0], "AB  ")
	}
	if lines[1] != "   C" {
		t.Errorf("line 1 = %q, want %q", lines[1], "   C")
	}
}

func TestScreenRendererCachesStyles(t *testing.T) {
	var p core.Palette
	red := p.Add("#ff0000")

	s := core.NewScreen(2, 1)
	s.SetPalette(p)
	s.SetCell(0, 0, core.Cell{Rune: 'x', Color: red})

	sr := NewScreenRenderer(nil)
	sr.Render(s)
	if got := sr.styles.Len(); got != 1 {
		t.Fatalf("cached %d styles, want 1", got)
	}

	sr.Render(s)
	if got := sr.styles.Len(); got != 1 {
		t.Errorf("second render cached %d styles, want 1", got)
	}

	// A new palette drops the cache
	var q core.Palette
	q.Add("#00ff00")
	s.SetPalette(q)
	sr.Render(s)
	if got := sr.styles.Len(); got != 1 {
		t.Errorf("after palette change cached %d styles, want 1", got)
	}
	if sr.palette.Hex(red) != "#00ff00" {
		t.Errorf("renderer palette not refreshed: %v", sr.palette)
	}
}
