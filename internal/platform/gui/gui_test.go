package gui

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/stack-tower/internal/core"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#3498db", color.NRGBA{0x34, 0x98, 0xdb, 0xff}},
		{"#000000", color.NRGBA{0, 0, 0, 0xff}},
		{"", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"3498db", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#zzzzzz", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		if got := parseHex(tt.in); got != tt.want {
			t.Errorf("parseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorCache(t *testing.T) {
	c := make(colorCache)
	a := c.get("#ff0000")
	b := c.get("#ff0000")
	if a != b || len(c) != 1 {
		t.Errorf("cache should hold one entry, got %d", len(c))
	}
}

func TestFadeAndLerp(t *testing.T) {
	red := color.NRGBA{0xff, 0, 0, 0xff}
	if got := fade(red, 0.5).A; got != 0x7f {
		t.Errorf("fade(0.5).A = %#x, want 0x7f", got)
	}
	if got := fade(red, 2).A; got != 0xff {
		t.Errorf("fade clamps above 1, got %#x", got)
	}
	if got := fade(red, -1).A; got != 0 {
		t.Errorf("fade clamps below 0, got %#x", got)
	}

	black := color.NRGBA{0, 0, 0, 0xff}
	if got := lerp(black, red, 0); got != black {
		t.Errorf("lerp(0) = %v", got)
	}
	if got := lerp(black, red, 1); got != red {
		t.Errorf("lerp(1) = %v", got)
	}
}

func TestKeyBindings(t *testing.T) {
	seen := make(map[ebiten.Key]bool)
	actions := make(map[core.Action]bool)
	for _, b := range keyBindings {
		if seen[b.key] {
			t.Errorf("key %v bound twice", b.key)
		}
		seen[b.key] = true
		actions[b.action] = true
	}
	for _, want := range []core.Action{
		core.ActionDrop, core.ActionSlowMotion, core.ActionHint, core.ActionRevive,
		core.ActionRestart, core.ActionPause, core.ActionBack, core.ActionQuit,
	} {
		if !actions[want] {
			t.Errorf("no key bound to %v", want)
		}
	}
}
