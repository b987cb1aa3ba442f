package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 6/8", r.Right(), r.Bottom())
	}
}

func TestViewportFitsTallFrame(t *testing.T) {
	// 400x700 frame in an 80x35 terminal with 2:1 cells.
	// Height limits: 35*2/700 = 0.1 cells per unit.
	v := NewViewport(400, 700, 80, 35, 2)

	if v.Scale != 0.1 {
		t.Fatalf("Scale = %v, expected 0.1", v.Scale)
	}
	frame := v.Frame()
	if frame.W != 40 || frame.H != 35 {
		t.Errorf("Frame() = %+v, expected 40x35", frame)
	}
	if frame.X != 20 || frame.Y != 0 {
		t.Errorf("frame should be centered horizontally, got %+v", frame)
	}
}

func TestViewportCellRectMinimumSize(t *testing.T) {
	v := NewViewport(400, 700, 40, 35, 2)

	r := v.CellRect(100, 100, 1, 1)
	if r.W < 1 || r.H < 1 {
		t.Errorf("tiny rect should cover at least one cell, got %+v", r)
	}

	empty := v.CellRect(100, 100, 0, 0)
	if empty.W != 0 || empty.H != 0 {
		t.Errorf("zero-size rect should cover nothing, got %+v", empty)
	}
}

func TestViewportDegenerate(t *testing.T) {
	v := NewViewport(400, 700, 0, 0, 2)
	if v.Scale != 0 {
		t.Errorf("zero-size terminal should produce zero scale, got %v", v.Scale)
	}
}

func TestPaletteAdd(t *testing.T) {
	var p Palette
	c := p.Add("#3498db")
	if c != 1 {
		t.Fatalf("first added colour should be index 1, got %d", c)
	}
	if p.Hex(c) != "#3498db" {
		t.Errorf("Hex(%d) = %q", c, p.Hex(c))
	}
	if p.Hex(ColorDefault) != "" {
		t.Error("default colour should have no hex")
	}
	if p.Hex(200) != "" {
		t.Error("out-of-range colour should have no hex")
	}
}
