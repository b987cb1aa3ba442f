package core

import (
	"strings"
	"testing"
)

// cellAt reads one cell through the row accessor renderers use.
func cellAt(s *Screen, x, y int) Cell {
	return s.Cells(y)[x]
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}
	if cellAt(s, 0, 0) != blankCell {
		t.Errorf("Initial cell should be blank, got %+v", cellAt(s, 0, 0))
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: '█', Color: 3})
	if c := cellAt(s, 5, 5); c.Rune != '█' || c.Color != 3 {
		t.Errorf("cell (5, 5) = %+v", c)
	}

	// Out of bounds is ignored
	s.SetCell(-1, 0, Cell{Rune: 'X'})
	s.SetCell(10, 0, Cell{Rune: 'X'})
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds SetCell should not draw")
	}
}

func TestScreenClearResetsColors(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(0, 0, 5, 5), Cell{Rune: '#', Color: 2})
	s.Clear()

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if cellAt(s, x, y) != blankCell {
				t.Fatalf("cell (%d, %d) not cleared: %+v", x, y, cellAt(s, x, y))
			}
		}
	}
}

func TestScreenDrawTextColorClips(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColor(7, 1, "Hello", 4)

	if got := strings.Split(s.String(), "\n")[1]; got != "       Hel" {
		t.Errorf("row 1 = %q", got)
	}
	if cellAt(s, 8, 1).Color != 4 {
		t.Error("text colour not applied")
	}
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCenteredColor(0, "★★★", 2)

	if s.String() != "    ★★★    " {
		t.Errorf("row 0 = %q", s.String())
	}
	if cellAt(s, 5, 0).Color != 2 {
		t.Error("centered text colour not applied")
	}
}

func TestScreenDrawBoxColor(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBoxColor(NewRect(0, 0, 5, 3), 1)

	expected := "┌───┐\n│   │\n└───┘"
	if s.String() != expected {
		t.Errorf("DrawBoxColor result:\n%s\nexpected:\n%s", s.String(), expected)
	}
	if cellAt(s, 0, 0).Color != 1 || cellAt(s, 2, 1) != blankCell {
		t.Error("only the outline should be coloured")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRect(NewRect(1, 0, 2, 2), '#')

	if s.String() != " ## \n ## " {
		t.Errorf("DrawRect result = %q", s.String())
	}
}

func TestScreenResizePreservesCells(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 2, Cell{Rune: 'X', Color: 1})

	s.Resize(10, 10)
	if cellAt(s, 2, 2).Color != 1 {
		t.Error("Resize should preserve coloured cells")
	}

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Errorf("Resize(2, 2) gave %dx%d", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColor(0, 0, "abc", ColorDefault)
	s.DrawTextColor(0, 1, "def", ColorDefault)

	if s.String() != "abc\ndef" {
		t.Errorf("String() = %q", s.String())
	}
	if strings.Count(s.String(), "\n") != 1 {
		t.Error("rows should be joined by one newline")
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetCell(1, 0, Cell{Rune: 'a', Color: 7})

	row := s.Cells(0)
	if len(row) != 3 || row[1].Color != 7 {
		t.Errorf("Cells(0) = %+v", row)
	}
	if s.Cells(5) != nil {
		t.Error("out-of-range row should be nil")
	}
}
