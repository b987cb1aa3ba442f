// Package core provides fundamental types and utilities shared by the game
// simulation and the platform frontends. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Viewport maps a logical frame (floating point units) onto a grid of
// terminal cells, preserving the frame's aspect ratio and centering it.
// Terminal cells are roughly twice as tall as they are wide, which CellAspect
// accounts for.
type Viewport struct {
	LogicalW, LogicalH float64
	Cols, Rows         int
	Scale              float64 // cells per logical unit, horizontally
	CellAspect         float64 // cell height / cell width
	OffsetX, OffsetY   int     // top-left cell of the frame
}

// NewViewport fits a logicalW x logicalH frame into cols x rows cells.
func NewViewport(logicalW, logicalH float64, cols, rows int, cellAspect float64) Viewport {
	if cellAspect <= 0 {
		cellAspect = 2
	}
	v := Viewport{
		LogicalW:   logicalW,
		LogicalH:   logicalH,
		Cols:       cols,
		Rows:       rows,
		CellAspect: cellAspect,
	}
	if logicalW <= 0 || logicalH <= 0 || cols <= 0 || rows <= 0 {
		return v
	}

	scaleX := float64(cols) / logicalW
	scaleY := float64(rows) * cellAspect / logicalH
	v.Scale = math.Min(scaleX, scaleY)

	v.OffsetX = (cols - int(math.Round(logicalW*v.Scale))) / 2
	v.OffsetY = (rows - int(math.Round(logicalH*v.Scale/cellAspect))) / 2
	return v
}

// Col converts a logical x coordinate to a cell column.
func (v Viewport) Col(x float64) int {
	return v.OffsetX + int(math.Floor(x*v.Scale))
}

// Row converts a logical y coordinate to a cell row.
func (v Viewport) Row(y float64) int {
	return v.OffsetY + int(math.Floor(y*v.Scale/v.CellAspect))
}

// CellRect converts a logical rectangle to the cells it covers.
// Any rectangle with positive size covers at least one cell.
func (v Viewport) CellRect(x, y, w, h float64) Rect {
	left := v.Col(x)
	top := v.Row(y)
	right := v.OffsetX + int(math.Ceil((x+w)*v.Scale))
	bottom := v.OffsetY + int(math.Ceil((y+h)*v.Scale/v.CellAspect))
	if right <= left && w > 0 {
		right = left + 1
	}
	if bottom <= top && h > 0 {
		bottom = top + 1
	}
	return NewRect(left, top, right-left, bottom-top)
}

// Frame returns the cell rectangle occupied by the whole logical frame.
func (v Viewport) Frame() Rect {
	return v.CellRect(0, 0, v.LogicalW, v.LogicalH)
}
