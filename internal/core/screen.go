package core

import (
	"strings"
)

// Cell is one character of a Screen with its color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// BoxStyle is the set of runes used to outline a rectangle, in the order
// horizontal, vertical, then the corners clockwise from top-left.
type BoxStyle [6]rune

var (
	BoxLight = BoxStyle{'─', '│', '┌', '┐', '┘', '└'}
	BoxASCII = BoxStyle{'-', '|', '+', '+', '+', '+'}
)

// Screen is a fixed-size grid of cells. In-memory terminals draw into one
// and renderers read it back.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen creates a blank width x height screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Resize changes the dimensions. Cells inside both the old and the new
// bounds keep their content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blank
	}
	for y := 0; y < min(height, s.height); y++ {
		copy(cells[y*width:y*width+min(width, s.width)], s.cells[y*s.width:])
	}
	s.width, s.height, s.cells = width, height, cells
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

// Set places a default-colored rune. Out-of-bounds writes are ignored, as
// they are for every drawing method.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, r, ColorDefault)
}

// SetCell places a colored rune.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x++
	}
}

// Fill sets every cell of r to ch.
func (s *Screen) Fill(r Rect, ch rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, ch)
		}
	}
}

// DrawBox outlines r with box.
func (s *Screen) DrawBox(r Rect, box BoxStyle) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, box[0])
		s.Set(x, bottom, box[0])
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, box[1])
		s.Set(right, y, box[1])
	}
	s.Set(r.X, r.Y, box[2])
	s.Set(right, r.Y, box[3])
	s.Set(right, bottom, box[4])
	s.Set(r.X, bottom, box[5])
}

// Clone returns an independent copy.
func (s *Screen) Clone() *Screen {
	c := &Screen{width: s.width, height: s.height, cells: make([]Cell, len(s.cells))}
	copy(c.cells, s.cells)
	return c
}

// String returns the runes without colors, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow((s.width + 1) * s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns row y as text. Rows outside the screen are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
