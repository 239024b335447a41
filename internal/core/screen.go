package core

import (
	"strings"
)

// Glyphs used when rasterizing surface primitives into cells.
const (
	FillGlyph = '█'
	LineGlyph = '·'
)

// Cell is one character position of a Screen.
type Cell struct {
	Rune  rune
	Color Color
	Bold  bool
}

// Screen is a 2D colored character buffer implementing Surface.
// It decouples game rendering from the terminal: the game draws in field
// pixel coordinates and the screen scales them down to character cells.
// Content persists between frames, so callers may redraw only what changed.
type Screen struct {
	width  int // columns
	height int // rows
	fieldW int // field width in pixels
	fieldH int // field height in pixels
	cells  [][]Cell
}

// NewScreen creates a screen of width x height cells covering a field of
// fieldW x fieldH pixels.
func NewScreen(width, height, fieldW, fieldH int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		fieldW: max(fieldW, 1),
		fieldH: max(fieldH, 1),
	}
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear(ColorBlack)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// col maps a pixel x coordinate to a column.
func (s *Screen) col(x int) int {
	return floorDiv(x*s.width, s.fieldW)
}

// row maps a pixel y coordinate to a row.
func (s *Screen) row(y int) int {
	return floorDiv(y*s.height, s.fieldH)
}

// Clear fills the entire screen with the given color.
func (s *Screen) Clear(c Color) {
	cell := fillCell(c)
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = cell
		}
	}
}

// FillRect fills every cell touched by the rectangle.
// Empty rectangles draw nothing.
func (s *Screen) FillRect(r Rect, c Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	cell := fillCell(c)
	c0, c1 := s.col(r.X), s.col(r.Right()-1)
	r0, r1 := s.row(r.Y), s.row(r.Bottom()-1)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			s.setCell(x, y, cell)
		}
	}
}

// DrawLine rasterizes a line in cell space (Bresenham).
func (s *Screen) DrawLine(x0, y0, x1, y1 int, c Color) {
	cx0, cy0 := s.col(x0), s.row(y0)
	cx1, cy1 := s.col(x1), s.row(y1)

	dx := Abs(cx1 - cx0)
	dy := -Abs(cy1 - cy0)
	sx, sy := Sign(cx1-cx0), Sign(cy1-cy0)
	e := dx + dy
	cell := Cell{Rune: LineGlyph, Color: c}
	for {
		s.setCell(cx0, cy0, cell)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx0 += sx
		}
		if e2 <= dx {
			e += dx
			cy0 += sy
		}
	}
}

// DrawText writes a string horizontally starting at the cell containing (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, f Font, c Color) {
	cx, cy := s.col(x), s.row(y)
	i := 0
	for _, r := range text {
		s.setCell(cx+i, cy, Cell{Rune: r, Color: c, Bold: f == FontLarge})
		i++
	}
}

// setCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) setCell(x, y int, cell Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = cell
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorBlack}
	}
	return s.cells[y][x]
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// fillCell returns the cell used for solid fills; black is drawn as blank.
func fillCell(c Color) Cell {
	if c == ColorBlack {
		return Cell{Rune: ' ', Color: ColorBlack}
	}
	return Cell{Rune: FillGlyph, Color: c}
}

// floorDiv divides rounding toward negative infinity so that pixels left of
// or above the field map outside the screen instead of onto column/row 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

var _ Surface = (*Screen)(nil)
