package core

import (
	"fmt"
	"strings"
)

// CellColumns is the number of terminal columns one grid cell occupies.
// Terminal glyphs are roughly twice as tall as wide, so two columns look square.
const CellColumns = 2

// Surface is the render surface the game draws onto once per tick.
type Surface interface {
	// Clear fills the whole board with the background colour.
	Clear(bg Color)
	// DrawCell paints a grid cell with a fill colour and a border colour.
	DrawCell(c Cell, fill, border Color)
	// EraseCell paints a grid cell with the background colour.
	EraseCell(c Cell, bg Color)
	// DrawScoreText writes the score label starting at the given grid cell.
	DrawScoreText(value int, at Cell, fg Color)
	// Present publishes the finished frame.
	Present()
}

// ScreenCell is one terminal character with its colours.
type ScreenCell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width     int
	height    int
	cells     [][]ScreenCell
	presented int
}

var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions in characters.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear(ColorBlack)
	return s
}

// NewBoardScreen creates a screen sized to hold every cell of the grid.
func NewBoardScreen(g Grid) *Screen {
	return NewScreen(g.Width*CellColumns, g.Height)
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]ScreenCell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]ScreenCell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with blank cells of the given colour.
func (s *Screen) Clear(bg Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ScreenCell{Rune: ' ', Fg: bg, Bg: bg}
		}
	}
}

// DrawCell paints grid cell c as "[]" in the border colour on the fill colour.
func (s *Screen) DrawCell(c Cell, fill, border Color) {
	x := c.Col * CellColumns
	s.SetCell(x, c.Row, ScreenCell{Rune: '[', Fg: border, Bg: fill})
	s.SetCell(x+1, c.Row, ScreenCell{Rune: ']', Fg: border, Bg: fill})
}

// EraseCell paints grid cell c blank in the background colour.
func (s *Screen) EraseCell(c Cell, bg Color) {
	x := c.Col * CellColumns
	for i := range CellColumns {
		s.SetCell(x+i, c.Row, ScreenCell{Rune: ' ', Fg: bg, Bg: bg})
	}
}

// DrawScoreText writes "SCORE: <value>" starting at grid cell at.
func (s *Screen) DrawScoreText(value int, at Cell, fg Color) {
	s.DrawText(at.Col*CellColumns, at.Row, fmt.Sprintf("SCORE: %d", value), fg)
}

// Present counts the frame. Platform surfaces wrap Screen to publish it.
func (s *Screen) Present() {
	s.presented++
}

// Presented returns how many frames have been presented.
func (s *Screen) Presented() int {
	return s.presented
}

// Set places a rune at the given position, keeping its colours.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c ScreenCell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x].Rune
}

// GetCell returns the cell at the given position.
// Returns a blank black cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) ScreenCell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ScreenCell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y) in the given colour.
// The background under the text is kept. Characters beyond the screen are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		px := x + i
		i++
		if px < 0 || px >= s.width || y < 0 || y >= s.height {
			continue
		}
		s.cells[y][px].Rune = r
		s.cells[y][px].Fg = fg
	}
}

// String converts the screen buffer to plain text without colours.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height) // Pre-allocate for efficiency

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as plain text.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
