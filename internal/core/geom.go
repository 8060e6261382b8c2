// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell identifies a grid square by column and row.
// Cells are grid indices, never pixel coordinates.
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by (dc, dr). The result is not wrapped.
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// String returns the cell as "(col,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Grid is the fixed-size toroidal coordinate space of the board.
type Grid struct {
	Width  int // Columns
	Height int // Rows
}

// NewGrid derives the grid from screen dimensions and a cell size using
// floor division: a 640x480 screen with 20px cells is 32x24.
func NewGrid(screenW, screenH, cellSize int) Grid {
	if cellSize <= 0 {
		return Grid{}
	}
	return Grid{Width: screenW / cellSize, Height: screenH / cellSize}
}

// Wrap maps any cell back into [0,Width) x [0,Height) by modular arithmetic.
// Column Width becomes 0 and column -1 becomes Width-1; rows likewise.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{Col: mod(c.Col, g.Width), Row: mod(c.Row, g.Height)}
}

// Contains returns true if the cell lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// Center returns the spawn cell in the middle of the board.
func (g Grid) Center() Cell {
	return Cell{Col: g.Width / 2, Row: g.Height / 2}
}

// Area returns the number of cells on the board.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// mod is the non-negative remainder of a divided by n.
func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
