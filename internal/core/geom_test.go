package core

import "testing"

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name       string
		w, h, size int
		expected   Grid
	}{
		{"classic board", 640, 480, 20, Grid{Width: 32, Height: 24}},
		{"floor division", 650, 495, 20, Grid{Width: 32, Height: 24}},
		{"single cell", 20, 20, 20, Grid{Width: 1, Height: 1}},
		{"zero cell size", 640, 480, 0, Grid{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := NewGrid(tc.w, tc.h, tc.size)
			if result != tc.expected {
				t.Errorf("NewGrid(%d, %d, %d) = %+v, expected %+v", tc.w, tc.h, tc.size, result, tc.expected)
			}
		})
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 32, Height: 24}

	tests := []struct {
		name     string
		in       Cell
		expected Cell
	}{
		{"inside unchanged", Cell{5, 5}, Cell{5, 5}},
		{"right edge", Cell{32, 5}, Cell{0, 5}},
		{"left edge", Cell{-1, 5}, Cell{31, 5}},
		{"bottom edge", Cell{7, 24}, Cell{7, 0}},
		{"top edge", Cell{7, -1}, Cell{7, 23}},
		{"corner", Cell{-1, -1}, Cell{31, 23}},
		{"far outside", Cell{64 + 3, -48 - 2}, Cell{3, 22}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.Wrap(tc.in)
			if result != tc.expected {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, result, tc.expected)
			}
			if !g.Contains(result) {
				t.Errorf("Wrap(%v) = %v is outside the grid", tc.in, result)
			}
		})
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 4, Height: 3}

	tests := []struct {
		c        Cell
		expected bool
	}{
		{Cell{0, 0}, true},
		{Cell{3, 2}, true},
		{Cell{4, 0}, false},
		{Cell{0, 3}, false},
		{Cell{-1, 1}, false},
	}

	for _, tc := range tests {
		if result := g.Contains(tc.c); result != tc.expected {
			t.Errorf("Contains(%v) = %v, expected %v", tc.c, result, tc.expected)
		}
	}
}

func TestGridCenter(t *testing.T) {
	g := NewGrid(640, 480, 20)

	// Pixel (320, 240) on a 20px grid.
	if c := g.Center(); c != (Cell{16, 12}) {
		t.Errorf("Center() = %v, expected (16,12)", c)
	}
	if g.Area() != 32*24 {
		t.Errorf("Area() = %d, expected %d", g.Area(), 32*24)
	}
}

func TestCellAdd(t *testing.T) {
	c := Cell{3, 4}.Add(-1, 2)
	if c != (Cell{2, 6}) {
		t.Errorf("Add() = %v, expected (2,6)", c)
	}
	if c.String() != "(2,6)" {
		t.Errorf("String() = %q, expected \"(2,6)\"", c.String())
	}
}
