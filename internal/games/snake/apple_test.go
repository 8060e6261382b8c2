package snake

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestAppleStartsAtCenter(t *testing.T) {
	a := NewApple(testGrid, rand.New(rand.NewSource(1)))
	if a.Position() != testGrid.Center() {
		t.Errorf("Position() = %v, expected centre %v", a.Position(), testGrid.Center())
	}
}

func TestRandomizePositionAvoidsForbidden(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	a := NewApple(testGrid, rng)

	for trial := range 200 {
		// Random body of up to half the board.
		n := rng.Intn(testGrid.Area() / 2)
		forbidden := make([]core.Cell, 0, n)
		for range n {
			forbidden = append(forbidden, core.Cell{
				Col: rng.Intn(testGrid.Width),
				Row: rng.Intn(testGrid.Height),
			})
		}

		if !a.RandomizePosition(forbidden) {
			t.Fatalf("trial %d: RandomizePosition() found no free cell", trial)
		}
		if slices.Contains(forbidden, a.Position()) {
			t.Fatalf("trial %d: apple placed on forbidden cell %v", trial, a.Position())
		}
		if !testGrid.Contains(a.Position()) {
			t.Fatalf("trial %d: apple %v outside the grid", trial, a.Position())
		}
	}
}

func TestRandomizePositionSingleFreeCell(t *testing.T) {
	grid := core.Grid{Width: 4, Height: 3}
	free := core.Cell{Col: 2, Row: 1}

	var forbidden []core.Cell
	for row := range grid.Height {
		for col := range grid.Width {
			if c := (core.Cell{Col: col, Row: row}); c != free {
				forbidden = append(forbidden, c)
			}
		}
	}

	a := NewApple(grid, rand.New(rand.NewSource(5)))
	for range 20 {
		if !a.RandomizePosition(forbidden) {
			t.Fatal("RandomizePosition() should find the last free cell")
		}
		if a.Position() != free {
			t.Fatalf("Position() = %v, expected the only free cell %v", a.Position(), free)
		}
	}
}

func TestRandomizePositionFullBoard(t *testing.T) {
	grid := core.Grid{Width: 2, Height: 2}
	forbidden := []core.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}}

	a := NewApple(grid, rand.New(rand.NewSource(5)))
	before := a.Position()

	if a.RandomizePosition(forbidden) {
		t.Error("RandomizePosition() should report failure on a full board")
	}
	if a.Position() != before {
		t.Errorf("Position() = %v, expected the apple to stay at %v", a.Position(), before)
	}
}

func TestRandomizePositionIgnoresOffGridCells(t *testing.T) {
	grid := core.Grid{Width: 1, Height: 2}
	forbidden := []core.Cell{{Col: 0, Row: 0}, {Col: 5, Row: 5}, {Col: -1, Row: 0}}

	a := NewApple(grid, rand.New(rand.NewSource(5)))
	if !a.RandomizePosition(forbidden) {
		t.Fatal("off-grid cells must not count towards a full board")
	}
	if a.Position() != (core.Cell{Col: 0, Row: 1}) {
		t.Errorf("Position() = %v, expected (0,1)", a.Position())
	}
}
