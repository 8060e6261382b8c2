package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Drawable is anything the game renders onto a surface each tick.
type Drawable interface {
	Draw(dst core.Surface, p core.Palette)
}

// Apple is the single piece of food on the board.
type Apple struct {
	grid     core.Grid
	rng      *rand.Rand
	position core.Cell
}

var _ Drawable = (*Apple)(nil)

// NewApple creates an apple at the board centre.
// Callers randomize it before the first tick.
func NewApple(grid core.Grid, rng *rand.Rand) *Apple {
	return &Apple{
		grid:     grid,
		rng:      rng,
		position: grid.Center(),
	}
}

// Position returns the current cell.
func (a *Apple) Position() core.Cell {
	return a.position
}

// RandomizePosition moves the apple to a uniformly random cell that is not
// in forbidden. Draws are retried until one lands on a free cell; after
// 4x the grid area it picks among the remaining free cells directly.
// Returns false, leaving the apple in place, when no cell is free.
func (a *Apple) RandomizePosition(forbidden []core.Cell) bool {
	blocked := make(map[core.Cell]struct{}, len(forbidden))
	for _, c := range forbidden {
		if a.grid.Contains(c) {
			blocked[c] = struct{}{}
		}
	}

	area := a.grid.Area()
	if area == 0 || len(blocked) >= area {
		return false
	}

	for range 4 * area {
		c := core.Cell{
			Col: a.rng.Intn(a.grid.Width),
			Row: a.rng.Intn(a.grid.Height),
		}
		if _, taken := blocked[c]; !taken {
			a.position = c
			return true
		}
	}

	// Collect all empty cells
	free := make([]core.Cell, 0, area-len(blocked))
	for row := range a.grid.Height {
		for col := range a.grid.Width {
			c := core.Cell{Col: col, Row: row}
			if _, taken := blocked[c]; !taken {
				free = append(free, c)
			}
		}
	}
	a.position = free[a.rng.Intn(len(free))]
	return true
}

// Draw paints the apple cell.
func (a *Apple) Draw(dst core.Surface, p core.Palette) {
	dst.DrawCell(a.position, p.Apple, p.Border)
}
