package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player: an ordered run of cells moving one cell per tick.
type Snake struct {
	grid core.Grid
	rng  *rand.Rand

	positions []core.Cell // Head at index 0
	length    int         // Target length; positions catch up on the next move

	direction  Direction
	pending    Direction // Buffered direction for next move
	hasPending bool

	lastVacated    core.Cell // Tail cell freed by the latest move
	hasLastVacated bool
}

var _ Drawable = (*Snake)(nil)

// NewSnake creates a one-cell snake at the board centre heading right.
func NewSnake(grid core.Grid, rng *rand.Rand) *Snake {
	return &Snake{
		grid:      grid,
		rng:       rng,
		positions: []core.Cell{grid.Center()},
		length:    1,
		direction: DirRight,
	}
}

// BufferDirection queues a heading for the next move. A heading opposite to
// the current one is ignored; a later call before the move replaces an
// earlier one. Returns whether the heading was accepted.
func (s *Snake) BufferDirection(d Direction) bool {
	if d.IsOpposite(s.direction) {
		return false
	}
	s.pending = d
	s.hasPending = true
	return true
}

// Move advances the snake one cell. If the new head lands on the body the
// snake resets instead and Move returns true.
func (s *Snake) Move() (reset bool) {
	// Apply buffered direction
	if s.hasPending {
		s.direction = s.pending
		s.hasPending = false
	}

	dc, dr := s.direction.Delta()
	newHead := s.grid.Wrap(s.Head().Add(dc, dr))

	// The pre-move tail counts: the head may not chase it into its own cell.
	if slices.Contains(s.positions[1:], newHead) {
		s.Reset()
		return true
	}

	s.positions = append([]core.Cell{newHead}, s.positions...)

	if len(s.positions) > s.length {
		s.lastVacated = s.positions[len(s.positions)-1]
		s.hasLastVacated = true
		s.positions = s.positions[:len(s.positions)-1]
	} else {
		s.hasLastVacated = false
	}
	return false
}

// GrowOnAppleEaten raises the target length. The body grows on the next move.
func (s *Snake) GrowOnAppleEaten() {
	s.length++
}

// CheckAppleCollision grows the snake and relocates the apple away from the
// body when the head is on the apple. Returns whether the apple was eaten.
func (s *Snake) CheckAppleCollision(a *Apple) bool {
	if s.Head() != a.Position() {
		return false
	}
	s.GrowOnAppleEaten()
	a.RandomizePosition(s.positions)
	return true
}

// Reset respawns a one-cell snake at the centre with a random heading.
func (s *Snake) Reset() {
	s.length = 1
	s.positions = []core.Cell{s.grid.Center()}
	s.direction = Directions[s.rng.Intn(len(Directions))]
	s.hasPending = false
	s.hasLastVacated = false
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.positions[0]
}

// Positions returns a copy of the occupied cells, head first.
func (s *Snake) Positions() []core.Cell {
	return slices.Clone(s.positions)
}

// Occupies checks if the snake occupies the given cell.
func (s *Snake) Occupies(c core.Cell) bool {
	return slices.Contains(s.positions, c)
}

// Length returns the target length.
func (s *Snake) Length() int {
	return s.length
}

// Score is the number of apples eaten since the last reset.
func (s *Snake) Score() int {
	return s.length - 1
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// PendingDirection returns the buffered heading, if any.
func (s *Snake) PendingDirection() (Direction, bool) {
	return s.pending, s.hasPending
}

// LastVacated returns the cell freed by the latest move, if any.
func (s *Snake) LastVacated() (core.Cell, bool) {
	return s.lastVacated, s.hasLastVacated
}

// Draw paints the body, then the head on top, then erases the freed tail cell.
func (s *Snake) Draw(dst core.Surface, p core.Palette) {
	for _, c := range s.positions {
		dst.DrawCell(c, p.Snake, p.Border)
	}
	dst.DrawCell(s.Head(), p.Snake, p.Border)

	if s.hasLastVacated {
		dst.EraseCell(s.lastVacated, p.Background)
	}
}
