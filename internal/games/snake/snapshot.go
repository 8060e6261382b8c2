package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	Length   int // Target length
	BodyLen  int // Occupied cells
	HeadCol  int
	HeadRow  int
	Dir      Direction
	AppleCol int
	AppleRow int
	Resets   int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	apple := g.apple.Position()

	return Snapshot{
		Tick:     g.tick,
		Score:    g.snake.Score(),
		Length:   g.snake.length,
		BodyLen:  len(g.snake.positions),
		HeadCol:  head.Col,
		HeadRow:  head.Row,
		Dir:      g.snake.direction,
		AppleCol: apple.Col,
		AppleRow: apple.Row,
		Resets:   g.resets,
	}
}
