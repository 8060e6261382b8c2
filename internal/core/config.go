package core

// RuntimeConfig contains the fixed settings passed to the game at construction.
// It is immutable for the lifetime of a game loop.
type RuntimeConfig struct {
	ScreenW  int   // Board width in pixels
	ScreenH  int   // Board height in pixels
	CellSize int   // Pixels per grid cell
	TickRate int   // Simulation ticks per second (default 10)
	Seed     int64 // RNG seed for deterministic gameplay
	Palette  Palette
}

// DefaultConfig returns a RuntimeConfig with the classic settings.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  640,
		ScreenH:  480,
		CellSize: 20,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
		Palette:  DefaultPalette(),
	}
}

// Grid returns the grid geometry derived from the screen and cell size.
func (c RuntimeConfig) Grid() Grid {
	return NewGrid(c.ScreenW, c.ScreenH, c.CellSize)
}

// GameState represents the current state of a game.
type GameState struct {
	Score  int    // Displayed score (snake length - 1)
	Length int    // Target snake length
	Tick   uint64 // Ticks simulated so far
	Resets int    // Self-collision resets so far
}

// EventKind identifies something that happened during a tick.
type EventKind string

const (
	EventAppleEaten EventKind = "apple_eaten"
	EventReset      EventKind = "reset"
)

// Event is reported by a tick for the platform to log or record.
type Event struct {
	Kind  EventKind
	Score int    // Score after eating, or score of the run that ended on reset
	Ticks uint64 // Ticks the ended run lasted (reset only)
	Cell  Cell   // Apple cell that was eaten, or the respawn cell on reset
}

// Signal tells the loop whether to continue after draining input.
type Signal int

const (
	SignalContinue Signal = iota
	SignalQuit
)

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	Signal Signal
	State  GameState
	Events []Event
}
