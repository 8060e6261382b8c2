// Package snake implements the classic wraparound Snake game: a snake moves
// on a fixed grid, grows by eating apples, wraps around the board edges and
// starts over from the centre when it runs into itself.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game owns the snake and the apple for one session and advances them one tick at a time.
type Game struct {
	cfg  core.RuntimeConfig
	grid core.Grid
	rng  *rand.Rand

	snake *Snake
	apple *Apple

	tick     uint64
	runStart uint64 // Tick at which the current run began
	resets   int
}

// New creates a game and places the first apple.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{}
	g.Reset(cfg)
	return g
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.grid = cfg.Grid()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.runStart = 0
	g.resets = 0

	g.snake = NewSnake(g.grid, g.rng)
	g.apple = NewApple(g.grid, g.rng)
	g.apple.RandomizePosition(g.snake.positions)
}

// Step drains the input of one tick, moves the snake and resolves the apple.
// A quit action ends the tick before anything moves.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		return core.StepResult{Signal: core.SignalQuit, State: g.State()}
	}

	g.tick++

	for _, a := range in.Actions {
		if d, ok := DirectionFromAction(a); ok {
			g.snake.BufferDirection(d)
		}
	}

	var events []core.Event

	score := g.snake.Score()
	if g.snake.Move() {
		g.resets++
		events = append(events, core.Event{
			Kind:  core.EventReset,
			Score: score,
			Ticks: g.tick - g.runStart,
			Cell:  g.snake.Head(),
		})
		g.runStart = g.tick
	}

	eaten := g.apple.Position()
	if g.snake.CheckAppleCollision(g.apple) {
		events = append(events, core.Event{
			Kind:  core.EventAppleEaten,
			Score: g.snake.Score(),
			Cell:  eaten,
		})
	}

	return core.StepResult{Signal: core.SignalContinue, State: g.State(), Events: events}
}

// Render draws the board: background, apple, snake and score.
func (g *Game) Render(dst core.Surface) {
	p := g.cfg.Palette
	dst.Clear(p.Background)

	for _, d := range []Drawable{g.apple, g.snake} {
		d.Draw(dst, p)
	}
	// A relocated apple may sit on the tail cell the snake just erased.
	if vacated, ok := g.snake.LastVacated(); ok && vacated == g.apple.Position() {
		g.apple.Draw(dst, p)
	}

	dst.DrawScoreText(g.snake.Score(), core.Cell{}, p.Text)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.snake.Score(),
		Length: g.snake.Length(),
		Tick:   g.tick,
		Resets: g.resets,
	}
}

// RunTicks returns how many ticks the current run has lasted.
func (g *Game) RunTicks() uint64 {
	return g.tick - g.runStart
}

// Grid returns the board geometry.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Snake returns the player snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Apple returns the apple.
func (g *Game) Apple() *Apple {
	return g.apple
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Resets: %d\n", g.tick, g.snake.Score(), g.resets))
	b.WriteString(fmt.Sprintf("Snake len: %d/%d, Direction: %s\n", len(g.snake.positions), g.snake.length, g.snake.direction))
	b.WriteString(fmt.Sprintf("Head: %v, Apple: %v\n", g.snake.Head(), g.apple.Position()))
	return b.String()
}
