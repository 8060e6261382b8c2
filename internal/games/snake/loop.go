package snake

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Stats records what the loop has done so far.
type Stats struct {
	Ticks       uint64
	ApplesEaten int
	Resets      int
	StepTime    time.Duration // Total time spent stepping and rendering
}

// MeanStep returns the average time per tick.
func (s Stats) MeanStep() time.Duration {
	if s.Ticks == 0 {
		return 0
	}
	return s.StepTime / time.Duration(s.Ticks)
}

// Loop runs a Game at a fixed rate against its input, surface and clock.
// All game state is touched only from the goroutine calling Run.
type Loop struct {
	game    *Game
	input   core.InputSource
	surface core.Surface
	clock   core.Clock
	onStep  func(core.StepResult)
	stats   Stats
}

// NewLoop wires a game to its collaborators.
func NewLoop(game *Game, input core.InputSource, surface core.Surface, clock core.Clock) *Loop {
	return &Loop{
		game:    game,
		input:   input,
		surface: surface,
		clock:   clock,
	}
}

// OnStep registers a callback invoked after every completed tick.
func (l *Loop) OnStep(fn func(core.StepResult)) {
	l.onStep = fn
}

// Run ticks until a quit action arrives or ctx is cancelled; both are a
// normal shutdown and return nil. Each tick drains input, steps the game,
// renders and presents the frame, then waits for the clock.
func (l *Loop) Run(ctx context.Context) error {
	for {
		start := time.Now()

		result := l.game.Step(l.input.Poll())
		if result.Signal == core.SignalQuit {
			return nil
		}

		l.game.Render(l.surface)
		l.surface.Present()
		l.record(result, time.Since(start))

		if l.onStep != nil {
			l.onStep(result)
		}

		if err := l.clock.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

// record folds one tick into the stats.
func (l *Loop) record(result core.StepResult, elapsed time.Duration) {
	l.stats.Ticks++
	l.stats.StepTime += elapsed
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventAppleEaten:
			l.stats.ApplesEaten++
		case core.EventReset:
			l.stats.Resets++
		}
	}
}

// Stats returns the loop statistics. Call it after Run returns.
func (l *Loop) Stats() Stats {
	return l.stats
}

// Game returns the game driven by the loop.
func (l *Loop) Game() *Game {
	return l.game
}
