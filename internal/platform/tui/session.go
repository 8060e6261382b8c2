package tui

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Session runs one game for one player. The game loop runs on its own
// goroutine (see Run); key presses reach it through Input and rendered
// frames come back through Frames.
type Session struct {
	name    string
	cfg     core.RuntimeConfig
	game    *snake.Game
	loop    *snake.Loop
	input   *core.InputQueue
	surface *frameSurface
	frames  chan Frame
	journal *storage.Journal
	logger  *log.Logger

	best int

	mu      sync.Mutex
	running bool
	closed  bool
	done    chan struct{}
}

// SessionOptions configures a Session.
type SessionOptions struct {
	Name     string             // Player name recorded in the journal
	Config   core.RuntimeConfig // A zero seed is replaced by the clock
	Journal  *storage.Journal   // Optional
	Logger   *log.Logger        // Optional
	Renderer *lipgloss.Renderer // Optional, see NewScreenRenderer
}

// NewSession creates a game session. Nothing runs until Run is called.
func NewSession(opts SessionOptions) *Session {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		name:    opts.Name,
		cfg:     cfg,
		game:    snake.New(cfg),
		input:   core.NewInputQueue(),
		surface: newFrameSurface(cfg.Grid(), NewScreenRenderer(opts.Renderer)),
		frames:  make(chan Frame, 1),
		journal: opts.Journal,
		logger:  logger,
		done:    make(chan struct{}),
	}
	if s.journal != nil {
		if best, err := s.journal.BestScore(); err == nil {
			s.best = best
		}
	}
	return s
}

// Run drives the game loop at the configured tick rate until the player
// quits or ctx is cancelled. The run in progress is then recorded and the
// frame channel closed. Run must be called at most once; after Close it
// returns immediately.
func (s *Session) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	defer close(s.done)
	defer close(s.frames)

	clock := core.NewTickerClock(s.cfg.TickRate)
	defer clock.Stop()

	s.loop = snake.NewLoop(s.game, s.input, s.surface, clock)
	s.loop.OnStep(s.observe)

	s.logger.Debug("game started",
		"grid", s.cfg.Grid(),
		"tick_rate", s.cfg.TickRate,
		"seed", s.cfg.Seed,
	)

	err := s.loop.Run(ctx)

	state := s.game.State()
	if ticks := s.game.RunTicks(); ticks > 0 {
		s.record(storage.Run{
			Score:     state.Score,
			Length:    state.Length,
			Ticks:     ticks,
			EndReason: storage.EndQuit,
		})
	}

	stats := s.loop.Stats()
	s.logger.Info("game finished",
		"ticks", stats.Ticks,
		"apples", stats.ApplesEaten,
		"resets", stats.Resets,
		"mean_step", stats.MeanStep(),
	)
	return err
}

// observe handles the outcome of one tick on the loop goroutine.
func (s *Session) observe(result core.StepResult) {
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventAppleEaten:
			s.logger.Debug("apple eaten", "score", ev.Score, "cell", ev.Cell)
		case core.EventReset:
			s.logger.Debug("snake reset", "score", ev.Score, "ticks", ev.Ticks)
			s.record(storage.Run{
				Score:     ev.Score,
				Length:    ev.Score + 1,
				Ticks:     ev.Ticks,
				EndReason: storage.EndCollision,
			})
		}
	}

	best := max(s.best, result.State.Score)
	s.publish(Frame{Board: s.surface.View(), State: result.State, Best: best})
}

// record saves a finished run. Journal failures are logged, the game goes on.
func (s *Session) record(r storage.Run) {
	if r.Score > s.best {
		s.best = r.Score
	}
	if s.journal == nil {
		return
	}
	r.Session = s.name
	if _, err := s.journal.SaveRun(r); err != nil {
		s.logger.Warn("could not record run", "error", err)
		return
	}
	if best, err := s.journal.BestScore(); err == nil && best > s.best {
		s.best = best
	}
}

// publish hands f to the model, replacing a frame it has not picked up yet.
func (s *Session) publish(f Frame) {
	select {
	case s.frames <- f:
		return
	default:
	}
	select {
	case <-s.frames:
	default:
	}
	s.frames <- f
}

// Input returns the queue the model pushes actions into.
func (s *Session) Input() *core.InputQueue {
	return s.input
}

// Frames returns the channel of rendered frames. It is closed when Run returns.
func (s *Session) Frames() <-chan Frame {
	return s.frames
}

// Name returns the player name.
func (s *Session) Name() string {
	return s.name
}

// Config returns the runtime config with the resolved seed.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// BoardSize returns the board size in terminal columns and rows.
func (s *Session) BoardSize() (width, height int) {
	g := s.cfg.Grid()
	return g.Width * core.CellColumns, g.Height
}

// Stats returns loop statistics. Only meaningful after Run returned.
func (s *Session) Stats() snake.Stats {
	if s.loop == nil {
		return snake.Stats{}
	}
	return s.loop.Stats()
}

// Close stops a later Run from starting and waits for a running one to
// return. Cancel the context passed to Run first.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	running := s.running
	s.mu.Unlock()

	if running {
		<-s.done
	}
}
