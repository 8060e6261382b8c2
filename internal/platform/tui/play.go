package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// PlayOptions configures a local game.
type PlayOptions struct {
	Player  string
	Config  core.RuntimeConfig
	Journal *storage.Journal
	Logger  *log.Logger
}

// Play runs a game in the local terminal until the player quits or ctx is
// cancelled, and returns the loop statistics.
func Play(ctx context.Context, opts PlayOptions) (snake.Stats, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	session := NewSession(SessionOptions{
		Name:    opts.Player,
		Config:  opts.Config,
		Journal: opts.Journal,
		Logger:  opts.Logger,
	})

	p := tea.NewProgram(
		NewModel(ctx, session),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	final, runErr := p.Run()
	interrupted := ctx.Err() != nil

	// Stop the loop if the program ended some other way, and wait for the
	// last run to be recorded.
	cancel()
	session.Close()

	if runErr != nil && !interrupted {
		return session.Stats(), fmt.Errorf("tui: %w", runErr)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return session.Stats(), fmt.Errorf("tui: game loop: %w", m.Err())
	}
	return session.Stats(), nil
}
