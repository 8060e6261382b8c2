// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI, input mapping, the SSH server and running
// the game loop alongside the Bubble Tea program.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Frame is one rendered board plus the state shown in the footer.
type Frame struct {
	Board string
	State core.GameState
	Best  int // Best score in the journal, or the live score if higher
}

// FrameMsg delivers a new frame to the model.
type FrameMsg Frame

// loopDoneMsg is sent when the game loop returns.
type loopDoneMsg struct {
	err error
}

// frameSurface is the render surface handed to the game loop. It draws into
// a Screen buffer and turns it into a styled string on Present.
type frameSurface struct {
	*core.Screen
	renderer *ScreenRenderer
	last     string
}

func newFrameSurface(grid core.Grid, r *ScreenRenderer) *frameSurface {
	return &frameSurface{
		Screen:   core.NewBoardScreen(grid),
		renderer: r,
	}
}

// Present renders the buffer.
func (f *frameSurface) Present() {
	f.Screen.Present()
	f.last = f.renderer.Render(f.Screen)
}

// View returns the last presented frame.
func (f *frameSurface) View() string {
	return f.last
}

// waitForFrame returns a command that blocks until the next frame.
// It yields nil once the channel is closed.
func waitForFrame(frames <-chan Frame) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-frames
		if !ok {
			return nil
		}
		return FrameMsg(f)
	}
}
