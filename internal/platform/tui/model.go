package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Model is the Bubble Tea model for one game session. It forwards key
// presses to the session, shows the frames the game loop publishes and
// quits once the loop has returned.
type Model struct {
	ctx     context.Context
	session *Session
	keys    KeyMap
	help    help.Model
	styles  modelStyles

	frame    Frame
	hasFrame bool

	width, height int
	sized         bool // Whether a WindowSizeMsg arrived

	quitting bool // Quit pressed, waiting for the loop to notice
	done     bool // Loop returned
	err      error
}

type modelStyles struct {
	footer  lipgloss.Style
	score   lipgloss.Style
	overlay lipgloss.Style
}

func newModelStyles(r *lipgloss.Renderer) modelStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return modelStyles{
		footer: r.NewStyle().Foreground(lipgloss.Color("245")),
		score:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		overlay: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1),
	}
}

// NewModel creates a model for session. The game loop runs with ctx and
// stops when it is cancelled.
func NewModel(ctx context.Context, session *Session) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		ctx:     ctx,
		session: session,
		keys:    DefaultKeyMap(),
		help:    h,
		styles:  newModelStyles(nil),
	}
}

// WithRenderer returns a copy of m whose chrome is styled for r.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.styles = newModelStyles(r)
	return m
}

// Init starts the game loop and waits for its first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		runLoop(m.ctx, m.session),
		waitForFrame(m.session.Frames()),
	)
}

// runLoop runs the session loop as a command; it reports back when the loop returns.
func runLoop(ctx context.Context, s *Session) tea.Cmd {
	return func() tea.Msg {
		return loopDoneMsg{err: s.Run(ctx)}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sized = true
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = Frame(msg)
		m.hasFrame = true
		return m, waitForFrame(m.session.Frames())

	case loopDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues the mapped action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.session.Input().Push(action)
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
	}
	return m, nil
}

// View renders the current frame with a status and help footer.
func (m Model) View() string {
	if m.done {
		return ""
	}

	boardW, boardH := m.session.BoardSize()
	if m.sized && (m.width < boardW || m.height < boardH) {
		return m.tooSmallView(boardW, boardH)
	}

	if !m.hasFrame {
		return "Starting..."
	}

	var b strings.Builder
	b.WriteString(m.frame.Board)

	// Footer only when there is room below the board
	if !m.sized || m.height > boardH {
		b.WriteString("\n")
		b.WriteString(m.footerView())
	}
	return b.String()
}

func (m Model) footerView() string {
	state := m.frame.State
	status := m.styles.score.Render(fmt.Sprintf("Score %d", state.Score)) +
		m.styles.footer.Render(fmt.Sprintf("  Best %d  Resets %d", m.frame.Best, state.Resets))
	if m.quitting {
		status += m.styles.footer.Render("  quitting...")
	}
	return status + "  " + m.help.View(m.keys)
}

func (m Model) tooSmallView(boardW, boardH int) string {
	msg := fmt.Sprintf("Terminal too small\n\nneed %dx%d, have %dx%d\n\nq to quit",
		boardW, boardH, m.width, m.height)
	box := m.styles.overlay.Render(msg)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Err returns the error the game loop returned, if any.
func (m Model) Err() error {
	return m.err
}

// Done reports whether the game loop has returned.
func (m Model) Done() bool {
	return m.done
}
