package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorPair is the cache key for a run style.
type colorPair struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings.
// Styles are cached per colour pair. Not safe for concurrent use.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewScreenRenderer creates a renderer bound to r. A nil r uses the
// default renderer (the local terminal); SSH sessions pass their own so
// colours follow the client's terminal.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if st, ok := sr.styles[key]; ok {
		return st
	}
	st := sr.renderer.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	sr.styles[key] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}
