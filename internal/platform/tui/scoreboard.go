package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Scoreboard layout constants
const (
	maxScoreboardRuns = 10
	playerColumnWidth = 12
)

// RunsTable renders runs as a ranked table.
func RunsTable(runs []storage.Run) string {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: playerColumnWidth},
		{Title: "Score", Width: 6},
		{Title: "Length", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "End", Width: 10},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			truncate(r.Session, playerColumnWidth),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Ticks),
			r.EndReason,
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // Header plus one line per run
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No cursor highlight in a static table
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

// SummaryView renders the end-of-game summary: totals plus the best runs.
func SummaryView(sum storage.Summary, top []storage.Run) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("SNAKE - SESSION SUMMARY"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Runs: %d   Best score: %d   Average: %.1f   Ticks played: %d\n",
		sum.Runs, sum.BestScore, sum.AvgScore, sum.TotalTicks)

	if len(top) == 0 {
		return b.String()
	}
	if len(top) > maxScoreboardRuns {
		top = top[:maxScoreboardRuns]
	}
	b.WriteString("\n")
	b.WriteString(RunsTable(top))
	b.WriteString("\n")
	return b.String()
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
