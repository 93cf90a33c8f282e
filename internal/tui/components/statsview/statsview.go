// Package statsview renders the statistics tab: one row per day with a
// focus-time bar, plus range totals.
package statsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmalley/focusboard/internal/stats"
)

type Model struct {
	summary stats.Summary
	accent  string
	width   int
	height  int
}

func New(accent string) Model {
	return Model{accent: accent}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetSummary(summary stats.Summary) {
	m.summary = summary
}

func (m Model) View() string {
	if len(m.summary.Days) == 0 {
		return "No activity recorded yet."
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.accent))
	faint := lipgloss.NewStyle().Faint(true)

	maxMinutes := 0
	for _, day := range m.summary.Days {
		if day.FocusMinutes > maxMinutes {
			maxMinutes = day.FocusMinutes
		}
	}

	barWidth := 30
	var lines []string
	for _, day := range m.summary.Days {
		bar := ""
		if maxMinutes > 0 {
			bar = strings.Repeat("█", day.FocusMinutes*barWidth/maxMinutes)
		}
		marker := ""
		if day.Date == m.summary.BestDay {
			marker = " ★"
		}
		lines = append(lines, fmt.Sprintf("%s  %4dm  %2d done  %s%s",
			day.Date, day.FocusMinutes, day.TasksCompleted, barStyle.Render(bar), marker))
	}

	lines = append(lines, "")
	lines = append(lines, faint.Render(fmt.Sprintf(
		"Total %dm over %d active day(s), %d task(s) completed, avg %.0fm/day",
		m.summary.TotalFocusMinutes, m.summary.ActiveDays, m.summary.TotalCompleted, m.summary.AvgFocusMinutes)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
