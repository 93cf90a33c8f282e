// Package timerview renders the countdown tab: mode label, remaining
// time, a progress bar and the day's focus total.
package timerview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmalley/focusboard/internal/timer"
)

type Model struct {
	progress     progress.Model
	snap         timer.Snapshot
	totalSeconds int
	todayMinutes int
	width        int
	height       int
}

func New(themeColor string) Model {
	p := progress.New(
		progress.WithSolidFill(themeColor),
		progress.WithoutPercentage(),
	)
	return Model{progress: p}
}

// SetSize resizes the component to the available content area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	barWidth := width - 8
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}
	m.progress.Width = barWidth
}

// SetState installs the timer state to render. totalSeconds is the full
// duration of the current mode, used for the progress bar.
func (m *Model) SetState(snap timer.Snapshot, totalSeconds, todayMinutes int) {
	m.snap = snap
	m.totalSeconds = totalSeconds
	m.todayMinutes = todayMinutes
}

func (m Model) View() string {
	label := modeLabel(m.snap.Mode)

	countdownStyle := lipgloss.NewStyle().Bold(true)
	labelStyle := lipgloss.NewStyle().Faint(true)

	percent := 0.0
	if m.totalSeconds > 0 {
		percent = 1 - float64(m.snap.Remaining)/float64(m.totalSeconds)
	}

	status := "paused, press space to start"
	if m.snap.Active {
		status = "running"
	}

	lines := []string{
		labelStyle.Render(label),
		"",
		countdownStyle.Render(formatCountdown(m.snap.Remaining)),
		"",
		m.progress.ViewAs(percent),
		"",
		labelStyle.Render(status),
		"",
		fmt.Sprintf("Focus today: %dm", m.todayMinutes),
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func modeLabel(mode timer.Mode) string {
	switch mode {
	case timer.ModeShortBreak:
		return "SHORT BREAK"
	case timer.ModeMicroBreak:
		return "MICRO-BREAK"
	default:
		return "WORK"
	}
}

func formatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
