package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.lastSnap.Overlay {
		return m.viewMicroBreakOverlay()
	}

	var content string
	switch m.state {
	case StateTimer:
		content = m.timerView.View()
	case StateBoard:
		content = m.styles.doc.Render(m.boardView.View())
	case StateStats:
		content = m.styles.doc.Render(m.statsView.View())
	case StateSettings:
		content = m.styles.doc.Render(m.viewSettings())
	case StateEditTask, StateEditSettings:
		content = m.viewForm()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := []struct {
		state SessionState
		title string
	}{
		{StateTimer, "Timer"},
		{StateBoard, "Board"},
		{StateStats, "Stats"},
		{StateSettings, "Settings"},
	}

	current := m.state
	if current == StateEditTask || current == StateConfirmDelete {
		current = StateBoard
	}
	if current == StateEditSettings {
		current = StateSettings
	}

	var rendered []string
	for _, tab := range tabs {
		if tab.state == current {
			rendered = append(rendered, m.styles.activeTab.Render(tab.title))
		} else {
			rendered = append(rendered, m.styles.inactiveTab.Render(tab.title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) viewForm() string {
	form := m.form.View()
	if m.formError != "" {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.danger.Render(m.formError),
			"",
			form,
		)
	}
	return form
}

func (m Model) viewSettings() string {
	settings := m.machine.Settings()
	faint := lipgloss.NewStyle().Faint(true)

	lines := []string{
		fmt.Sprintf("Work period           %d min", settings.WorkMinutes),
		fmt.Sprintf("Short break           %d min", settings.BreakMinutes),
		fmt.Sprintf("Micro-break           %d s", settings.MicroBreakSeconds),
		fmt.Sprintf("Micro-break interval  %d-%d min", settings.MicroBreakMinInterval, settings.MicroBreakMaxInterval),
		fmt.Sprintf("Micro-breaks enabled  %v", settings.EnableMicroBreaks),
		fmt.Sprintf("Auto-start work       %v", settings.AutoStartWork),
		fmt.Sprintf("Auto-start break      %v", settings.AutoStartBreak),
		fmt.Sprintf("Tone volume           %d", settings.ToneVolume),
		fmt.Sprintf("Background volume     %d", settings.BackgroundVolume),
		fmt.Sprintf("Custom sound          %s", orNone(settings.CustomSoundPath)),
		fmt.Sprintf("Theme color           %s", settings.ThemeColor),
		fmt.Sprintf("Dark mode             %v", settings.DarkMode),
		fmt.Sprintf("UI scale              %g", settings.UIScale),
		"",
		faint.Render("Press e to edit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.danger.Render("Delete this task?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

// viewMicroBreakOverlay replaces the whole screen while a micro-break
// runs so the interruption cannot be ignored.
func (m Model) viewMicroBreakOverlay() string {
	box := m.styles.overlay.Render(lipgloss.JoinVertical(lipgloss.Center,
		"MICRO-BREAK",
		"",
		fmt.Sprintf("%02d:%02d", m.lastSnap.Remaining/60, m.lastSnap.Remaining%60),
		"",
		"Look away from the screen",
		"",
		"[s] skip",
	))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
